package memory

import (
	"context"
	"errors"
	memoryPlatform "sobasite/internal/platform/repository/memory"

	"sobasite/internal/core/domain/session"
)

type SessionRepository struct {
	*memoryPlatform.Repository[*session.Session]
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		Repository: memoryPlatform.New[*session.Session](),
	}
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*session.Session, error) {
	s, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, id)
	}
	return s, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	return mapError(r.Repository.Save(ctx, s), s.ID)
}

func (r *SessionRepository) Update(ctx context.Context, s *session.Session) error {
	return mapError(r.Repository.Update(ctx, s), s.ID)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return mapError(r.Repository.Delete(ctx, id), id)
}

func mapError(err error, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, memoryPlatform.ErrNotFound):
		return session.ErrSessionNotFound
	case errors.Is(err, memoryPlatform.ErrAlreadyExists):
		return &session.AlreadyExistsError{ID: id}
	default:
		return err
	}
}
