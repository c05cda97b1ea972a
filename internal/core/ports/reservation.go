package ports

import (
	"context"
	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/session"
)

type SessionRepository interface {
	Save(ctx context.Context, s *session.Session) error
	GetByID(ctx context.Context, id string) (*session.Session, error)
	Update(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, id string) error
	DeleteIf(ctx context.Context, match func(*session.Session) bool) (int, error)
	Count(ctx context.Context) (int, error)
}

// InquirySink receives every submission that passed validation.
type InquirySink interface {
	Deliver(ctx context.Context, inquiry reservation.FormState) error
}
