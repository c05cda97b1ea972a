package reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/session"
	"sobasite/internal/core/ports"
	"sobasite/internal/platform/logger"
)

type Settings struct {
	SessionTTL  time.Duration
	MaxSessions int
}

type Usecase struct {
	sessions ports.SessionRepository
	sink     ports.InquirySink
	recorder SubmissionRecorder
	settings Settings

	// mu serialises read-modify-write cycles on sessions.
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewUsecase(sessions ports.SessionRepository, sink ports.InquirySink, recorder SubmissionRecorder, settings Settings) *Usecase {
	return &Usecase{
		sessions: sessions,
		sink:     sink,
		recorder: recorder,
		settings: settings,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Validate checks a complete form without side effects.
func (uc *Usecase) Validate(ctx context.Context, state reservation.FormState) (reservation.ErrorState, bool) {
	errs, valid := reservation.ValidateForm(state)
	logger.FromContext(ctx).Debug("Validated reservation form",
		logger.String("category", state.Category.String()),
		logger.Bool("valid", valid))
	return errs, valid
}

// Submit validates a complete form and, when it passes, delivers it and returns
// the reset state.
func (uc *Usecase) Submit(ctx context.Context, state reservation.FormState) (reservation.FormState, reservation.ErrorState, error) {
	next, errs, err := reservation.Submit(state)
	if err != nil {
		uc.recordRejected(ctx, state.Category, errs)
		return next, errs, err
	}

	if err := uc.deliver(ctx, state); err != nil {
		return state, errs, err
	}
	return next, errs, nil
}

// OpenSession starts an empty form session. The limit check and the save
// happen under the usecase lock so concurrent opens cannot overshoot it.
func (uc *Usecase) OpenSession(ctx context.Context) (*session.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log := logger.FromContext(ctx)

	if uc.settings.MaxSessions > 0 {
		count, err := uc.sessions.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count >= uc.settings.MaxSessions {
			log.Warn("Form session limit reached", logger.Int("sessions", count))
			return nil, session.ErrTooManySessions
		}
	}

	s, err := session.New(uc.newID(), uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, s); err != nil {
		return nil, err
	}

	log.Debug("Opened form session", logger.String("session_id", s.ID))
	return s.Clone(), nil
}

func (uc *Usecase) GetSession(ctx context.Context, id string) (*session.Session, error) {
	s, err := uc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// ChangeField stores a raw value on the session form. Errors from the last
// submit are left untouched.
func (uc *Usecase) ChangeField(ctx context.Context, id string, field reservation.Field, raw string) (*session.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Form.Change(field, raw); err != nil {
		logger.FromContext(ctx).Warn("Rejected field change",
			logger.String("session_id", id),
			logger.String("field", field.String()),
			logger.Error(err))
		return nil, err
	}

	if err := uc.store(ctx, s); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// SubmitSession submits the session form. The returned session reflects the
// outcome in both cases: reset on success, errors populated on failure.
func (uc *Usecase) SubmitSession(ctx context.Context, id string) (*session.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	accepted, submitErr := s.Form.Submit()
	if submitErr != nil {
		if !errors.Is(submitErr, reservation.ErrInvalidForm) {
			return nil, submitErr
		}
		uc.recordRejected(ctx, s.Form.State.Category, s.Form.Errors)
		if err := uc.store(ctx, s); err != nil {
			return nil, err
		}
		return s.Clone(), submitErr
	}

	if err := uc.deliver(ctx, accepted); err != nil {
		return nil, err
	}

	if err := uc.store(ctx, s); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (uc *Usecase) CloseSession(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.sessions.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("Closed form session", logger.String("session_id", id))
	return nil
}

// ExpireSessions removes sessions idle for longer than the configured TTL and
// returns how many were removed.
func (uc *Usecase) ExpireSessions(ctx context.Context) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	removed, err := uc.sessions.DeleteIf(ctx, func(s *session.Session) bool {
		return s.Expired(now, uc.settings.SessionTTL)
	})
	if err != nil {
		return 0, fmt.Errorf("expire sessions: %w", err)
	}
	return removed, nil
}

func (uc *Usecase) load(ctx context.Context, id string) (*session.Session, error) {
	s, err := uc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (uc *Usecase) store(ctx context.Context, s *session.Session) error {
	s.Touch(uc.now())
	return uc.sessions.Update(ctx, s)
}

func (uc *Usecase) deliver(ctx context.Context, accepted reservation.FormState) error {
	log := logger.FromContext(ctx)

	if err := uc.sink.Deliver(ctx, accepted); err != nil {
		log.Error("Failed to deliver inquiry", logger.Error(err))
		return fmt.Errorf("deliver inquiry: %w", err)
	}

	uc.recorder.RecordSubmission(ctx, OutcomeAccepted, accepted.Category.String())
	log.Info("Reservation form accepted", logger.String("category", accepted.Category.String()))
	return nil
}

func (uc *Usecase) recordRejected(ctx context.Context, category reservation.Category, errs reservation.ErrorState) {
	failed := errs.Failed()
	fields := make([]string, 0, len(failed))
	for _, ve := range failed {
		uc.recorder.RecordFieldError(ctx, ve.Field.String(), string(ve.Kind))
		fields = append(fields, ve.Field.String())
	}
	uc.recorder.RecordSubmission(ctx, OutcomeRejected, category.String())

	logger.FromContext(ctx).Info("Reservation form rejected",
		logger.String("category", category.String()),
		logger.Strings("fields", fields))
}
