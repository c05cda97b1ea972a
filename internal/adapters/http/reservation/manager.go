package reservation

import (
	"context"

	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/session"
)

type Manager interface {
	Validate(ctx context.Context, state reservation.FormState) (reservation.ErrorState, bool)
	Submit(ctx context.Context, state reservation.FormState) (reservation.FormState, reservation.ErrorState, error)
	OpenSession(ctx context.Context) (*session.Session, error)
	GetSession(ctx context.Context, id string) (*session.Session, error)
	ChangeField(ctx context.Context, id string, field reservation.Field, raw string) (*session.Session, error)
	SubmitSession(ctx context.Context, id string) (*session.Session, error)
	CloseSession(ctx context.Context, id string) error
}
