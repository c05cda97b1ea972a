package session

import (
	"errors"
	"fmt"
	"time"

	"sobasite/internal/core/domain/reservation"
)

var (
	ErrInvalidSessionID = errors.New("session ID cannot be empty")
	ErrSessionNotFound  = errors.New("form session not found")
	ErrTooManySessions  = errors.New("too many open form sessions")
)

type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("form session with id '%s' already exists", e.ID)
}

// Session is one visitor's reservation form kept between requests.
type Session struct {
	ID        string
	Form      *reservation.Form
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) GetID() string {
	return s.ID
}

func New(id string, now time.Time) (*Session, error) {
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	return &Session{
		ID:        id,
		Form:      reservation.NewForm(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Clone returns a deep copy that can be modified without affecting s.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Form = s.Form.Clone()
	return &cp
}

func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

// Expired reports whether the session has been idle for longer than ttl.
// A non-positive ttl never expires.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.UpdatedAt) > ttl
}
