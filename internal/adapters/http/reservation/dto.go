package reservation

import (
	"time"

	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/session"
)

// FormRequest is a complete form sent in one request. Length limits guard the
// transport only; the form rules themselves are applied by the domain.
type FormRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Furigana string `json:"furigana" validate:"max=100"`
	Email    string `json:"email" validate:"max=254"`
	Phone    string `json:"phone" validate:"max=32"`
	Date     string `json:"date" validate:"max=32"`
	Details  string `json:"details" validate:"max=2000"`
	Category string `json:"category" validate:"category"`
	Guests   string `json:"guests" validate:"max=8"`
	Consent  bool   `json:"consent"`
}

func (r FormRequest) State() (reservation.FormState, error) {
	category, err := reservation.ParseCategory(r.Category)
	if err != nil {
		return reservation.FormState{}, err
	}
	return reservation.FormState{
		Name:     r.Name,
		Furigana: r.Furigana,
		Email:    r.Email,
		Phone:    r.Phone,
		Date:     r.Date,
		Details:  r.Details,
		Category: category,
		Guests:   r.Guests,
		Consent:  r.Consent,
	}, nil
}

type FieldChangeRequest struct {
	Value string `json:"value" validate:"max=2000"`
}

type ValidationResponse struct {
	Valid  bool               `json:"valid"`
	Errors map[string]*string `json:"errors"`
}

type SubmissionResponse struct {
	Accepted bool                  `json:"accepted"`
	State    reservation.FormState `json:"state"`
}

type SessionResponse struct {
	ID        string                `json:"id"`
	State     reservation.FormState `json:"state"`
	Errors    map[string]*string    `json:"errors"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func newSessionResponse(s *session.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		State:     s.Form.State,
		Errors:    s.Form.Errors.Messages(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
