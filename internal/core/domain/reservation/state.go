package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

// FormState holds the current value of every reservation form field.
// The zero value is the initial, empty form.
type FormState struct {
	Name     string   `json:"name"`
	Furigana string   `json:"furigana"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Date     string   `json:"date"`
	Details  string   `json:"details"`
	Category Category `json:"category"`
	Guests   string   `json:"guests"`
	Consent  bool     `json:"consent"`
}

func NewFormState() FormState {
	return FormState{}
}

// Value returns the textual value of a field. Consent is "true" when given
// and empty otherwise, so that an empty value uniformly means "missing".
func (s FormState) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldFurigana:
		return s.Furigana
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldDate:
		return s.Date
	case FieldDetails:
		return s.Details
	case FieldCategory:
		return string(s.Category)
	case FieldGuests:
		return s.Guests
	case FieldConsent:
		if s.Consent {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// With returns a copy of the state with one field replaced by raw.
func (s FormState) With(f Field, raw string) (FormState, error) {
	switch f {
	case FieldName:
		s.Name = raw
	case FieldFurigana:
		s.Furigana = raw
	case FieldEmail:
		s.Email = raw
	case FieldPhone:
		s.Phone = raw
	case FieldDate:
		s.Date = raw
	case FieldDetails:
		s.Details = raw
	case FieldCategory:
		c, err := ParseCategory(raw)
		if err != nil {
			return s, err
		}
		s.Category = c
	case FieldGuests:
		s.Guests = raw
	case FieldConsent:
		consent, err := ParseConsent(raw)
		if err != nil {
			return s, err
		}
		s.Consent = consent
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return s, nil
}

// GuestCount parses the guests field. ok is false when it is empty or not a number.
func (s FormState) GuestCount() (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s.Guests))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseConsent accepts checkbox and boolean spellings. Empty means unchecked.
func ParseConsent(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "off":
		return false, nil
	case "on":
		return true, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidConsent, raw)
	}
	return v, nil
}
