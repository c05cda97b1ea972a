package reservation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inquiryState() FormState {
	return FormState{
		Name:     "山田太郎",
		Furigana: "ヤマダタロウ",
		Email:    "a@b.com",
		Details:  "予約について",
		Category: CategoryInquiry,
		Consent:  true,
	}
}

func failedFields(errs ErrorState) []Field {
	var out []Field
	for _, ve := range errs.Failed() {
		out = append(out, ve.Field)
	}
	return out
}

func TestValidateForm_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*FormState)
		wantValid  bool
		wantFailed []Field
		wantKind   Kind
	}{
		{
			name:      "inquiry without visit fields",
			mutate:    func(*FormState) {},
			wantValid: true,
		},
		{
			name:       "soba without visit fields",
			mutate:     func(s *FormState) { s.Category = CategorySoba },
			wantFailed: []Field{FieldPhone, FieldDate, FieldGuests},
			wantKind:   KindRequired,
		},
		{
			name:       "malformed email",
			mutate:     func(s *FormState) { s.Email = "not-an-email" },
			wantFailed: []Field{FieldEmail},
			wantKind:   KindFormat,
		},
		{
			name:       "consent withheld",
			mutate:     func(s *FormState) { s.Consent = false },
			wantFailed: []Field{FieldConsent},
			wantKind:   KindRequired,
		},
		{
			name: "inquiry with free-form visit fields",
			mutate: func(s *FormState) {
				s.Date = "来週あたり"
				s.Guests = "2名"
			},
			wantValid: true,
		},
		{
			name: "soba with free-form visit fields",
			mutate: func(s *FormState) {
				s.Category = CategorySoba
				s.Phone = "09012345678"
				s.Date = "来週あたり"
				s.Guests = "2名"
			},
			wantValid: true,
		},
		{
			name: "complete soba reservation",
			mutate: func(s *FormState) {
				s.Category = CategorySoba
				s.Phone = "09012345678"
				s.Date = "2026-11-03"
				s.Guests = "4"
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := inquiryState()
			tt.mutate(&state)

			errs, valid := ValidateForm(state)

			assert.Equal(t, tt.wantValid, valid)
			assert.Len(t, errs, len(Fields), "every field should have an entry")
			assert.Equal(t, tt.wantFailed, failedFields(errs))
			for _, ve := range errs.Failed() {
				assert.Equal(t, tt.wantKind, ve.Kind, "field %s", ve.Field)
			}
		})
	}
}

func TestValidateForm_EmptyForm(t *testing.T) {
	errs, valid := ValidateForm(NewFormState())

	assert.False(t, valid)
	assert.Equal(t, Fields, failedFields(errs))
}

func TestValidateForm_AgreesWithValidateField(t *testing.T) {
	states := []FormState{
		NewFormState(),
		inquiryState(),
		{Name: "x", Furigana: "abc", Email: "x@y.z", Phone: "1", Category: CategoryOther, Consent: true},
		{Furigana: "ア", Phone: "0123456789", Date: "2026-01-01", Guests: "2", Category: CategorySoba},
	}

	for _, state := range states {
		errs, valid := ValidateForm(state)

		allAbsent := true
		for _, f := range Fields {
			want := ValidateField(f, state.Value(f), state.Category)
			assert.Equal(t, want, errs[f], "field %s", f)
			if want != nil {
				allAbsent = false
			}
		}
		assert.Equal(t, allAbsent, valid)
	}
}

func TestValidateForm_Idempotent(t *testing.T) {
	state := inquiryState()
	state.Email = "broken"

	first, firstValid := ValidateForm(state)
	second, secondValid := ValidateForm(state)

	assert.Equal(t, first, second)
	assert.Equal(t, firstValid, secondValid)
}

func TestSubmit_Valid(t *testing.T) {
	next, errs, err := Submit(inquiryState())

	require.NoError(t, err)
	assert.Equal(t, NewFormState(), next)
	assert.Empty(t, errs)
}

func TestSubmit_Invalid(t *testing.T) {
	state := inquiryState()
	state.Consent = false

	next, errs, err := Submit(state)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidForm)

	var formErr *FormError
	require.True(t, errors.As(err, &formErr))
	assert.Equal(t, errs, formErr.Errors)
	assert.Equal(t, state, next, "state must not be reset")
	assert.Equal(t, "プライバシーポリシーに同意してください。", errs.Message(FieldConsent))
	assert.Contains(t, err.Error(), "field consent: required")
}

func TestErrorState_Messages(t *testing.T) {
	state := inquiryState()
	state.Name = ""

	errs, _ := ValidateForm(state)
	msgs := errs.Messages()

	require.Contains(t, msgs, "name")
	require.NotNil(t, msgs["name"])
	assert.Equal(t, "名前を入力してください。", *msgs["name"])
	require.Contains(t, msgs, "email")
	assert.Nil(t, msgs["email"])
}

func TestErrorState_Clone(t *testing.T) {
	errs, _ := ValidateForm(NewFormState())
	cp := errs.Clone()

	cp[FieldName].Message = "changed"

	assert.NotEqual(t, "changed", errs[FieldName].Message)
	assert.Nil(t, ErrorState(nil).Clone())
}
