package reservation

// ErrorState maps every validated field to its error, nil when the field passes.
type ErrorState map[Field]*ValidationError

// Valid reports whether no field carries an error.
func (e ErrorState) Valid() bool {
	for _, ve := range e {
		if ve != nil {
			return false
		}
	}
	return true
}

// Message returns the message for a field, or "" when it has none.
func (e ErrorState) Message(f Field) string {
	if ve := e[f]; ve != nil {
		return ve.Message
	}
	return ""
}

// Failed returns the errors in field order.
func (e ErrorState) Failed() []*ValidationError {
	var out []*ValidationError
	for _, f := range Fields {
		if ve := e[f]; ve != nil {
			out = append(out, ve)
		}
	}
	return out
}

// Messages flattens the state into field name -> message, nil for passing fields.
func (e ErrorState) Messages() map[string]*string {
	out := make(map[string]*string, len(e))
	for f, ve := range e {
		if ve == nil {
			out[string(f)] = nil
			continue
		}
		msg := ve.Message
		out[string(f)] = &msg
	}
	return out
}

func (e ErrorState) Clone() ErrorState {
	if e == nil {
		return nil
	}
	out := make(ErrorState, len(e))
	for f, ve := range e {
		if ve != nil {
			cp := *ve
			ve = &cp
		}
		out[f] = ve
	}
	return out
}

// ValidateForm runs every field rule against the state.
func ValidateForm(state FormState) (ErrorState, bool) {
	errs := make(ErrorState, len(Fields))
	for _, f := range Fields {
		errs[f] = ValidateField(f, state.Value(f), state.Category)
	}
	return errs, errs.Valid()
}

// Submit validates the state. On success it returns a fresh empty state and a
// cleared ErrorState; otherwise the state is returned unchanged together with
// the errors and a *FormError.
func Submit(state FormState) (FormState, ErrorState, error) {
	errs, ok := ValidateForm(state)
	if !ok {
		return state, errs, &FormError{Errors: errs}
	}
	return NewFormState(), ErrorState{}, nil
}
