package reservation

// Form is the editable reservation form: its values and the errors from the
// last submit attempt. Field changes never revalidate.
type Form struct {
	State  FormState
	Errors ErrorState
}

func NewForm() *Form {
	return &Form{
		State:  NewFormState(),
		Errors: ErrorState{},
	}
}

// Change stores a raw value for one field.
func (f *Form) Change(field Field, raw string) error {
	next, err := f.State.With(field, raw)
	if err != nil {
		return err
	}
	f.State = next
	return nil
}

// Submit validates the form. When it passes the form is reset and the
// accepted values are returned. When it fails the values are kept, Errors is
// populated and a *FormError is returned.
func (f *Form) Submit() (FormState, error) {
	accepted := f.State
	next, errs, err := Submit(f.State)
	f.Errors = errs
	if err != nil {
		return FormState{}, err
	}
	f.State = next
	return accepted, nil
}

func (f *Form) Clone() *Form {
	return &Form{
		State:  f.State,
		Errors: f.Errors.Clone(),
	}
}
