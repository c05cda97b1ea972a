package reservation

import (
	"regexp"
)

// whitespace matches the same code points as the browser's \s class, which
// is wider than Go's \s.
const whitespace = `\s\p{Zs}\x{000B}\x{2028}\x{2029}\x{FEFF}`

var (
	katakanaRegex = regexp.MustCompile(`^[ァ-ンヴー` + whitespace + `]*$`)
	emailRegex    = regexp.MustCompile(`^[^@` + whitespace + `]+@[^@` + whitespace + `]+\.[^@` + whitespace + `]+$`)
	phoneRegex    = regexp.MustCompile(`^[0-9]{10,15}$`)
)

type rule struct {
	// required reports whether an empty value is an error under the category.
	required func(Category) bool
	// format, when set, is checked for every non-empty value.
	format func(string) bool
}

func always(Category) bool { return true }

func visitOnly(c Category) bool { return c.RequiresVisit() }

// Date and guests carry no format rule: any non-empty value is accepted.
var rules = map[Field]rule{
	FieldName:     {required: always},
	FieldFurigana: {required: always, format: katakanaRegex.MatchString},
	FieldEmail:    {required: always, format: emailRegex.MatchString},
	FieldPhone:    {required: visitOnly, format: phoneRegex.MatchString},
	FieldDate:     {required: visitOnly},
	FieldDetails:  {required: always},
	FieldCategory: {required: always},
	FieldGuests:   {required: visitOnly},
	FieldConsent:  {required: always},
}

// ValidateField checks one field value. It returns nil when the value is acceptable.
// Format rules apply to any non-empty value regardless of category.
func ValidateField(field Field, value string, category Category) *ValidationError {
	r, ok := rules[field]
	if !ok {
		return nil
	}
	if value == "" {
		if r.required(category) {
			return newValidationError(field, KindRequired)
		}
		return nil
	}
	if r.format != nil && !r.format(value) {
		return newValidationError(field, KindFormat)
	}
	return nil
}
