package reservation

import "fmt"

// Field names a single input of the reservation form.
type Field string

const (
	FieldName     Field = "name"
	FieldFurigana Field = "furigana"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldDate     Field = "date"
	FieldDetails  Field = "details"
	FieldCategory Field = "category"
	FieldGuests   Field = "guests"
	FieldConsent  Field = "consent"
)

// Fields is the complete, ordered field list. Validation walks it in order.
var Fields = []Field{
	FieldName,
	FieldFurigana,
	FieldEmail,
	FieldPhone,
	FieldDate,
	FieldDetails,
	FieldCategory,
	FieldGuests,
	FieldConsent,
}

func ParseField(raw string) (Field, error) {
	f := Field(raw)
	if _, ok := rules[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return f, nil
}

func (f Field) String() string {
	return string(f)
}
