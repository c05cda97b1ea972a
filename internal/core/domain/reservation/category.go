package reservation

import (
	"fmt"
	"strings"
)

// Category classifies a submission and gates which fields are mandatory.
type Category string

const (
	CategoryUnset   Category = ""
	CategorySoba    Category = "soba"
	CategoryInquiry Category = "inquiry"
	CategoryOther   Category = "other"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategorySoba, CategoryInquiry, CategoryOther}

func ParseCategory(raw string) (Category, error) {
	switch c := Category(strings.TrimSpace(raw)); c {
	case CategoryUnset, CategorySoba, CategoryInquiry, CategoryOther:
		return c, nil
	default:
		return CategoryUnset, fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
}

// RequiresVisit reports whether phone, date and guests are mandatory.
// An unset category is treated as a soba-making reservation.
func (c Category) RequiresVisit() bool {
	return c == CategoryUnset || c == CategorySoba
}

func (c Category) Label() string {
	switch c {
	case CategorySoba:
		return "そば打ち体験ご予約"
	case CategoryInquiry:
		return "お問い合わせ"
	case CategoryOther:
		return "その他（営業等）"
	default:
		return ""
	}
}

func (c Category) String() string {
	if c == CategoryUnset {
		return "unset"
	}
	return string(c)
}
