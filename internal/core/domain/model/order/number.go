package order

import (
	"fmt"
	"regexp"
	"time"

	"ordertrack/internal/pkg/errs"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{5}$`)

// Number is the human-facing order number: ORD-YYYYMMDD-NNNNN, where NNNNN is
// a 5-digit zero-padded daily sequence starting at 1. The number is immutable
// after the order is constructed.
//
// The sequence is derived from the daily order count at creation time
// (dailyCount + 1) with no additional locking, so two concurrent creations on
// the same day can produce the same number. That behavior is inherited from
// the source system and intentionally not changed here.
type Number struct {
	value string
}

// GenerateNumber derives the order number for the given day from the number
// of orders already created that day.
func GenerateNumber(date time.Time, dailyCount int64) Number {
	return Number{
		value: fmt.Sprintf("ORD-%s-%05d", date.Format("20060102"), dailyCount+1),
	}
}

// NumberFromString parses an order number from its string form, typically
// when reconstructing an order from persistence.
func NumberFromString(s string) (Number, error) {
	if s == "" {
		return Number{}, errs.NewValueIsRequiredError("order number")
	}
	if !orderNumberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNNN", s),
		)
	}
	return Number{value: s}, nil
}

// String returns the ORD-YYYYMMDD-NNNNN representation.
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate returns an error for the zero value.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number must be created via GenerateNumber or NumberFromString")
	}
	return nil
}
