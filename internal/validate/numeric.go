// Package validate implements input validation for the kit's numeric fields.
//
// Validation runs in two stages. AcceptNumericText is the keystroke gate: it
// decides whether a proposed text is even representable under the rule, and
// a rejected text simply means the keystroke is not applied. Text that
// passes the gate is then checked by ValidateNumericText, which yields a
// user-visible rule error or nil. Partial inputs such as "-" are provisional
// "still typing" states and never produce an error.
package validate

import (
	"regexp"
	"strconv"

	"github.com/atomkit/atomkit/pkg/errors"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d*$`)
	decimalPattern = regexp.MustCompile(`^-?\d*\.?\d*$`)
)

// NumericRule bounds and shapes the value accepted by a numeric field.
// Nil Min/Max mean unbounded on that side.
type NumericRule struct {
	Min          *float64
	Max          *float64
	AllowDecimal bool
}

// Bound returns a pointer to v, for use as a NumericRule limit.
func Bound(v float64) *float64 {
	return &v
}

// AcceptNumericText reports whether text is representable under the rule.
// Integer rules accept an optional leading minus followed by digits; decimal
// rules additionally accept a single decimal point. Callers drop keystrokes
// that would produce unacceptable text.
func AcceptNumericText(text string, rule NumericRule) bool {
	if rule.AllowDecimal {
		return decimalPattern.MatchString(text)
	}
	return integerPattern.MatchString(text)
}

// ValidateNumericText checks text against the rule and returns a RuleError
// with a user-facing message, or nil when the text is valid or provisional.
func ValidateNumericText(text string, rule NumericRule) error {
	if isProvisional(text, rule) {
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.NewRuleError("Enter a valid number")
	}

	if rule.Min != nil && value < *rule.Min {
		return errors.NewRuleError("Minimum value is %g", *rule.Min)
	}
	if rule.Max != nil && value > *rule.Max {
		return errors.NewRuleError("Maximum value is %g", *rule.Max)
	}
	return nil
}

// ParseNumericText parses text as a number, reporting ok=false for
// provisional or malformed text.
func ParseNumericText(text string) (float64, bool) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// isProvisional reports whether text is an incomplete entry the user is
// still typing: empty, a lone minus, or a bare decimal point when decimals
// are allowed.
func isProvisional(text string, rule NumericRule) bool {
	switch text {
	case "", "-":
		return true
	case ".", "-.":
		return rule.AllowDecimal
	default:
		return false
	}
}
