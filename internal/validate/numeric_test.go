package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomkit/atomkit/pkg/errors"
)

func TestAcceptNumericTextIntegerMode(t *testing.T) {
	t.Parallel()

	rule := NumericRule{AllowDecimal: false}

	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"-", true},
		{"42", true},
		{"-42", true},
		{"4.2", false},
		{".", false},
		{"abc", false},
		{"4a", false},
		{"--4", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, AcceptNumericText(tt.text, rule))
		})
	}
}

func TestAcceptNumericTextDecimalMode(t *testing.T) {
	t.Parallel()

	rule := NumericRule{AllowDecimal: true}

	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"-", true},
		{".", true},
		{"-.", true},
		{"3.14", true},
		{"-3.14", true},
		{"3.1.4", false},
		{"1e5", false},
		{"abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, AcceptNumericText(tt.text, rule))
		})
	}
}

func TestValidateNumericTextScenario(t *testing.T) {
	t.Parallel()

	// min=0, max=150, integers only.
	rule := NumericRule{Min: Bound(0), Max: Bound(150), AllowDecimal: false}

	// "-" is provisional, not an error.
	require.NoError(t, ValidateNumericText("-", rule))

	err := ValidateNumericText("-5", rule)
	require.Error(t, err)
	assert.Equal(t, "Minimum value is 0", err.Error())

	err = ValidateNumericText("200", rule)
	require.Error(t, err)
	assert.Equal(t, "Maximum value is 150", err.Error())

	require.NoError(t, ValidateNumericText("45", rule))
	value, ok := ParseNumericText("45")
	require.True(t, ok)
	assert.InDelta(t, 45, value, 0)
}

func TestValidateNumericTextProvisionalStates(t *testing.T) {
	t.Parallel()

	integer := NumericRule{Min: Bound(1)}
	decimal := NumericRule{Min: Bound(1), AllowDecimal: true}

	require.NoError(t, ValidateNumericText("", integer))
	require.NoError(t, ValidateNumericText("-", integer))
	require.NoError(t, ValidateNumericText(".", decimal))
	require.NoError(t, ValidateNumericText("-.", decimal))

	// A bare point is only provisional when decimals are allowed.
	require.Error(t, ValidateNumericText(".", integer))
}

func TestValidateNumericTextInvalidNumber(t *testing.T) {
	t.Parallel()

	err := ValidateNumericText("4.2.1", NumericRule{AllowDecimal: true})
	require.Error(t, err)

	var ruleErr *errors.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "Enter a valid number", ruleErr.Message)
}

func TestValidateNumericTextUnbounded(t *testing.T) {
	t.Parallel()

	rule := NumericRule{AllowDecimal: true}
	require.NoError(t, ValidateNumericText("-99999.5", rule))
	require.NoError(t, ValidateNumericText("99999.5", rule))
}

func TestValidateNumericTextDecimalBounds(t *testing.T) {
	t.Parallel()

	rule := NumericRule{Min: Bound(0.5), Max: Bound(2.5), AllowDecimal: true}

	require.NoError(t, ValidateNumericText("0.5", rule))
	require.NoError(t, ValidateNumericText("2.5", rule))

	err := ValidateNumericText("0.4", rule)
	require.Error(t, err)
	assert.Equal(t, "Minimum value is 0.5", err.Error())

	err = ValidateNumericText("2.6", rule)
	require.Error(t, err)
	assert.Equal(t, "Maximum value is 2.5", err.Error())
}

func TestParseNumericText(t *testing.T) {
	t.Parallel()

	_, ok := ParseNumericText("")
	assert.False(t, ok)

	_, ok = ParseNumericText("-")
	assert.False(t, ok)

	value, ok := ParseNumericText("-3.25")
	require.True(t, ok)
	assert.InDelta(t, -3.25, value, 0)
}
