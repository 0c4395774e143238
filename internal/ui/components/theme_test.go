package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeIsComplete(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	assert.Equal(t, "default", theme.Name)
	require.NotNil(t, theme.Variants)
	assert.NotNil(t, theme.Variants.Get(ButtonVariantPrimary))
	assert.NotNil(t, theme.Variants.Get(ChipVariantDanger))
	assert.Greater(t, PaddingValue(theme, SpacingMD), 0)
}

func TestDarkThemeOverridesSurface(t *testing.T) {
	t.Parallel()

	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, "dark", dark.Name)
	assert.NotEqual(t, light.Palette.Surface.Base, dark.Palette.Surface.Base)
	// Shared slots are untouched.
	assert.Equal(t, light.Palette.Primary.Base, dark.Palette.Primary.Base)
}

func TestNewThemeDerivesEverythingFromPalette(t *testing.T) {
	t.Parallel()

	theme := NewTheme("custom", defaultPalette())

	assert.Equal(t, "custom", theme.Name)
	require.NotNil(t, theme.Variants)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Greater(t, PaddingValue(theme, SpacingXS), 0)
}

func TestNormalizeFillsZeroSpacing(t *testing.T) {
	t.Parallel()

	theme := Theme{}.Normalize()

	assert.Equal(t, 0, PaddingValue(theme, SpacingNone))
	assert.Greater(t, PaddingValue(theme, SpacingSM), 0)
	assert.Greater(t, MarginValue(theme, SpacingLG), MarginValue(theme, SpacingSM))
	require.NotNil(t, theme.Variants)
}

func TestSpacingLookupOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, PaddingValue(theme, SpacingSM), PaddingValue(theme, SpacingToken(99)))
	assert.Equal(t, PaddingValue(theme, SpacingSM), PaddingValue(theme, SpacingToken(-1)))
}

func TestBorderForVariant(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	tests := []struct {
		name    string
		variant BorderVariant
		want    lipgloss.Border
	}{
		{"normal", BorderVariantNormal, lipgloss.NormalBorder()},
		{"rounded", BorderVariantRounded, lipgloss.RoundedBorder()},
		{"thick", BorderVariantThick, lipgloss.ThickBorder()},
		{"double", BorderVariantDouble, lipgloss.DoubleBorder()},
		{"none", BorderVariantNone, lipgloss.Border{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BorderForVariant(theme, tt.variant))
		})
	}
}

func TestTypographyStyleUnknownVariantFallsBackToBody(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, theme.Typography.Body, TypographyStyle(theme, TypographyVariant(42)))
	assert.Equal(t, theme.Typography.Title, TypographyStyle(theme, TypographyVariantTitle))
}

func TestFieldStylePerState(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, theme.Field.Default, FieldStyle(theme, FieldStateDefault))
	assert.Equal(t, theme.Field.Focus, FieldStyle(theme, FieldStateFocus))
	assert.Equal(t, theme.Field.Error, FieldStyle(theme, FieldStateError))
}

func TestVariantRegistry(t *testing.T) {
	t.Parallel()

	registry := NewVariantRegistry()
	assert.Nil(t, registry.Get(ButtonVariantPrimary))

	strategy := NewCompositeStrategy(Background(PalettePrimary))
	registry.Register(ButtonVariantPrimary, strategy)
	assert.NotNil(t, registry.Get(ButtonVariantPrimary))

	var nilRegistry *VariantRegistry
	assert.Nil(t, nilRegistry.Get(ButtonVariantPrimary))
}

func TestPaletteSlotsSelectExpectedSets(t *testing.T) {
	t.Parallel()

	palette := defaultPalette()
	assert.Equal(t, palette.Primary, PalettePrimary(palette))
	assert.Equal(t, palette.Danger, PaletteDanger(palette))
	assert.Equal(t, palette.Neutral, PaletteNeutral(palette))
}

func TestSpacingOverride(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	scale := theme.Spacing.Override([]int{0, 2, 4, 6, 8, 12}, nil)

	theme.Spacing = scale
	assert.Equal(t, 4, PaddingValue(theme, SpacingSM))
	assert.Equal(t, 12, PaddingValue(theme, SpacingXL))
	// nil margin slice leaves the default table alone
	assert.Equal(t, 2, MarginValue(theme, SpacingSM))

	// wrong-length slices are ignored entirely
	scale = theme.Spacing.Override([]int{1, 2}, nil)
	theme.Spacing = scale
	assert.Equal(t, 4, PaddingValue(theme, SpacingSM))
}
