package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour slot: a background colour, a legible
// foreground for content on it, a desaturated variant, and an accent that
// stands out against it. All colours are adaptive, carrying light and dark
// terminal variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
	Accent lipgloss.AdaptiveColor
}

// Palette groups the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a semantic colour slot from a Palette. Use the
// predefined slots with style modifiers: Background(PalettePrimary),
// Foreground(PaletteDanger), and so on.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups the reusable border definitions of a theme. Borders are
// the terminal analogue of a border-radius scale: rounded corners come from
// the rounded border glyph set.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// BorderVariant is a typed border token.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// SpacingToken is a typed spacing size on the theme's spacing scale.
type SpacingToken int

const (
	SpacingNone SpacingToken = iota
	SpacingXS
	SpacingSM
	SpacingMD
	SpacingLG
	SpacingXL
)

const spacingTokenCount = int(SpacingXL) + 1

type spacingTable [spacingTokenCount]int

// SpacingScale stores distinct spacing tables for padding and margin.
type SpacingScale struct {
	Padding spacingTable
	Margin  spacingTable
}

// Override replaces the padding and margin tables with the given values.
// A slice is applied only when it carries exactly one value per token;
// nil or wrong-length slices leave the existing table untouched.
func (s SpacingScale) Override(padding, margin []int) SpacingScale {
	if len(padding) == spacingTokenCount {
		for i, value := range padding {
			s.Padding[i] = value
		}
	}
	if len(margin) == spacingTokenCount {
		for i, value := range margin {
			s.Margin[i] = value
		}
	}
	return s
}

// TypographyVariant is a typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantLabel
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantEmphasis
)

// TypographyScale contains the semantic typography presets of a theme.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// FieldState selects the visual state of an input field frame.
type FieldState int

const (
	FieldStateDefault FieldState = iota
	FieldStateFocus
	FieldStateError
)

// FieldStyles describes the frame styles for input fields per state.
type FieldStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Error   lipgloss.Style
}

// ButtonVariant is a typed button style token.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantWarning
	ButtonVariantGhost
)

// ChipVariant is a typed chip style token.
type ChipVariant int

const (
	ChipVariantNeutral ChipVariant = iota
	ChipVariantPrimary
	ChipVariantSuccess
	ChipVariantWarning
	ChipVariantDanger
)

// VariantRegistry maps component variant tokens to styling strategies, so
// themes define variant styling as data rather than code.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil when unregistered.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of design tokens for the component kit. Themes
// are created once and passed read-only through RenderContext; derive new
// themes by copying and re-normalizing rather than mutating in place.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingScale
	Typography TypographyScale
	Field      FieldStyles
	Variants   *VariantRegistry
}

// NewTheme builds a complete theme from a palette: borders, typography,
// field frames, and variant strategies are all derived. This is the entry
// point for themes loaded from configuration, which only specify colours.
func NewTheme(name string, palette Palette) Theme {
	borders := defaultBorders()
	theme := Theme{
		Name:       name,
		Palette:    palette,
		Borders:    borders,
		Spacing:    SpacingScale{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: defaultTypography(palette),
		Field:      defaultFieldStyles(palette, borders),
		Variants:   defaultVariants(),
	}
	return theme.Normalize()
}

// Normalize returns a theme with spacing and variants initialized. Themes
// with hand-tweaked fields pass through here so zero values pick up
// sensible defaults.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Variants == nil {
		t.Variants = defaultVariants()
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingNone: 0,
		SpacingXS:   1,
		SpacingSM:   2,
		SpacingMD:   3,
		SpacingLG:   4,
		SpacingXL:   6,
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultPalette() Palette {
	return Palette{
		Primary: ColourSet{
			Base:   adaptive("#5e81ac", "#81a1c1"),
			OnBase: adaptive("#eceff4", "#2e3440"),
			Muted:  adaptive("#81a1c1", "#5e81ac"),
			Accent: adaptive("#ebcb8b", "#ebcb8b"),
		},
		Secondary: ColourSet{
			Base:   adaptive("#b48ead", "#b48ead"),
			OnBase: adaptive("#eceff4", "#2e3440"),
			Muted:  adaptive("#a3788f", "#8f6a85"),
			Accent: adaptive("#88c0d0", "#88c0d0"),
		},
		Surface: ColourSet{
			Base:   adaptive("#eceff4", "#2e3440"),
			OnBase: adaptive("#2e3440", "#eceff4"),
			Muted:  adaptive("#e5e9f0", "#3b4252"),
			Accent: adaptive("#5e81ac", "#88c0d0"),
		},
		Success: ColourSet{
			Base:   adaptive("#a3be8c", "#a3be8c"),
			OnBase: adaptive("#2e3440", "#2e3440"),
			Muted:  adaptive("#8fae73", "#7a9960"),
			Accent: adaptive("#eceff4", "#eceff4"),
		},
		Warning: ColourSet{
			Base:   adaptive("#ebcb8b", "#ebcb8b"),
			OnBase: adaptive("#3b2f1a", "#3b2f1a"),
			Muted:  adaptive("#d9b86f", "#c2a055"),
			Accent: adaptive("#2e3440", "#2e3440"),
		},
		Danger: ColourSet{
			Base:   adaptive("#bf616a", "#bf616a"),
			OnBase: adaptive("#eceff4", "#eceff4"),
			Muted:  adaptive("#a3545c", "#8f474f"),
			Accent: adaptive("#eceff4", "#eceff4"),
		},
		Info: ColourSet{
			Base:   adaptive("#88c0d0", "#88c0d0"),
			OnBase: adaptive("#2e3440", "#2e3440"),
			Muted:  adaptive("#6fa8b8", "#5b99aa"),
			Accent: adaptive("#eceff4", "#eceff4"),
		},
		Neutral: ColourSet{
			Base:   adaptive("#4c566a", "#d8dee9"),
			OnBase: adaptive("#eceff4", "#2e3440"),
			Muted:  adaptive("#434c5e", "#a7b0c0"),
			Accent: adaptive("#eceff4", "#4c566a"),
		},
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Faint(true).Foreground(p.Secondary.Muted),
		Label:    body.Bold(true),
		Caption:  body.Faint(true),
		Code:     body.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
	}
}

func defaultFieldStyles(p Palette, b BorderSet) FieldStyles {
	frame := lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface.Base).
		Foreground(p.Surface.OnBase)

	return FieldStyles{
		Default: frame.
			BorderStyle(b.Rounded).
			BorderForeground(p.Neutral.Muted),
		Focus: frame.
			BorderStyle(b.Thick).
			BorderForeground(p.Primary.Base),
		Error: frame.
			BorderStyle(b.Thick).
			BorderForeground(p.Danger.Base),
	}
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registerButtonVariants(registry)
	registerChipVariants(registry)
	return registry
}

func registerButtonVariants(registry *VariantRegistry) {
	button := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSM),
		)
	}

	registry.Register(ButtonVariantPrimary, button(PalettePrimary))
	registry.Register(ButtonVariantSecondary, button(PaletteSecondary))
	registry.Register(ButtonVariantSuccess, button(PaletteSuccess))
	registry.Register(ButtonVariantDanger, button(PaletteDanger))
	registry.Register(ButtonVariantWarning, button(PaletteWarning))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PaletteNeutral),
		PaddingX(SpacingSM),
	))
}

func registerChipVariants(registry *VariantRegistry) {
	chip := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingXS),
		)
	}

	registry.Register(ChipVariantNeutral, chip(PaletteNeutral))
	registry.Register(ChipVariantPrimary, chip(PalettePrimary))
	registry.Register(ChipVariantSuccess, chip(PaletteSuccess))
	registry.Register(ChipVariantWarning, chip(PaletteWarning))
	registry.Register(ChipVariantDanger, chip(PaletteDanger))
}

// DefaultTheme returns the kit's built-in adaptive theme.
func DefaultTheme() Theme {
	return NewTheme("default", defaultPalette())
}

// DarkTheme returns a variant tuned for dark terminals: surfaces stay dark
// in both colour profiles.
func DarkTheme() Theme {
	palette := defaultPalette()
	palette.Surface = ColourSet{
		Base:   adaptive("#2e3440", "#242933"),
		OnBase: adaptive("#eceff4", "#d8dee9"),
		Muted:  adaptive("#3b4252", "#2e3440"),
		Accent: adaptive("#88c0d0", "#88c0d0"),
	}
	palette.Neutral = ColourSet{
		Base:   adaptive("#434c5e", "#3b4252"),
		OnBase: adaptive("#e5e9f0", "#d8dee9"),
		Muted:  adaptive("#3b4252", "#333a47"),
		Accent: adaptive("#eceff4", "#eceff4"),
	}
	return NewTheme("dark", palette)
}

// Token lookup helpers.

// BorderForVariant returns the themed border for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding cells for the given token.
func PaddingValue(theme Theme, token SpacingToken) int {
	return spacingLookup(theme.Spacing.Padding, token)
}

// MarginValue returns the margin cells for the given token.
func MarginValue(theme Theme, token SpacingToken) int {
	return spacingLookup(theme.Spacing.Margin, token)
}

func spacingLookup(table spacingTable, token SpacingToken) int {
	index := int(token)
	if index < 0 || index >= len(table) {
		index = int(SpacingSM)
	}
	return table[index]
}

// TypographyStyle returns the themed typography preset for the variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// FieldStyle returns the themed input frame style for the state.
func FieldStyle(theme Theme, state FieldState) lipgloss.Style {
	switch state {
	case FieldStateFocus:
		return theme.Field.Focus
	case FieldStateError:
		return theme.Field.Error
	default:
		return theme.Field.Default
	}
}

// Style modifiers.

// Background applies a slot's base colour as background together with its
// matching legible foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour as foreground only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// MutedForeground applies a slot's muted colour as foreground.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Muted)
	}
}

// Border applies a themed border.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour applies a slot's base colour to the border.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.BorderForeground(cs.Base)
	}
}

// Padding applies uniform themed padding.
func Padding(token SpacingToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, token))
	}
}

// PaddingX applies themed horizontal padding.
func PaddingX(token SpacingToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, token)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies themed vertical padding.
func PaddingY(token SpacingToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, token)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin applies uniform themed margin.
func Margin(token SpacingToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, token))
	}
}

// MarginX applies themed horizontal margin.
func MarginX(token SpacingToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, token)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// Typography applies a themed typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
