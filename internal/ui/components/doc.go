// Package components provides atomkit's theme-aware component layer for
// terminal applications, built on lipgloss.
//
// # Architecture
//
// The package has three layers:
//
//  1. Theme layer - immutable design tokens (palette, spacing, typography,
//     borders, field frames).
//  2. Modifier layer - StyleFunc transformations that apply theme data to
//     lipgloss styles.
//  3. Component layer - composable elements that render to strings.
//
// Themes flow explicitly through RenderContext rather than global state:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := chip.ViewWithContext(ctx)
//
// View() renders with the default theme for quick use:
//
//	output := chip.View()
//
// # Components
//
// Primitives: Text, Header, Divider, Spacer, Button, Toggle.
// Layout: Stack (vertical/horizontal with gap), Container, Card.
// Selection views: Chip, ChipGroup, OptionList - pure views over the
// options and selection values owned by the caller (see internal/option
// for the state model), plus Field, the labeled frame with helper and
// error text used by the input models in internal/tui.
//
// # Styling
//
// Components accept theme-aware modifiers through WithAppliers:
//
//	card := NewCard(content).WithAppliers(
//		Background(PaletteSurface),
//		Padding(SpacingMD),
//		Border(BorderVariantRounded),
//	)
//
// Variant tokens (ButtonVariant, ChipVariant) resolve through the theme's
// VariantRegistry, so a theme can restyle every variant without touching
// component code.
//
// Rendering is deterministic: the same component with the same context
// always produces the same output, which keeps tests stable and lets
// multiple themes coexist in one program.
package components
