package components

import "strings"

// Divider renders a horizontal rule of repeated glyphs.
type Divider struct {
	BaseComponent
	glyph string
	width int
}

const defaultDividerWidth = 40

// HorizontalDivider creates a thin horizontal divider.
func HorizontalDivider() *Divider {
	return newDivider("─")
}

// DashedDivider creates a dashed horizontal divider.
func DashedDivider() *Divider {
	return newDivider("╌")
}

// ThickDivider creates a thick horizontal divider.
func ThickDivider() *Divider {
	return newDivider("━")
}

func newDivider(glyph string) *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		glyph:         glyph,
		width:         defaultDividerWidth,
	}
	d.SetAppliers(MutedForeground(PaletteNeutral))
	return d
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with the given theme context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if ctx.MaxWidth > 0 && width > ctx.MaxWidth {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		return ""
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.glyph, width))
}

// WithWidth sets the divider width in cells.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// Spacer renders empty vertical space.
type Spacer struct {
	lines int
}

// NewSpacer creates a spacer of the given number of blank lines.
func NewSpacer(lines int) *Spacer {
	return &Spacer{lines: lines}
}

// View renders the blank lines.
func (s *Spacer) View() string {
	if s.lines <= 0 {
		return ""
	}
	return strings.Repeat("\n", s.lines-1)
}
