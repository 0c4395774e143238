package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomkit/atomkit/internal/option"
)

// IconResolver resolves an icon name to a renderable glyph. An empty
// return means the icon is unknown and nothing is rendered for it.
type IconResolver interface {
	Resolve(name string) string
}

// Chip is a compact pill representing a selected option, with an optional
// icon and remove marker.
type Chip struct {
	BaseComponent
	label     string
	icon      string
	variant   ChipVariant
	removable bool
	icons     IconResolver
}

// NewChip creates a chip with the given label.
func NewChip(label string) *Chip {
	return &Chip{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ChipVariantNeutral,
	}
}

// View renders the chip with the default theme.
func (c *Chip) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the chip with the given theme context.
func (c *Chip) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(c.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}

	var parts []string
	if c.icon != "" && c.icons != nil {
		if glyph := c.icons.Resolve(c.icon); glyph != "" {
			parts = append(parts, glyph)
		}
	}
	parts = append(parts, c.label)
	if c.removable {
		parts = append(parts, "✕")
	}

	return style.Render(strings.Join(parts, " "))
}

// WithVariant sets the chip variant.
func (c *Chip) WithVariant(variant ChipVariant) *Chip {
	c.variant = variant
	return c
}

// WithIcon sets the icon name, resolved through the given resolver.
func (c *Chip) WithIcon(name string, icons IconResolver) *Chip {
	c.icon = name
	c.icons = icons
	return c
}

// WithRemovable renders a remove marker after the label.
func (c *Chip) WithRemovable(removable bool) *Chip {
	c.removable = removable
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Chip) WithAppliers(appliers ...StyleFunc) *Chip {
	c.AddAppliers(appliers...)
	return c
}

// Label returns the chip label.
func (c *Chip) Label() string {
	return c.label
}

// ChipGroup renders the selected subset of an option list as a row of
// chips. It is a pure function of options and selection: the group holds
// no selection state of its own.
type ChipGroup struct {
	BaseComponent
	options   []option.Option
	selection []string
	variant   ChipVariant
	removable bool
	icons     IconResolver
	prefix    string
	gap       int
}

// NewChipGroup creates a chip group over the given options and selection.
func NewChipGroup(options []option.Option, selection []string) *ChipGroup {
	return &ChipGroup{
		BaseComponent: NewBaseComponent(),
		options:       options,
		selection:     selection,
		variant:       ChipVariantPrimary,
		prefix:        "chip",
		gap:           1,
	}
}

// View renders the chip group with the default theme.
func (g *ChipGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders one chip per selected option, in selection order.
func (g *ChipGroup) ViewWithContext(ctx RenderContext) string {
	chips := make([]string, 0, len(g.selection))
	for _, id := range g.selection {
		opt, ok := g.findOption(id)
		if !ok {
			// Stale id: the selection refers to an option that is no
			// longer in the list. Reconciliation is the caller's job;
			// render nothing for it.
			continue
		}

		chip := NewChip(opt.Label).
			WithVariant(g.variant).
			WithRemovable(g.removable)
		if opt.Icon != "" {
			chip.WithIcon(opt.Icon, g.icons)
		}
		chips = append(chips, chip.ViewWithContext(ctx))
	}

	if len(chips) == 0 {
		return ""
	}

	if g.gap > 0 {
		spacer := strings.Repeat(" ", g.gap)
		return lipgloss.JoinHorizontal(lipgloss.Center, interleave(chips, spacer)...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

// TestIDs returns the automation identifiers of the rendered chips, in
// render order.
func (g *ChipGroup) TestIDs() []string {
	ids := make([]string, 0, len(g.selection))
	for _, id := range g.selection {
		if opt, ok := g.findOption(id); ok {
			ids = append(ids, option.TestID(g.prefix, opt.ID))
		}
	}
	return ids
}

func (g *ChipGroup) findOption(id string) (option.Option, bool) {
	for _, opt := range g.options {
		if opt.ID == id {
			return opt, true
		}
	}
	return option.Option{}, false
}

// WithVariant sets the variant used for every chip.
func (g *ChipGroup) WithVariant(variant ChipVariant) *ChipGroup {
	g.variant = variant
	return g
}

// WithRemovable renders remove markers on every chip.
func (g *ChipGroup) WithRemovable(removable bool) *ChipGroup {
	g.removable = removable
	return g
}

// WithIcons sets the icon resolver used for option icons.
func (g *ChipGroup) WithIcons(icons IconResolver) *ChipGroup {
	g.icons = icons
	return g
}

// WithTestIDPrefix sets the prefix used to derive automation identifiers.
func (g *ChipGroup) WithTestIDPrefix(prefix string) *ChipGroup {
	g.prefix = prefix
	return g
}

// WithGap sets the gap between chips.
func (g *ChipGroup) WithGap(gap int) *ChipGroup {
	g.gap = gap
	return g
}

func interleave(views []string, spacer string) []string {
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}
