package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomkit/atomkit/internal/ui"
)

// Card is a container with rounded border and surface styling, used to
// group related content.
type Card struct {
	*Container
}

// NewCard creates a card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(UniformSpacing(1)).
		WithAppliers(
			Background(PaletteSurface),
			BorderColour(PaletteNeutral),
		)

	return &Card{Container: container}
}

// WithTitle prepends a title header to the card content.
func (c *Card) WithTitle(title string) *Card {
	children := make([]ui.Renderable, 0, len(c.Children())+1)
	children = append(children, NewHeader(title))
	children = append(children, c.Children()...)
	c.SetChildren(children)
	return c
}

// WithFooter appends a divider and footer content to the card.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(HorizontalDivider(), footer)
	return c
}
