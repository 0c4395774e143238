package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomkit/atomkit/internal/ui"
)

// Container is a generic box holding children with border, padding, and
// margin. It is the foundation for Card and the field frames.
type Container struct {
	BaseComponent
	layout  *Stack
	border  lipgloss.Border
	padding Spacing
	margin  Spacing
}

// NewContainer creates a container with the given children in a vertical layout.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container and its children with the given context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(ctx)
	}

	style := c.ComputeStyle(ctx.Theme)
	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
	}
	style = c.padding.apply(style)
	if !c.margin.IsZero() {
		style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
	}
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}

	return style.Render(content)
}

// WithBorder sets the border glyph set.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithPadding sets the inner padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the outer margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithDirection sets the layout direction of the children.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the contained children.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// SetChildren replaces all children.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.layout.SetChildren(children)
	return c
}
