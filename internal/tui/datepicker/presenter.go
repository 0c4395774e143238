package datepicker

import (
	"github.com/atomkit/atomkit/internal/ui/components"
)

// Presenter frames the rendered month grid. The grid itself is identical
// everywhere; only the surrounding chrome differs between hosts.
type Presenter interface {
	Present(label, grid string, ctx components.RenderContext) string
}

// InlinePresenter renders the grid as-is, with an optional label line
// above it. This is the default.
type InlinePresenter struct{}

func (InlinePresenter) Present(label, grid string, ctx components.RenderContext) string {
	if label == "" {
		return grid
	}
	stack := components.VStack(
		components.NewText(label),
		rawContent(grid),
	)
	return stack.ViewWithContext(ctx)
}

// ModalPresenter frames the grid in a bordered card, standing in for a
// modal overlay in hosts that center it over dimmed content.
type ModalPresenter struct{}

func (ModalPresenter) Present(label, grid string, ctx components.RenderContext) string {
	card := components.NewCard(rawContent(grid))
	if label != "" {
		card = card.WithTitle(label)
	}
	return card.ViewWithContext(ctx)
}

type rawContent string

func (r rawContent) View() string { return string(r) }
