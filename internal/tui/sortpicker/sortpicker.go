// Package sortpicker implements a single-select list that carries a sort
// direction. Selecting the active column flips the direction; selecting a
// new column resets it to ascending.
package sortpicker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomkit/atomkit/internal/option"
	"github.com/atomkit/atomkit/internal/ui/components"
)

const (
	ascendingGlyph  = "↑"
	descendingGlyph = "↓"
)

// Model is the Bubble Tea model for the sort picker.
type Model struct {
	options []option.Option
	state   option.SortState
	cursor  int

	cancelled bool
	done      bool

	onSort func(option.SortState)
	theme  components.Theme
	title  string
}

// New creates a sort picker over the given sortable columns.
func New(options []option.Option, state option.SortState) Model {
	return Model{
		options: options,
		state:   state,
		theme:   components.DefaultTheme(),
	}
}

// WithOnSort registers a callback invoked with the new sort state after
// every change.
func (m Model) WithOnSort(fn func(option.SortState)) Model {
	m.onSort = fn
	return m
}

// WithTheme sets the theme used for rendering.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// WithTitle sets a heading rendered above the list.
func (m Model) WithTitle(title string) Model {
	m.title = title
	return m
}

// State returns the current sort state.
func (m Model) State() option.SortState {
	return m.state
}

// Cancelled reports whether the picker was dismissed without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Done reports whether the picker was confirmed with enter.
func (m Model) Done() bool {
	return m.done
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case tea.KeyDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}

	case tea.KeySpace, tea.KeyTab:
		m.applySort()
	}

	return m, nil
}

func (m *Model) applySort() {
	if m.cursor < 0 || m.cursor >= len(m.options) {
		return
	}
	m.state = option.ApplySort(m.state, m.options[m.cursor].ID)
	if m.onSort != nil {
		m.onSort(m.state)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	ctx := components.DefaultContext().WithTheme(m.theme)

	rows := components.VStack()
	for i, opt := range m.options {
		rows.Add(rowText(m.renderRow(opt, i == m.cursor)))
	}

	stack := components.VStack().WithGap(1)
	if m.title != "" {
		stack.Add(components.NewHeader(m.title))
	}
	stack.Add(rows, components.CaptionText("space sort · enter confirm · esc cancel"))
	return stack.ViewWithContext(ctx)
}

func (m Model) renderRow(opt option.Option, underCursor bool) string {
	cursor := "  "
	if underCursor {
		cursor = "> "
	}

	marker := "( )"
	glyph := ""
	if m.state.SelectedID == opt.ID {
		marker = "(•)"
		glyph = " " + ascendingGlyph
		if m.state.Direction == option.DirectionDescending {
			glyph = " " + descendingGlyph
		}
	}

	return cursor + marker + " " + opt.Label + glyph
}

type rowText string

func (r rowText) View() string { return string(r) }
