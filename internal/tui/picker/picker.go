// Package picker implements the interactive option picker. The model is a
// controlled component: it derives every next selection through the pure
// reducers in internal/option and reports it outward, never reaching into
// caller state.
package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomkit/atomkit/internal/option"
	"github.com/atomkit/atomkit/internal/ui/components"
)

// debounceInterval is the delay after the last search keystroke before the
// query is applied to the visible list.
const debounceInterval = 100 * time.Millisecond

// debounceMsg fires after the debounce timer expires. Only the message
// carrying the latest id is honoured.
type debounceMsg struct {
	id uint64
}

// Model is the Bubble Tea model for the option picker.
type Model struct {
	options   []option.Option
	visible   []option.Option
	selection []string
	mode      option.Mode

	cursor int // index into visible; -1 when the list is empty
	input  textinput.Model

	// debounceID tracks the latest debounce timer; only a matching
	// debounceMsg applies the pending query.
	debounceID uint64

	cancelled bool
	done      bool

	onChange func([]string)
	theme    components.Theme
	icons    components.IconResolver
	title    string
}

// New creates a picker over the given options with an initial selection.
func New(options []option.Option, selection []string, mode option.Mode) Model {
	input := textinput.New()
	input.Placeholder = "Type to search"
	input.Prompt = "/ "
	input.Focus()

	m := Model{
		options:   options,
		visible:   options,
		selection: append([]string(nil), selection...),
		mode:      mode,
		input:     input,
		theme:     components.DefaultTheme(),
	}
	m.cursor = m.firstSelectable(0, +1)
	return m
}

// WithOnChange registers a callback invoked with the new selection after
// every toggle or clear.
func (m Model) WithOnChange(fn func([]string)) Model {
	m.onChange = fn
	return m
}

// WithTheme sets the theme used for rendering.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// WithIcons sets the resolver used for option icons.
func (m Model) WithIcons(icons components.IconResolver) Model {
	m.icons = icons
	return m
}

// WithTitle sets a heading rendered above the search box.
func (m Model) WithTitle(title string) Model {
	m.title = title
	return m
}

// Selection returns the current selection in toggle order. The result is
// never nil so callers and callbacks can range and compare lengths without
// a nil check.
func (m Model) Selection() []string {
	out := make([]string, 0, len(m.selection))
	return append(out, m.selection...)
}

// Cancelled reports whether the picker was dismissed without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Done reports whether the picker was confirmed with enter.
func (m Model) Done() bool {
	return m.done
}

// Query returns the currently applied search query.
func (m Model) Query() string {
	return m.input.Value()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if msg.id != m.debounceID {
			return m, nil
		}
		m.applyQuery()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		m.resetQuery()
		return m, tea.Quit

	case tea.KeyEnter:
		m.done = true
		m.resetQuery()
		return m, tea.Quit

	case tea.KeyUp:
		m.cursor = m.nextSelectable(m.cursor, -1)
		return m, nil

	case tea.KeyDown:
		m.cursor = m.nextSelectable(m.cursor, +1)
		return m, nil

	case tea.KeySpace, tea.KeyTab:
		m.toggleUnderCursor()
		return m, nil

	case tea.KeyCtrlL:
		m.selection = option.ClearAll()
		m.notify()
		return m, nil
	}

	// Everything else edits the search box.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.startDebounce())
	}
	return m, cmd
}

// startDebounce increments the debounce counter and schedules a tick that
// applies the query once no newer keystroke has superseded it.
func (m *Model) startDebounce() tea.Cmd {
	m.debounceID++
	id := m.debounceID
	return tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{id: id}
	})
}

// applyQuery recomputes the visible list from the search box value and
// clamps the cursor back onto a selectable row.
func (m *Model) applyQuery() {
	m.visible = option.Filter(m.options, m.input.Value())
	m.cursor = m.firstSelectable(0, +1)
}

// resetQuery clears the search state so a reopened picker starts fresh.
func (m *Model) resetQuery() {
	m.input.SetValue("")
	m.visible = m.options
}

func (m *Model) toggleUnderCursor() {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return
	}
	opt := m.visible[m.cursor]
	if opt.Disabled {
		return
	}
	m.selection = option.Apply(m.selection, opt.ID, m.mode)
	m.notify()
}

func (m *Model) notify() {
	if m.onChange != nil {
		m.onChange(m.Selection())
	}
}

// firstSelectable returns the first enabled row scanning from start in the
// given direction, or -1 when none exists.
func (m Model) firstSelectable(start, dir int) int {
	for i := start; i >= 0 && i < len(m.visible); i += dir {
		if !m.visible[i].Disabled {
			return i
		}
	}
	return -1
}

// nextSelectable moves the cursor one enabled row in the given direction,
// staying put at the edges.
func (m Model) nextSelectable(cursor, dir int) int {
	if cursor < 0 {
		return m.firstSelectable(0, +1)
	}
	if next := m.firstSelectable(cursor+dir, dir); next >= 0 {
		return next
	}
	return cursor
}

// View implements tea.Model.
func (m Model) View() string {
	ctx := components.DefaultContext().WithTheme(m.theme)

	list := components.NewOptionList(m.visible, m.selection, m.mode).
		WithCursor(m.cursor).
		WithEmptyMessage("No results")
	if m.icons != nil {
		list = list.WithIcons(m.icons)
	}

	stack := components.VStack().WithGap(1)
	if m.title != "" {
		stack.Add(components.NewHeader(m.title))
	}
	stack.Add(rawLine(m.input.View()), list, m.helpLine())
	return stack.ViewWithContext(ctx)
}

func (m Model) helpLine() *components.Text {
	help := "space toggle · enter confirm · esc cancel · ctrl+l clear"
	if m.mode == option.ModeSingle {
		help = "space select · enter confirm · esc cancel"
	}
	return components.CaptionText(help)
}

// rawLine wraps an already rendered string so it can sit inside a stack.
type rawLine string

func (r rawLine) View() string { return string(r) }
