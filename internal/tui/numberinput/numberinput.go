// Package numberinput implements a numeric text field. Keystrokes that
// would break the numeric shape are dropped at the gate; bound violations
// surface as an error line under the field.
package numberinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomkit/atomkit/internal/ui/components"
	"github.com/atomkit/atomkit/internal/validate"
)

// Model is the Bubble Tea model for the numeric input.
type Model struct {
	input textinput.Model
	rule  validate.NumericRule
	err   error

	cancelled bool
	done      bool

	onChange func(string)
	theme    components.Theme
	label    string
	helper   string
}

// New creates a numeric input constrained by the given rule.
func New(rule validate.NumericRule) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	return Model{
		input: input,
		rule:  rule,
		theme: components.DefaultTheme(),
	}
}

// WithLabel sets the field label.
func (m Model) WithLabel(label string) Model {
	m.label = label
	return m
}

// WithHelper sets helper text shown while the value is valid.
func (m Model) WithHelper(helper string) Model {
	m.helper = helper
	return m
}

// WithValue seeds the field with an initial value. Text that fails the
// keystroke gate is ignored.
func (m Model) WithValue(text string) Model {
	if validate.AcceptNumericText(text, m.rule) {
		m.input.SetValue(text)
		m.err = validate.ValidateNumericText(text, m.rule)
	}
	return m
}

// WithOnChange registers a callback invoked with the raw text after every
// accepted edit.
func (m Model) WithOnChange(fn func(string)) Model {
	m.onChange = fn
	return m
}

// WithTheme sets the theme used for rendering.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// Text returns the raw text currently in the field.
func (m Model) Text() string {
	return m.input.Value()
}

// Value returns the parsed number and whether the field currently holds a
// complete valid value.
func (m Model) Value() (float64, bool) {
	if m.err != nil {
		return 0, false
	}
	return validate.ParseNumericText(m.input.Value())
}

// Err returns the current validation error, nil while the value is valid
// or still provisional.
func (m Model) Err() error {
	return m.err
}

// Cancelled reports whether the input was dismissed without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Done reports whether the input was confirmed with enter. Confirmation
// is refused while the value is invalid.
func (m Model) Done() bool {
	return m.done
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.err == nil {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	before := m.input.Value()
	next := m.input
	var cmd tea.Cmd
	next, cmd = next.Update(msg)

	// The gate drops any edit that breaks the numeric shape, keeping the
	// previous text in place.
	if next.Value() != before && !validate.AcceptNumericText(next.Value(), m.rule) {
		return m, cmd
	}

	m.input = next
	if m.input.Value() != before {
		m.err = validate.ValidateNumericText(m.input.Value(), m.rule)
		if m.onChange != nil {
			m.onChange(m.input.Value())
		}
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	ctx := components.DefaultContext().WithTheme(m.theme)

	label := m.label
	if label == "" {
		label = "Number"
	}

	field := components.NewField(label, rawLine(m.input.View())).
		WithFocused(true).
		WithHelper(m.helper).
		WithError(m.err)
	return field.ViewWithContext(ctx)
}

type rawLine string

func (r rawLine) View() string { return string(r) }
