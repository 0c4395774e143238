package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomkit/atomkit/internal/ui"
)

// Field frames an input control with a label above and helper text below.
// When an error is set, the frame switches to the error style and the error
// message replaces the helper text. Errors here are user-visible strings,
// recoverable by further input; they never propagate.
type Field struct {
	BaseComponent
	label   string
	content ui.Renderable
	helper  string
	err     error
	focused bool
}

// NewField creates a field with the given label and inner content.
func NewField(label string, content ui.Renderable) *Field {
	return &Field{
		BaseComponent: NewBaseComponent(),
		label:         label,
		content:       content,
	}
}

// View renders the field with the default theme.
func (f *Field) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label, framed content, and helper or error line.
func (f *Field) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	var lines []string
	if f.label != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantLabel).Render(f.label))
	}

	frame := FieldStyle(theme, f.state())
	lines = append(lines, frame.Render(renderChild(f.content, ctx)))

	if f.err != nil {
		errorLine := lipgloss.NewStyle().
			Foreground(theme.Palette.Danger.Base).
			Render(f.err.Error())
		lines = append(lines, errorLine)
	} else if f.helper != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantCaption).Render(f.helper))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (f *Field) state() FieldState {
	if f.err != nil {
		return FieldStateError
	}
	if f.focused {
		return FieldStateFocus
	}
	return FieldStateDefault
}

// WithHelper sets the helper text shown when no error is present.
func (f *Field) WithHelper(helper string) *Field {
	f.helper = helper
	return f
}

// WithError sets the error shown under the field; nil clears it.
func (f *Field) WithError(err error) *Field {
	f.err = err
	return f
}

// WithFocused sets the focus state of the frame.
func (f *Field) WithFocused(focused bool) *Field {
	f.focused = focused
	return f
}

// Err returns the current error, nil when the field is valid.
func (f *Field) Err() error {
	return f.err
}
