package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomkit/atomkit/internal/option"
)

// OptionList renders a list of options with selection markers. It is a pure
// view of caller-owned state: the options, the selection, and the cursor
// all come from outside, and toggling is handled by the tui models.
type OptionList struct {
	BaseComponent
	options      []option.Option
	selection    []string
	mode         option.Mode
	cursor       int
	icons        IconResolver
	prefix       string
	emptyMessage string
}

// NewOptionList creates an option list over the given options and selection.
func NewOptionList(options []option.Option, selection []string, mode option.Mode) *OptionList {
	return &OptionList{
		BaseComponent: NewBaseComponent(),
		options:       options,
		selection:     selection,
		mode:          mode,
		cursor:        -1,
		prefix:        "list",
		emptyMessage:  "No results",
	}
}

// View renders the list with the default theme.
func (l *OptionList) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the option rows with the given theme context.
// An empty option list renders the designated no-results state.
func (l *OptionList) ViewWithContext(ctx RenderContext) string {
	if len(l.options) == 0 {
		return TypographyStyle(ctx.Theme, TypographyVariantCaption).Render(l.emptyMessage)
	}

	rows := make([]string, 0, len(l.options))
	for i, opt := range l.options {
		rows = append(rows, l.renderRow(ctx, opt, i == l.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (l *OptionList) renderRow(ctx RenderContext, opt option.Option, underCursor bool) string {
	theme := ctx.Theme

	marker := l.marker(option.Contains(l.selection, opt.ID))

	var glyph string
	if opt.Icon != "" && l.icons != nil {
		if resolved := l.icons.Resolve(opt.Icon); resolved != "" {
			glyph = resolved + " "
		}
	}

	label := opt.Label
	if opt.Description != "" {
		caption := TypographyStyle(theme, TypographyVariantCaption).Render(opt.Description)
		label += "  " + caption
	}

	cursor := "  "
	if underCursor {
		cursor = TypographyStyle(theme, TypographyVariantEmphasis).
			Foreground(theme.Palette.Primary.Base).Render("> ")
	}

	row := cursor + marker + " " + glyph + label

	style := l.ComputeStyle(theme)
	if opt.Disabled {
		style = style.Faint(true)
	}
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(row)
}

func (l *OptionList) marker(selected bool) string {
	if l.mode == option.ModeMulti {
		if selected {
			return "[x]"
		}
		return "[ ]"
	}
	if selected {
		return "(•)"
	}
	return "( )"
}

// TestIDs returns the automation identifiers of the rendered rows, in
// render order.
func (l *OptionList) TestIDs() []string {
	ids := make([]string, 0, len(l.options))
	for _, opt := range l.options {
		ids = append(ids, option.TestID(l.prefix, opt.ID))
	}
	return ids
}

// WithCursor highlights the row at the given index; -1 disables the cursor.
func (l *OptionList) WithCursor(cursor int) *OptionList {
	l.cursor = cursor
	return l
}

// WithIcons sets the icon resolver used for option icons.
func (l *OptionList) WithIcons(icons IconResolver) *OptionList {
	l.icons = icons
	return l
}

// WithTestIDPrefix sets the prefix used to derive automation identifiers.
func (l *OptionList) WithTestIDPrefix(prefix string) *OptionList {
	l.prefix = prefix
	return l
}

// WithEmptyMessage sets the text shown when no options are present.
func (l *OptionList) WithEmptyMessage(message string) *OptionList {
	if strings.TrimSpace(message) != "" {
		l.emptyMessage = message
	}
	return l
}

// WithAppliers applies theme-based style modifiers to each row.
func (l *OptionList) WithAppliers(appliers ...StyleFunc) *OptionList {
	l.AddAppliers(appliers...)
	return l
}
