// Package datepicker implements an inline month-grid date picker. The grid
// is always rendered inline; framing differences (inline vs. modal overlay)
// are a composition concern handled by a Presenter.
package datepicker

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomkit/atomkit/internal/ui/components"
)

const dayWidth = 4

// Model is the Bubble Tea model for the date picker.
type Model struct {
	cursor   time.Time // focused day, always normalized to midnight UTC
	selected *time.Time
	min      *time.Time
	max      *time.Time

	cancelled bool
	done      bool

	onChange  func(time.Time)
	presenter Presenter
	theme     components.Theme
	label     string
}

// New creates a date picker focused on the given day.
func New(initial time.Time) Model {
	return Model{
		cursor:    normalize(initial),
		presenter: InlinePresenter{},
		theme:     components.DefaultTheme(),
	}
}

// WithRange bounds the selectable days. Zero times leave the respective
// side unbounded.
func (m Model) WithRange(min, max time.Time) Model {
	if !min.IsZero() {
		d := normalize(min)
		m.min = &d
	}
	if !max.IsZero() {
		d := normalize(max)
		m.max = &d
	}
	return m
}

// WithSelected seeds the picker with an existing selection.
func (m Model) WithSelected(day time.Time) Model {
	d := normalize(day)
	m.selected = &d
	m.cursor = d
	return m
}

// WithPresenter sets the framing used around the grid.
func (m Model) WithPresenter(p Presenter) Model {
	if p != nil {
		m.presenter = p
	}
	return m
}

// WithOnChange registers a callback invoked after every confirmed
// selection change.
func (m Model) WithOnChange(fn func(time.Time)) Model {
	m.onChange = fn
	return m
}

// WithTheme sets the theme used for rendering.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// WithLabel sets a heading passed to the presenter.
func (m Model) WithLabel(label string) Model {
	m.label = label
	return m
}

// Selected returns the confirmed selection and whether one exists.
func (m Model) Selected() (time.Time, bool) {
	if m.selected == nil {
		return time.Time{}, false
	}
	return *m.selected, true
}

// Cursor returns the currently focused day.
func (m Model) Cursor() time.Time {
	return m.cursor
}

// Cancelled reports whether the picker was dismissed without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Done reports whether a selection was confirmed with enter.
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
		if m.inRange(m.cursor) {
			d := m.cursor
			m.selected = &d
			m.done = true
			if m.onChange != nil {
				m.onChange(d)
			}
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyLeft:
		m.moveCursor(-1)
	case tea.KeyRight:
		m.moveCursor(+1)
	case tea.KeyUp:
		m.moveCursor(-7)
	case tea.KeyDown:
		m.moveCursor(+7)
	case tea.KeyPgUp:
		m.moveMonth(-1)
	case tea.KeyPgDown:
		m.moveMonth(+1)
	case tea.KeyHome:
		m.setCursor(normalize(time.Now().UTC()))
	}

	return m, nil
}

func (m *Model) moveCursor(days int) {
	m.setCursor(m.cursor.AddDate(0, 0, days))
}

// moveMonth shifts the cursor by whole months, clamping the day-of-month
// so January 31 moves to February 28 rather than March 3.
func (m *Model) moveMonth(months int) {
	first := time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	target := first.AddDate(0, months, 0)

	day := m.cursor.Day()
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}
	m.setCursor(time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC))
}

// setCursor clamps the candidate into the configured range.
func (m *Model) setCursor(candidate time.Time) {
	if m.min != nil && candidate.Before(*m.min) {
		candidate = *m.min
	}
	if m.max != nil && candidate.After(*m.max) {
		candidate = *m.max
	}
	m.cursor = candidate
}

func (m Model) inRange(day time.Time) bool {
	if m.min != nil && day.Before(*m.min) {
		return false
	}
	if m.max != nil && day.After(*m.max) {
		return false
	}
	return true
}

// View implements tea.Model.
func (m Model) View() string {
	ctx := components.DefaultContext().WithTheme(m.theme)
	return m.presenter.Present(m.label, m.renderGrid(ctx), ctx)
}

// renderGrid draws the month heading, weekday row, and day grid. The
// cursor day is bracketed and the confirmed selection parenthesized so
// both survive colourless terminals.
func (m Model) renderGrid(ctx components.RenderContext) string {
	theme := ctx.Theme

	var b strings.Builder

	heading := m.cursor.Format("January 2006")
	b.WriteString(components.TypographyStyle(theme, components.TypographyVariantSubtitle).Render("‹ " + heading + " ›"))
	b.WriteString("\n")

	weekdays := components.TypographyStyle(theme, components.TypographyVariantCaption).
		Render(" Su  Mo  Tu  We  Th  Fr  Sa")
	b.WriteString(weekdays)
	b.WriteString("\n")

	first := time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	total := daysIn(m.cursor.Year(), m.cursor.Month())

	var cells []string
	for i := 0; i < offset; i++ {
		cells = append(cells, strings.Repeat(" ", dayWidth))
	}
	for day := 1; day <= total; day++ {
		cells = append(cells, m.renderDay(theme, first.AddDate(0, 0, day-1)))
	}

	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		b.WriteString(strings.Join(cells[i:end], ""))
		b.WriteString("\n")
	}

	help := "arrows move · pgup/pgdn month · enter confirm · esc cancel"
	b.WriteString(components.TypographyStyle(theme, components.TypographyVariantCaption).Render(help))
	return b.String()
}

func (m Model) renderDay(theme components.Theme, day time.Time) string {
	text := day.Format("_2")

	switch {
	case day.Equal(m.cursor):
		text = "[" + text + "]"
	case m.selected != nil && day.Equal(*m.selected):
		text = "(" + text + ")"
	default:
		text = " " + text + " "
	}

	style := lipgloss.NewStyle().Width(dayWidth)
	switch {
	case day.Equal(m.cursor):
		style = style.Bold(true).Foreground(theme.Palette.Primary.Base)
	case m.selected != nil && day.Equal(*m.selected):
		style = style.Foreground(theme.Palette.Primary.Accent)
	case !m.inRange(day):
		style = style.Faint(true)
	}
	return style.Render(text)
}

func normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
