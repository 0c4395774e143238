package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomkit/atomkit/internal/option"
)

func sampleOptions() []option.Option {
	return []option.Option{
		{ID: "apples", Label: "Apples"},
		{ID: "bananas", Label: "Bananas"},
		{ID: "cherries", Label: "Cherries", Disabled: true},
		{ID: "dates", Label: "Dates", Description: "Sweet and sticky"},
	}
}

func press(t *testing.T, m Model, keys ...tea.KeyType) Model {
	t.Helper()
	for _, key := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: key})
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeRunes(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range text {
		next, c := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
		cmd = c
	}
	return m, cmd
}

// settle applies the pending query immediately, standing in for the
// debounce timer expiring.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(debounceMsg{id: m.debounceID})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestToggleMulti(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)

	m = press(t, m, tea.KeySpace)
	assert.Equal(t, []string{"apples"}, m.Selection())

	m = press(t, m, tea.KeyDown, tea.KeySpace)
	assert.Equal(t, []string{"apples", "bananas"}, m.Selection())

	// Toggling again removes only that entry.
	m = press(t, m, tea.KeySpace)
	assert.Equal(t, []string{"apples"}, m.Selection())
}

func TestToggleSingleReplaces(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeSingle)

	m = press(t, m, tea.KeySpace)
	assert.Equal(t, []string{"apples"}, m.Selection())

	m = press(t, m, tea.KeyDown, tea.KeySpace)
	assert.Equal(t, []string{"bananas"}, m.Selection())

	// Re-selecting the active option clears it.
	m = press(t, m, tea.KeySpace)
	assert.Empty(t, m.Selection())
}

func TestCursorSkipsDisabledOptions(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)

	// Down twice lands on dates, hopping over disabled cherries.
	m = press(t, m, tea.KeyDown, tea.KeyDown, tea.KeySpace)
	assert.Equal(t, []string{"dates"}, m.Selection())

	// Up from dates lands back on bananas.
	m = press(t, m, tea.KeyUp, tea.KeySpace)
	assert.Equal(t, []string{"dates", "bananas"}, m.Selection())
}

func TestCursorStaysAtEdges(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)

	m = press(t, m, tea.KeyUp, tea.KeyUp, tea.KeySpace)
	assert.Equal(t, []string{"apples"}, m.Selection())

	m = press(t, m, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeySpace)
	assert.Equal(t, []string{"apples", "dates"}, m.Selection())
}

func TestSearchDebounce(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)

	m, cmd := typeRunes(t, m, "ban")
	require.NotNil(t, cmd)

	// Before the timer fires the full list is still visible.
	assert.Len(t, m.visible, 4)

	m = settle(t, m)
	require.Len(t, m.visible, 1)
	assert.Equal(t, "bananas", m.visible[0].ID)

	// Toggling now operates on the filtered row.
	m = press(t, m, tea.KeySpace)
	assert.Equal(t, []string{"bananas"}, m.Selection())
}

func TestStaleDebounceTimerIsIgnored(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)

	m, _ = typeRunes(t, m, "b")
	staleID := m.debounceID
	m, _ = typeRunes(t, m, "an")

	next, _ := m.Update(debounceMsg{id: staleID})
	m = next.(Model)
	assert.Len(t, m.visible, 4, "stale timer must not apply the query")

	m = settle(t, m)
	assert.Len(t, m.visible, 1)
}

func TestSearchMatchesDescriptions(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)
	m, _ = typeRunes(t, m, "sticky")
	m = settle(t, m)

	require.Len(t, m.visible, 1)
	assert.Equal(t, "dates", m.visible[0].ID)
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	var reported []string
	m := New(sampleOptions(), []string{"apples", "dates"}, option.ModeMulti).
		WithOnChange(func(selection []string) { reported = selection })

	m = press(t, m, tea.KeyCtrlL)

	assert.Empty(t, m.Selection())
	assert.NotNil(t, reported)
	assert.Empty(t, reported)
}

func TestOnChangeReportsEveryToggle(t *testing.T) {
	t.Parallel()

	var calls [][]string
	m := New(sampleOptions(), nil, option.ModeMulti).
		WithOnChange(func(selection []string) { calls = append(calls, selection) })

	m = press(t, m, tea.KeySpace, tea.KeySpace)

	require.Len(t, calls, 2)
	assert.Equal(t, []string{"apples"}, calls[0])
	assert.Empty(t, calls[1])
}

func TestEscCancelsAndResetsQuery(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), []string{"apples"}, option.ModeMulti)
	m, _ = typeRunes(t, m, "ban")
	m = settle(t, m)

	m = press(t, m, tea.KeyEsc)

	assert.True(t, m.Cancelled())
	assert.False(t, m.Done())
	assert.Empty(t, m.Query())
	assert.Len(t, m.visible, 4)
	// Cancelling leaves the last reported selection intact for the caller.
	assert.Equal(t, []string{"apples"}, m.Selection())
}

func TestEnterConfirms(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeSingle)
	m = press(t, m, tea.KeySpace, tea.KeyEnter)

	assert.True(t, m.Done())
	assert.False(t, m.Cancelled())
	assert.Equal(t, []string{"apples"}, m.Selection())
}

func TestSelectionIsNeverNil(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)
	assert.NotNil(t, m.Selection())

	m = press(t, m, tea.KeySpace, tea.KeySpace)
	assert.NotNil(t, m.Selection())
	assert.Empty(t, m.Selection())
}

func TestSelectionDoesNotAliasInternalState(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)
	m = press(t, m, tea.KeySpace)

	got := m.Selection()
	got[0] = "mutated"
	assert.Equal(t, []string{"apples"}, m.Selection())
}

func TestViewShowsEmptyState(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), nil, option.ModeMulti)
	m, _ = typeRunes(t, m, "zzz")
	m = settle(t, m)

	assert.Contains(t, m.View(), "No results")
}

func TestViewRendersMarkersAndCursor(t *testing.T) {
	t.Parallel()

	m := New(sampleOptions(), []string{"apples"}, option.ModeMulti).WithTitle("Fruit")

	view := m.View()
	assert.Contains(t, view, "Fruit")
	assert.Contains(t, view, "[x] Apples")
	assert.Contains(t, view, "[ ] Bananas")
	assert.Contains(t, view, ">")
}
