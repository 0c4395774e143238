package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMultiTogglesMembership(t *testing.T) {
	t.Parallel()

	selection := []string{}
	selection = Apply(selection, "a", ModeMulti)
	require.Equal(t, []string{"a"}, selection)

	selection = Apply(selection, "c", ModeMulti)
	require.Equal(t, []string{"a", "c"}, selection)

	selection = Apply(selection, "a", ModeMulti)
	require.Equal(t, []string{"c"}, selection)
}

func TestApplyMultiOddToggleCountSelects(t *testing.T) {
	t.Parallel()

	// The resulting set equals exactly the ids toggled an odd number of
	// times: toggle is its own inverse.
	presses := []string{"a", "b", "a", "c", "b", "b"}
	selection := []string{}
	for _, id := range presses {
		selection = Apply(selection, id, ModeMulti)
	}

	assert.Equal(t, []string{"c", "b"}, selection)
}

func TestApplyMultiPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	selection := []string{"x", "y", "z"}
	next := Apply(selection, "y", ModeMulti)
	assert.Equal(t, []string{"x", "z"}, next)

	next = Apply(next, "y", ModeMulti)
	assert.Equal(t, []string{"x", "z", "y"}, next)
}

func TestApplyMultiDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	selection := []string{"a", "b"}
	_ = Apply(selection, "b", ModeMulti)
	assert.Equal(t, []string{"a", "b"}, selection)
}

func TestApplySingleReplacesAndTogglesOff(t *testing.T) {
	t.Parallel()

	selection := Apply(nil, "a", ModeSingle)
	require.Equal(t, []string{"a"}, selection)

	// Selecting a different id replaces the selection.
	selection = Apply(selection, "b", ModeSingle)
	require.Equal(t, []string{"b"}, selection)

	// Re-selecting the active id clears the selection.
	selection = Apply(selection, "b", ModeSingle)
	require.Empty(t, selection)
}

func TestApplySingleCardinalityNeverExceedsOne(t *testing.T) {
	t.Parallel()

	selection := []string{}
	for _, id := range []string{"a", "b", "c", "c", "a"} {
		selection = Apply(selection, id, ModeSingle)
		assert.LessOrEqual(t, len(selection), 1)
	}
}

func TestApplyAcceptsUnknownIDs(t *testing.T) {
	t.Parallel()

	// Ids absent from the known option list are accepted; reconciliation
	// is the caller's responsibility.
	selection := Apply([]string{"known"}, "ghost", ModeMulti)
	assert.Equal(t, []string{"known", "ghost"}, selection)
}

func TestClearAllIsIdempotent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ClearAll())

	// Starting state is irrelevant, including already-empty.
	selection := []string{"a", "b"}
	selection = ClearAll()
	assert.Empty(t, selection)
	assert.Empty(t, ClearAll())
}

func TestContains(t *testing.T) {
	t.Parallel()

	selection := []string{"a", "b"}
	assert.True(t, Contains(selection, "a"))
	assert.False(t, Contains(selection, "c"))
	assert.False(t, Contains(nil, "a"))
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "single", ModeSingle.String())
	assert.Equal(t, "multi", ModeMulti.String())
	assert.Equal(t, "unknown", Mode(99).String())
}

func TestTestID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "filter-option-priority", TestID("filter", "priority"))
}
