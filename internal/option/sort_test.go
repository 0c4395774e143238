package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySortScenario(t *testing.T) {
	t.Parallel()

	state := SortState{SelectedID: "", Direction: DirectionAscending}

	state = ApplySort(state, "name")
	require.Equal(t, SortState{SelectedID: "name", Direction: DirectionAscending}, state)

	state = ApplySort(state, "name")
	require.Equal(t, SortState{SelectedID: "name", Direction: DirectionDescending}, state)

	state = ApplySort(state, "date")
	require.Equal(t, SortState{SelectedID: "date", Direction: DirectionAscending}, state)
}

func TestApplySortDirectionToggleIsInvolution(t *testing.T) {
	t.Parallel()

	start := SortState{SelectedID: "size", Direction: DirectionDescending}
	twice := ApplySort(ApplySort(start, "size"), "size")
	assert.Equal(t, start, twice)
}

func TestApplySortNewColumnResetsDirection(t *testing.T) {
	t.Parallel()

	state := SortState{SelectedID: "name", Direction: DirectionDescending}
	state = ApplySort(state, "date")
	assert.Equal(t, DirectionAscending, state.Direction)
	assert.Equal(t, "date", state.SelectedID)
}

func TestDirectionToggleAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DirectionDescending, DirectionAscending.Toggle())
	assert.Equal(t, DirectionAscending, DirectionDescending.Toggle())
	assert.Equal(t, "asc", DirectionAscending.String())
	assert.Equal(t, "desc", DirectionDescending.String())
}
