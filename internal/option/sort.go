package option

// Direction indicates the ordering applied by an active sort.
type Direction int

const (
	DirectionAscending Direction = iota
	DirectionDescending
)

func (d Direction) String() string {
	if d == DirectionDescending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == DirectionAscending {
		return DirectionDescending
	}
	return DirectionAscending
}

// SortState captures the active sort column and its direction. Direction is
// only meaningful while SelectedID is non-empty.
type SortState struct {
	SelectedID string
	Direction  Direction
}

// ApplySort computes the next sort state after acting on id. Re-selecting
// the active id flips the direction; selecting a new id resets the
// direction to ascending. Deterministic, no hidden state.
func ApplySort(current SortState, id string) SortState {
	if id == current.SelectedID {
		return SortState{SelectedID: id, Direction: current.Direction.Toggle()}
	}
	return SortState{SelectedID: id, Direction: DirectionAscending}
}
