package option

// Apply computes the next selection after acting on id. It is a pure
// function: the input slice is never mutated and the result is always a
// fresh slice.
//
// In ModeMulti the id toggles membership, preserving insertion order of the
// remaining ids. In ModeSingle the id replaces the selection, or clears it
// when it is already the sole selected id.
//
// Any id is accepted, including ids absent from the current option list;
// keeping ids consistent with the options is the caller's responsibility.
func Apply(current []string, id string, mode Mode) []string {
	if mode == ModeSingle {
		if len(current) == 1 && current[0] == id {
			return []string{}
		}
		return []string{id}
	}

	next := make([]string, 0, len(current)+1)
	found := false
	for _, existing := range current {
		if existing == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, id)
	}
	return next
}

// Contains reports whether id is part of the selection.
func Contains(selection []string, id string) bool {
	for _, existing := range selection {
		if existing == id {
			return true
		}
	}
	return false
}

// ClearAll returns an empty selection regardless of prior state.
func ClearAll() []string {
	return []string{}
}
