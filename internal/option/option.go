// Package option implements the selectable-options state model shared by the
// picker-family components: a pure selection reducer, a sort controller, and
// a search filter. All functions are pure and operate on caller-owned data;
// the package never stores state of its own (controlled-component pattern).
package option

import "fmt"

// Option describes a single selectable entry. Options are immutable once
// constructed and owned by the caller; the kit only reads them.
type Option struct {
	// ID uniquely identifies the option within its list.
	ID string
	// Label is the primary display text.
	Label string
	// Value carries an optional caller-defined payload. The kit never
	// inspects it.
	Value any
	// Icon is an optional icon name resolved through an icons.Registry.
	Icon string
	// Description is optional secondary text, also searched by Filter.
	Description string
	// Disabled options render dimmed and cannot be selected interactively.
	Disabled bool
}

// Mode determines how a selection evolves when an option is toggled.
type Mode int

const (
	// ModeSingle keeps at most one selected id; re-selecting it clears.
	ModeSingle Mode = iota
	// ModeMulti toggles membership of each id independently.
	ModeMulti
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// TestID derives a deterministic automation identifier for a rendered
// option, suitable for UI test addressing.
func TestID(prefix, value string) string {
	return fmt.Sprintf("%s-option-%s", prefix, value)
}
