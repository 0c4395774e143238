// Package ui defines the shared rendering contracts used across atomkit.
package ui

// Renderable is any value that can render itself to a terminal string.
// All components in the kit implement this interface, which makes them
// freely composable inside layout containers.
type Renderable interface {
	View() string
}
