// Package icons maps icon names to terminal glyphs. Components refer to
// icons by name only; resolution happens through a Registry so unknown
// names degrade to "render nothing" instead of failing.
package icons

import (
	"sync"

	"github.com/atomkit/atomkit/internal/logger"
)

// Registry resolves icon names to glyphs. Unknown names resolve to the
// empty string and emit a one-time development warning per name; they are
// never fatal and never surface to the end user.
type Registry struct {
	mu     sync.Mutex
	glyphs map[string]string
	warned map[string]bool
	log    *logger.Logger
}

// New creates an empty registry logging through log. A nil log disables
// warnings.
func New(log *logger.Logger) *Registry {
	return &Registry{
		glyphs: make(map[string]string),
		warned: make(map[string]bool),
		log:    log,
	}
}

// Default returns a registry preloaded with the kit's built-in icon set.
func Default(log *logger.Logger) *Registry {
	r := New(log)
	for name, glyph := range builtin {
		r.glyphs[name] = glyph
	}
	return r
}

// Register adds or replaces an icon glyph.
func (r *Registry) Register(name, glyph string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.glyphs[name] = glyph
}

// Lookup resolves name, reporting whether it is known.
func (r *Registry) Lookup(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	glyph, ok := r.glyphs[name]
	return glyph, ok
}

// Resolve resolves name to its glyph, or "" when unknown. The first miss
// per name is logged as a warning.
func (r *Registry) Resolve(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if glyph, ok := r.glyphs[name]; ok {
		return glyph
	}

	if !r.warned[name] {
		r.warned[name] = true
		r.log.WithFields(map[string]any{"icon": name}).Warn("unknown icon name")
	}
	return ""
}

// Names returns the registered icon names, unordered.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.glyphs))
	for name := range r.glyphs {
		names = append(names, name)
	}
	return names
}

// builtin is the default icon set. Plain Unicode rather than Nerd Font
// glyphs, so it renders on stock terminal fonts.
var builtin = map[string]string{
	"check":    "✓",
	"cross":    "✗",
	"warning":  "⚠",
	"info":     "ℹ",
	"star":     "★",
	"heart":    "♥",
	"search":   "⌕",
	"calendar": "📅",
	"clock":    "◷",
	"arrow-up": "↑",
	"arrow-dn": "↓",
	"dot":      "•",
	"gear":     "⚙",
	"tag":      "⊳",
	"folder":   "📁",
}
