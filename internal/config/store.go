package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/atomkit/atomkit/internal/logger"
	"github.com/atomkit/atomkit/internal/ui/components"
	atomkiterrors "github.com/atomkit/atomkit/pkg/errors"
)

// Store resolves theme names to themes. Builtin themes are always
// available; file-backed themes are loaded lazily from the configured
// directory and cached after the first load.
type Store struct {
	dir      string
	log      *logger.Logger
	builtins map[string]components.Theme
	cache    map[string]components.Theme
}

// NewStore creates a store rooted at dir. An empty dir disables
// file-backed themes and leaves only the builtins.
func NewStore(dir string, log *logger.Logger) *Store {
	return &Store{
		dir: dir,
		log: log,
		builtins: map[string]components.Theme{
			"default": components.DefaultTheme(),
			"dark":    components.DarkTheme(),
		},
		cache: make(map[string]components.Theme),
	}
}

// Resolve returns the theme registered under name. Builtin names take
// precedence over files so a stray default.yaml cannot shadow the
// builtin default.
func (s *Store) Resolve(name string) (components.Theme, error) {
	if theme, ok := s.builtins[name]; ok {
		return theme, nil
	}
	if theme, ok := s.cache[name]; ok {
		return theme, nil
	}
	if s.dir == "" {
		return components.Theme{}, atomkiterrors.NewThemeNotFoundError(name)
	}

	path := filepath.Join(s.dir, name+".yaml")
	if _, err := os.Stat(path); err != nil {
		return components.Theme{}, atomkiterrors.NewThemeNotFoundError(name)
	}

	file, err := ParseThemeFile(path)
	if err != nil {
		return components.Theme{}, err
	}

	theme := BuildTheme(file)
	s.cache[name] = theme
	s.log.WithFields(map[string]any{"theme": name, "path": path}).Debug("loaded theme file")
	return theme, nil
}

// Names lists every resolvable theme name, builtins first, file-backed
// themes after, each group sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.builtins))
	for name := range s.builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	if s.dir == "" {
		return names
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return names
	}

	var fromFiles []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".yaml")]
		if _, builtin := s.builtins[name]; builtin {
			continue
		}
		fromFiles = append(fromFiles, name)
	}
	sort.Strings(fromFiles)
	return append(names, fromFiles...)
}
