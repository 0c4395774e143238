package icons

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomkit/atomkit/internal/logger"
)

func TestDefaultRegistryResolvesBuiltins(t *testing.T) {
	t.Parallel()

	registry := Default(logger.Nop())

	glyph, ok := registry.Lookup("check")
	require.True(t, ok)
	assert.Equal(t, "✓", glyph)

	assert.Equal(t, "✓", registry.Resolve("check"))
	assert.NotEmpty(t, registry.Names())
}

func TestRegisterOverridesGlyph(t *testing.T) {
	t.Parallel()

	registry := Default(logger.Nop())
	registry.Register("check", "√")
	assert.Equal(t, "√", registry.Resolve("check"))

	registry.Register("custom", "✪")
	assert.Equal(t, "✪", registry.Resolve("custom"))
}

func TestResolveUnknownRendersNothingAndWarnsOnce(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	registry := Default(log)

	assert.Equal(t, "", registry.Resolve("no-such-icon"))
	assert.Equal(t, "", registry.Resolve("no-such-icon"))
	assert.Equal(t, "", registry.Resolve("another-missing"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "unknown icon name", entry["message"])
	assert.Equal(t, "no-such-icon", entry["icon"])
	assert.Equal(t, "warn", entry["level"])
}

func TestResolveWithNilLoggerDoesNotPanic(t *testing.T) {
	t.Parallel()

	registry := New(nil)
	assert.Equal(t, "", registry.Resolve("anything"))
}
