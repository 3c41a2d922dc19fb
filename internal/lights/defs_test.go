package lights

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsMissingFile(t *testing.T) {
	defs, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, builtinDefaults(), defs)
}

func TestLoadDefaultsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	data := `
- kind: point
  intensity: 2.5
  color: "#ffe0b0"
  distance: 20
- kind: area
  width: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	defs, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, defs[Point].Intensity, 1e-5)
	assert.Equal(t, "#ffe0b0", defs[Point].Color)
	assert.InDelta(t, 20, defs[Point].Distance, 1e-5)
	// untouched fields keep built-ins
	assert.InDelta(t, builtinDefaults()[Point].Decay, defs[Point].Decay, 1e-5)
	assert.InDelta(t, 4, defs[Area].Width, 1e-5)
	assert.Equal(t, builtinDefaults()[Spot], defs[Spot])
}

func TestLoadDefaultsBadEntries(t *testing.T) {
	dir := t.TempDir()

	badKind := filepath.Join(dir, "kind.yaml")
	require.NoError(t, os.WriteFile(badKind, []byte("- kind: flood\n"), 0644))
	_, err := LoadDefaults(badKind)
	assert.Error(t, err)

	badColor := filepath.Join(dir, "color.yaml")
	require.NoError(t, os.WriteFile(badColor, []byte("- kind: point\n  color: cherry\n"), 0644))
	_, err = LoadDefaults(badColor)
	assert.Error(t, err)
}
