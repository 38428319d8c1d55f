package performer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomstream/loom/performer"
	"github.com/loomstream/loom/spigot"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setup.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefaultAppConfigIsValid(t *testing.T) {
	assert.NoError(t, performer.DefaultAppConfig().Validate())
}

func TestLoadAppConfigYAML(t *testing.T) {
	path := writeConfig(t, `
left:
  constant: pi
  base: 16
right:
  constant: thuemorse
  base: 2
tempo: 90
scale: pentatonic-minor
`)
	cfg, err := performer.LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, spigot.Pi, cfg.Left.Constant)
	assert.Equal(t, 16, cfg.Left.Base)
	assert.Equal(t, spigot.ThueMorse, cfg.Right.Constant)
	assert.Equal(t, 90, cfg.TempoBPM)
	assert.Equal(t, "pentatonic-minor", cfg.Scale)
	// unset fields keep their defaults
	assert.Equal(t, 480, cfg.TicksPerQc)
	assert.Equal(t, byte(100), cfg.Velocity)
}

func TestLoadAppConfigRejectsBadValues(t *testing.T) {
	for name, contents := range map[string]string{
		"base":     "left:\n  constant: pi\n  base: 99\n",
		"constant": "left:\n  constant: tau\n  base: 10\n",
		"tempo":    "tempo: 999\n",
	} {
		path := writeConfig(t, contents)
		_, err := performer.LoadAppConfig(path)
		assert.Error(t, err, "case %s", name)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	_, err := performer.LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
