package game

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/memmaker/unitcommand/engine/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeTempFile(t, "unitsim.yaml", `
ringSpacing: 3
arrivalThresholdSq: 0.5
unitsLayer: 2
logLevel: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(3), cfg.RingSpacing)
	assert.Equal(t, float32(0.5), cfg.ArrivalThresholdSq)
	assert.Equal(t, uint(2), cfg.UnitsLayer)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, float32(40), cfg.MultipleSelectionSizeThreshold, "unset keys keep their defaults")
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("UNITSIM_RINGSPACING", "4")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, float32(4), cfg.RingSpacing)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	_, err = LoadConfig(writeTempFile(t, "bad.yaml", "ringSpacing: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ringSpacing")

	_, err = LoadConfig(writeTempFile(t, "level.yaml", "logLevel: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logLevel")
}

func TestConfigUnitsFilter(t *testing.T) {
	filter := DefaultConfig().UnitsFilter()
	assert.Equal(t, uint32(1<<6), filter.CollidesWith)
}

func TestLoadConfigLogsRejectedValues(t *testing.T) {
	var buf bytes.Buffer
	util.SetLogOutput(&buf)
	defer util.SetLogOutput(os.Stderr)

	_, err := LoadConfig(writeTempFile(t, "bad.yaml", "arrivalThresholdSq: 0\n"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"category":"config"`)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "arrivalThresholdSq must be positive")
}
