package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moneta.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitConfigDefaults(t *testing.T) {
	// A missing file is fine: everything defaults.
	err := InitConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_PROJECT_NAME, cnf.ProjectName)
	assert.Equal(t, DEFAULT_LOG_LEVEL, cnf.Logging.Level)
	assert.Equal(t, int32(DEFAULT_PRECISION), cnf.Simulation.DisplayPrecision)
	assert.Equal(t, DEFAULT_PROMPT, cnf.Simulation.Prompt)
}

func TestInitConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"project_name": "  Moneta Test  ",
		"logging": {"level": "debug"},
		"simulation": {"display_precision": 4, "prompt": ">> "}
	}`)

	require.NoError(t, InitConfig(path))

	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "Moneta Test", cnf.ProjectName)
	assert.Equal(t, "debug", cnf.Logging.Level)
	assert.Equal(t, int32(4), cnf.Simulation.DisplayPrecision)
	assert.Equal(t, ">> ", cnf.Simulation.Prompt)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `{"project_name": "from file"}`)
	t.Setenv("MONETA_PROJECT_NAME", "from env")
	t.Setenv("MONETA_SIM_DISPLAY_PRECISION", "6")

	require.NoError(t, InitConfig(path))

	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "from env", cnf.ProjectName)
	assert.Equal(t, int32(6), cnf.Simulation.DisplayPrecision)
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, `{"logging": {"level": "shout"}}`)
	err := InitConfig(path)
	assert.Error(t, err)
}

func TestMockConfig(t *testing.T) {
	MockConfig(&Configuration{ProjectName: "mocked"})

	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "mocked", cnf.ProjectName)
	// Defaults are still applied to mocked configurations.
	assert.Equal(t, int32(DEFAULT_PRECISION), cnf.Simulation.DisplayPrecision)
}
