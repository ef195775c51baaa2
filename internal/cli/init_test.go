package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	var buf bytes.Buffer

	err := Init(&buf, path, InitOptions{NonInteractive: true})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Label, cfg.Label)
	assert.Equal(t, config.DefaultConfig().Theme.Primary, cfg.Theme.Primary)
	assert.Contains(t, buf.String(), "Created "+path)
}

func TestInit_AppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	err := Init(&bytes.Buffer{}, path, InitOptions{
		Label:          "Unlock",
		Primary:        "#2BD9A0",
		NonInteractive: true,
	})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Unlock", cfg.Label)
	assert.Equal(t, "#2BD9A0", cfg.Theme.Primary)
}

func TestInit_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	err := Init(&bytes.Buffer{}, path, InitOptions{Primary: "blue", NonInteractive: true})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written")
}

func TestInit_ExistingConfigNonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("label: Keep\n"), 0644))

	err := Init(&bytes.Buffer{}, path, InitOptions{NonInteractive: true})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "label: Keep\n", string(data))
}

func TestInit_ExistingConfigLabelOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	original := "# my settings\nlabel: Old\nterminal:\n  fps: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))
	var buf bytes.Buffer

	err := Init(&buf, path, InitOptions{Label: "New", NonInteractive: true})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "New", cfg.Label)
	assert.Equal(t, 60, cfg.Terminal.FPS, "other settings are kept")
	assert.Contains(t, buf.String(), "Updated label")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# my settings")
}

func TestInit_ForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("label: Old\n"), 0644))

	err := Init(&bytes.Buffer{}, path, InitOptions{Label: "Fresh", Overwrite: true, NonInteractive: true})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", cfg.Label)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
}
