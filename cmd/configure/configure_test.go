package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denysvitali/skoda-remote/skoda"
)

func TestSaveChanged_KeepsFileValues(t *testing.T) {
	t.Setenv("SKODA_PASSWORD", "from-env")
	t.Setenv("SKODA_SERVER", "https://env.example.com")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, skoda.SaveConfig(&skoda.Config{
		Email:    "old@example.com",
		Password: "file-password",
		Server:   "https://skoda.example.com",
		Identity: skoda.IdentityConfig{ClientID: "my-client"},
	}, path))

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--email", "new@example.com", "--default-vin", "TMBJJ7NE1L0000001"}))
	require.NoError(t, saveChanged(path, flags))

	cfg, err := skoda.GetConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, &skoda.Config{
		Email:    "new@example.com",
		Password: "file-password",
		Server:   "https://skoda.example.com",
		VIN:      "TMBJJ7NE1L0000001",
		Identity: skoda.IdentityConfig{ClientID: "my-client"},
	}, cfg)
}

func TestSaveChanged_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skoda-remote", "config.yaml")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--pin", "1234"}))
	require.NoError(t, saveChanged(path, flags))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := skoda.GetConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1234", cfg.Pin)
	assert.Empty(t, cfg.Password)
}
