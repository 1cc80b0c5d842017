package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.StaleAfter)
	assert.Equal(t, "@every 5m", cfg.SweepSchedule)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("API_KEY", "secret")
	t.Setenv("SESSION_STALE_AFTER", "30s")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.StaleAfter)
}

func TestLoadServerInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := LoadServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadBot(t *testing.T) {
	_, err := LoadBot()
	assert.Error(t, err)

	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("OWNER_IDS", "1,2")
	cfg, err := LoadBot()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, cfg.OwnerIDs)
	assert.Equal(t, int64(109983668079237), cfg.PlaceID)
	assert.Equal(t, "http://localhost:3000", cfg.WaitlistURL)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SAB_DOTENV_MARKER=loaded\n"), 0o600))
	t.Setenv("ENV_CHEK", "")
	t.Cleanup(func() { os.Unsetenv("SAB_DOTENV_MARKER") })

	LoadDotEnv(path)
	assert.Equal(t, "loaded", os.Getenv("SAB_DOTENV_MARKER"))

	// Missing files are tolerated.
	LoadDotEnv(filepath.Join(dir, "missing.env"))
}
