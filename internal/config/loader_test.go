package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssaunders/site/internal/cycler"
	"github.com/ssaunders/site/internal/logging"
	"github.com/ssaunders/site/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTestFile(t, dir, FileName, []byte(content))
	return dir
}

func TestLoadConfig_Default(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultShuffleAttempts, cfg.Server.ShuffleLimit.MaxAttempts)
	assert.Equal(t, DefaultShuffleWindow, cfg.Server.ShuffleLimit.Window)
	assert.Equal(t, cycler.DefaultImages, cfg.Cats.Images)
	assert.Equal(t, "../static/img/", cfg.Cats.Prefix)
	assert.Equal(t, "cat-image", cfg.Cats.ElementID)
	assert.Empty(t, cfg.Cats.Placeholder)
	assert.Equal(t, logging.LevelWarn, cfg.LogLevel())
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, testutil.SampleConfigYAML)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ShuffleLimit.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Server.ShuffleLimit.Window)
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, cfg.Cats.Images)
	assert.Equal(t, "/static/img/", cfg.Cats.Prefix)
	assert.Equal(t, "hero", cfg.Cats.ElementID)
	assert.Equal(t, "none.png", cfg.Cats.Placeholder)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel())
}

func TestLoadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `server:
  port: 9000
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, DefaultShuffleAttempts, cfg.Server.ShuffleLimit.MaxAttempts)
	assert.Equal(t, cycler.DefaultImages, cfg.Cats.Images)
	assert.Equal(t, "cat-image", cfg.Cats.ElementID)
}

func TestLoadConfig_EmptyImageList(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `cats:
  images: []
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Cats.Images)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "server: [unclosed")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigFile_Path(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTestFile(t, t.TempDir(), "custom.yaml", []byte("log:\n  level: error\n"))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, logging.LevelError, cfg.LogLevel())
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero attempts", func(c *Config) { c.Server.ShuffleLimit.MaxAttempts = 0 }, "server.shuffle_limit.max_attempts"},
		{"zero window", func(c *Config) { c.Server.ShuffleLimit.Window = 0 }, "server.shuffle_limit.window"},
		{"empty image name", func(c *Config) { c.Cats.Images = []string{"a.jpg", ""} }, "cats.images[1]"},
		{"empty element id", func(c *Config) { c.Cats.ElementID = "" }, "cats.element_id"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := ValidateConfig(&cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestDefaultConfigCopiesImages(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Cats.Images[0] = "changed.jpg"
	assert.Equal(t, "Frankie1.jpg", cycler.DefaultImages[0])
}
