package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssaunders/site/internal/config"
	"github.com/ssaunders/site/internal/cycler"
	"github.com/ssaunders/site/internal/logging"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["cycle"])
}

func TestCommandsTakeNoArgs(t *testing.T) {
	for _, c := range []string{"serve", "cycle"} {
		cmd, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)
		assert.Error(t, cmd.Args(cmd, []string{"extra"}), c)
		assert.NoError(t, cmd.Args(cmd, nil), c)
	}
}

func TestPrintCycle(t *testing.T) {
	cfg := config.DefaultConfig()

	var buf bytes.Buffer
	require.NoError(t, printCycle(&buf, &cfg, 5))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"../static/img/Frankie1.jpg",
		"../static/img/Frankie2.jpg",
		"../static/img/Gary-side.PNG",
		"../static/img/Gary.jpg",
		"../static/img/Frankie1.jpg",
	}, lines)
}

func TestPrintCycleEmpty(t *testing.T) {
	logging.SetOutput(&bytes.Buffer{})

	cfg := config.DefaultConfig()
	cfg.Cats.Images = nil

	var buf bytes.Buffer
	err := printCycle(&buf, &cfg, 3)
	assert.ErrorIs(t, err, cycler.ErrNoImages)
	assert.Empty(t, buf.String())

	assert.NoError(t, printCycle(&buf, &cfg, 0))
	assert.Error(t, printCycle(&buf, &cfg, -1))
}

func TestCycleCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`cats:
  images: [a.jpg, b.jpg]
  prefix: /img/
`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"cycle", "--config", path, "-n", "3"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		configPath = config.FileName
		cycleCount = 4
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "/img/a.jpg\n/img/b.jpg\n/img/a.jpg\n", out.String())
}

func TestCycleCommandBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"cycle", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configPath = config.FileName
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
}
