package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"livegauge/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("measurement:\n  known_width: 2.5\n  unit: cm\ncapture:\n  device: \"1\"\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--unit", "in", "--headless", "-n", "7"}))

	opts := cmdOptions(t, cmd)
	cfg, err := resolveConfig(cmd, opts)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Measurement.KnownWidth)
	assert.Equal(t, "in", cfg.Measurement.Unit)
	assert.Equal(t, "1", cfg.Capture.Device)
	assert.True(t, cfg.Display.Headless)
	assert.Equal(t, 7, cfg.Display.MaxFrames)
}

func TestResolveConfigRejectsInvalidFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--known-width", "0", "--config", writeEmptyConfig(t)}))

	_, err := resolveConfig(cmd, cmdOptions(t, cmd))
	assert.ErrorIs(t, err, config.ErrInvalidKnownWidth)
}

func TestResolveConfigMissingExplicitFile(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := resolveConfig(cmd, cmdOptions(t, cmd))
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "livegauge")
}

func writeEmptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

// cmdOptions rebuilds the option struct from the parsed flags of cmd.
func cmdOptions(t *testing.T, cmd *cobra.Command) *rootOptions {
	t.Helper()
	f := cmd.Flags()
	opts := &rootOptions{}
	var err error
	opts.configPath, err = f.GetString("config")
	require.NoError(t, err)
	opts.device, _ = f.GetString("device")
	opts.knownWidth, _ = f.GetFloat64("known-width")
	opts.unit, _ = f.GetString("unit")
	opts.headless, _ = f.GetBool("headless")
	opts.maxFrames, _ = f.GetInt("max-frames")
	opts.queueSize, _ = f.GetInt("queue-size")
	opts.snapshotDir, _ = f.GetString("snapshot-dir")
	opts.verbose, _ = f.GetBool("verbose")
	opts.files, _ = f.GetStringSlice("files")
	return opts
}
