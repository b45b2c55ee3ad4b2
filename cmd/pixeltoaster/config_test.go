package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/pixeltoaster"
)

func newTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	configFlag = ""
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().AddFlagSet(rootCmd.PersistentFlags())
	return cmd
}

func TestDecodeConfig(t *testing.T) {
	cfg := defaultConfig("demo", pixeltoaster.ModeTrueColor)
	err := decodeConfig(&cfg, []byte(`
backend = "headless"
frames = 3

[display]
width = 64
height = 32
output = "fullscreen"
format = "rgb565"
`))
	require.NoError(t, err)
	require.Equal(t, "headless", cfg.Backend)
	require.Equal(t, 3, cfg.Frames)
	require.Equal(t, 64, cfg.Display.Width)
	require.Equal(t, 32, cfg.Display.Height)
	require.Equal(t, pixeltoaster.OutputFullscreen, cfg.Display.Output)
	require.Equal(t, pixeltoaster.FormatRGB565, cfg.Display.Format)
	require.Equal(t, "demo", cfg.Display.Title)
	require.Equal(t, 2, cfg.Display.Scale)
}

func TestDecodeConfig_RejectsUnknownKeys(t *testing.T) {
	cfg := defaultConfig("demo", pixeltoaster.ModeTrueColor)
	require.Error(t, decodeConfig(&cfg, []byte("colour = \"red\"\n")))
}

func TestDecodeConfig_RejectsBadFormat(t *testing.T) {
	cfg := defaultConfig("demo", pixeltoaster.ModeTrueColor)
	require.Error(t, decodeConfig(&cfg, []byte("[display]\nformat = \"ARGB4444\"\n")))
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"Headless\"\nframes = 9\n[display]\nmode = \"truecolor\"\n"), 0o644))

	cmd := newTestCommand(t)
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("frames", "4"))
	require.NoError(t, cmd.Flags().Set("format", "XBGR1555"))

	cfg, err := resolveConfig(cmd, "Floating Point Example", pixeltoaster.ModeFloatingPoint)
	require.NoError(t, err)
	require.Equal(t, "headless", cfg.Backend)
	require.Equal(t, 4, cfg.Frames)
	require.Equal(t, pixeltoaster.FormatXBGR1555, cfg.Display.Format)
	require.Equal(t, pixeltoaster.ModeFloatingPoint, cfg.Display.Mode)
}

func TestResolveConfig_MissingFile(t *testing.T) {
	cmd := newTestCommand(t)
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.toml")))
	_, err := resolveConfig(cmd, "x", pixeltoaster.ModeTrueColor)
	require.Error(t, err)
}
