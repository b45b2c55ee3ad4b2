package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/pixeltoaster"
)

func headlessConfig(t *testing.T, mode pixeltoaster.Mode) Config {
	t.Helper()
	cfg := defaultConfig("test", mode)
	cfg.Backend = "headless"
	cfg.Frames = 2
	cfg.FPS = 0
	cfg.Display.Width = 48
	cfg.Display.Height = 24
	cfg.Snapshot = filepath.Join(t.TempDir(), "frame.png")
	return cfg
}

func TestRunDemo_TrueColorSnapshot(t *testing.T) {
	cfg := headlessConfig(t, pixeltoaster.ModeTrueColor)
	require.NoError(t, runDemo(cfg, newTrueColorScene(48, 24)))

	f, err := os.Open(cfg.Snapshot)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 48, img.Bounds().Dx())

	// Bottom right is outside the caption: r=min(x,255), g=min(y,255), b=min(x+y,255).
	r, g, b, _ := img.At(47, 23).RGBA()
	require.Equal(t, uint32(47), r>>8)
	require.Equal(t, uint32(23), g>>8)
	require.Equal(t, uint32(70), b>>8)
}

func TestRunDemo_FloatingPointNativeFormat(t *testing.T) {
	cfg := headlessConfig(t, pixeltoaster.ModeFloatingPoint)
	cfg.Display.Format = pixeltoaster.FormatRGB565
	cfg.Snapshot = ""
	require.NoError(t, runDemo(cfg, newFloatScene(48, 24)))
}

func TestNewBackend_SnapshotNeedsHeadless(t *testing.T) {
	cfg := defaultConfig("x", pixeltoaster.ModeTrueColor)
	cfg.Snapshot = "out.png"
	_, _, err := newBackend(cfg, newLogger())
	require.Error(t, err)

	cfg.Backend = "vulkan"
	_, _, err = newBackend(cfg, newLogger())
	require.ErrorContains(t, err, "unknown backend")
}

func TestCaption_DrawsIntoFrame(t *testing.T) {
	c := &trueColorCanvas{pix: make([]pixeltoaster.TrueColorPixel, 32*8), w: 32, h: 8}
	caption(c, 0, 6, "HI")
	lit := 0
	for _, p := range c.pix {
		if p.R == 0xFF {
			lit++
		}
	}
	require.Positive(t, lit)

	c.SetPixel(-1, 0, captionColor)
	c.SetPixel(0, 100, captionColor)
}

func TestBenchConverters_CoversEveryPair(t *testing.T) {
	timer, err := pixeltoaster.NewTimer()
	require.NoError(t, err)
	results, err := benchConverters(pixeltoaster.NewRegistry(), timer, 8, 4, 2)
	require.NoError(t, err)
	require.Len(t, results, 2*len(pixeltoaster.Formats()))
	for _, r := range results {
		require.True(t, r.source.Canonical())
		require.GreaterOrEqual(t, r.seconds, 0.0)
	}
}

func TestReport_DebugPrintsCauseStack(t *testing.T) {
	backend := pixeltoaster.NewHeadlessBackend(pixeltoaster.FormatUnknown)
	backend.FailOpen(fmt.Errorf("no surface"))
	d, err := pixeltoaster.NewDisplay(backend)
	require.NoError(t, err)
	err = d.Open("x", 8, 8, pixeltoaster.OutputDefault, pixeltoaster.ModeTrueColor)
	require.Equal(t, pixeltoaster.CodeSurfaceCreate, pixeltoaster.CodeOf(err))

	var plain bytes.Buffer
	report(&plain, err, false)
	require.Contains(t, plain.String(), "no surface")
	require.NotContains(t, plain.String(), ".go:")

	var debug bytes.Buffer
	report(&debug, err, true)
	require.Contains(t, debug.String(), "code 4001")
	require.Contains(t, debug.String(), "TestReport_DebugPrintsCauseStack")
	require.Contains(t, debug.String(), ".go:")
}
