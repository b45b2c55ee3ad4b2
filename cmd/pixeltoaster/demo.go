package main

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"

	"github.com/intuitionamiga/pixeltoaster"
)

func init() {
	rootCmd.AddCommand(trueColorCmd, floatingPointCmd)
}

var trueColorCmd = &cobra.Command{
	Use:   "truecolor",
	Short: "true color gradient demo",
	Long:  "truecolor opens a display in true color mode and presents an x/y gradient every frame.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			cfg, err := resolveConfig(cmd, "TrueColor Example", pixeltoaster.ModeTrueColor)
			if err != nil {
				return err
			}
			return runDemo(cfg, newTrueColorScene(cfg.Display.Width, cfg.Display.Height))
		})
	},
}

var floatingPointCmd = &cobra.Command{
	Use:     "floatingpoint",
	Aliases: []string{"float"},
	Short:   "floating point gradient demo",
	Long:    "floatingpoint opens a display in floating point mode and presents a slowly cycling diagonal gradient.",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			cfg, err := resolveConfig(cmd, "Floating Point Example", pixeltoaster.ModeFloatingPoint)
			if err != nil {
				return err
			}
			return runDemo(cfg, newFloatScene(cfg.Display.Width, cfg.Display.Height))
		})
	},
}

// scene renders and presents one frame at elapsed seconds.
type scene interface {
	present(d *pixeltoaster.Display, elapsed float64, label string) (bool, error)
}

type trueColorScene struct {
	canvas trueColorCanvas
}

func newTrueColorScene(w, h int) *trueColorScene {
	return &trueColorScene{canvas: trueColorCanvas{pix: make([]pixeltoaster.TrueColorPixel, w*h), w: w, h: h}}
}

func (s *trueColorScene) present(d *pixeltoaster.Display, _ float64, label string) (bool, error) {
	c := &s.canvas
	i := 0
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			c.pix[i] = pixeltoaster.TrueColorPixel{
				R: uint8(min(x, 255)),
				G: uint8(min(y, 255)),
				B: uint8(min(x+y, 255)),
			}
			i++
		}
	}
	caption(c, 2, 7, label)
	return d.UpdateTrueColor(c.pix, nil)
}

type floatScene struct {
	canvas floatCanvas
}

func newFloatScene(w, h int) *floatScene {
	return &floatScene{canvas: floatCanvas{pix: make([]pixeltoaster.FloatingPointPixel, w*h), w: w, h: h}}
}

func (s *floatScene) present(d *pixeltoaster.Display, elapsed float64, label string) (bool, error) {
	c := &s.canvas
	shift := 0.1 * math32.Sin(float32(elapsed))
	i := 0
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			k := float32(x + y)
			c.pix[i] = pixeltoaster.FloatingPointPixel{
				R: 0.1 + k*0.0015 + shift,
				G: 0.5 + k*0.001,
				B: 0.7 + k*0.0005 - shift,
			}
			i++
		}
	}
	caption(c, 2, 7, label)
	return d.UpdateFloatingPoint(c.pix, nil)
}

// demoListener logs input and otherwise keeps the default key handlers.
type demoListener struct {
	pixeltoaster.BaseListener
	logger *slog.Logger
}

func (l *demoListener) OnKeyPressed(d pixeltoaster.DisplayInterface, key pixeltoaster.Key) {
	l.logger.Debug("key pressed", "key", int(key), "title", d.Title())
}

func (l *demoListener) OnActivate(_ pixeltoaster.DisplayInterface, active bool) {
	l.logger.Debug("focus changed", "active", active)
}

func (l *demoListener) OnClose(pixeltoaster.DisplayInterface) bool {
	l.logger.Info("window closed")
	return true
}

func runDemo(cfg Config, sc scene) error {
	logger := newLogger()
	if cfg.Backend == "headless" && cfg.Frames == 0 {
		cfg.Frames = 1
	}
	backend, headless, err := newBackend(cfg, logger)
	if err != nil {
		return err
	}
	display, err := pixeltoaster.NewDisplay(backend,
		pixeltoaster.WithLogger(logger),
		pixeltoaster.WithScale(cfg.Display.Scale),
		pixeltoaster.WithNativeFormat(cfg.Display.Format),
		pixeltoaster.WithListener(&demoListener{logger: logger}),
	)
	if err != nil {
		return err
	}
	dc := cfg.Display
	if err := display.Open(dc.Title, dc.Width, dc.Height, dc.Output, dc.Mode); err != nil {
		return err
	}
	defer display.Close()

	timer, err := pixeltoaster.NewTimer()
	if err != nil {
		return err
	}
	native := backend.NativeFormat()
	logger.Info("display open", "backend", cfg.Backend, "size", fmt.Sprintf("%dx%d", dc.Width, dc.Height),
		"mode", dc.Mode, "native", native)

	var frames int
	var fps float64
	for display.IsOpen() && (cfg.Frames == 0 || frames < cfg.Frames) {
		start := timer.Time()
		label := fmt.Sprintf("%s %s %.0f FPS", dc.Mode, native, fps)
		if _, err := sc.present(display, start, label); err != nil {
			return err
		}
		frames++
		if cfg.FPS > 0 {
			if rest := 1/cfg.FPS - (timer.Time() - start); rest > 0 {
				timer.Wait(rest)
			}
		}
		if dt := timer.Delta(); dt > 0 {
			fps = 1 / dt
		}
	}
	logger.Info("demo finished", "frames", frames, "seconds", fmt.Sprintf("%.2f", timer.Time()))

	if cfg.Snapshot != "" {
		if err := writeSnapshot(headless, cfg.Snapshot); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", cfg.Snapshot)
	}
	return nil
}
