package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/intuitionamiga/pixeltoaster"
)

// Config is everything a demo run needs. Files use the same keys:
//
//	backend = "headless"
//	frames = 120
//	fps = 30
//	snapshot = "frame.png"
//
//	[display]
//	title = "demo"
//	width = 320
//	height = 240
//	output = "windowed"
//	scale = 2
//	format = "RGB565"
type Config struct {
	Backend  string                     `toml:"backend"`
	Frames   int                        `toml:"frames"`
	FPS      float64                    `toml:"fps"`
	Snapshot string                     `toml:"snapshot"`
	Display  pixeltoaster.DisplayConfig `toml:"display"`
}

func defaultConfig(title string, mode pixeltoaster.Mode) Config {
	return Config{
		Backend: "ebiten",
		FPS:     60,
		Display: pixeltoaster.DisplayConfig{
			Title:  title,
			Width:  320,
			Height: 240,
			Output: pixeltoaster.OutputDefault,
			Mode:   mode,
			Scale:  2,
		},
	}
}

// decodeConfig overlays TOML onto cfg. Unknown keys are an error so typos
// in a config file do not go unnoticed.
func decodeConfig(cfg *Config, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return errors.WrapPrefix(err, "decode config", 0)
	}
	return nil
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	return decodeConfig(cfg, data)
}

// resolveConfig builds the run config: defaults, then the config file, then
// any flag given explicitly on the command line.
func resolveConfig(cmd *cobra.Command, title string, mode pixeltoaster.Mode) (Config, error) {
	cfg := defaultConfig(title, mode)
	if configFlag != "" {
		if err := loadConfigFile(&cfg, configFlag); err != nil {
			return cfg, err
		}
	}
	// The subcommand decides which pixel type is rendered.
	cfg.Display.Mode = mode

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = backendFlag
	}
	if flags.Changed("frames") {
		cfg.Frames = framesFlag
	}
	if flags.Changed("fps") {
		cfg.FPS = fpsFlag
	}
	if flags.Changed("scale") {
		cfg.Display.Scale = scaleFlag
	}
	if flags.Changed("snapshot") {
		cfg.Snapshot = snapshotFlag
	}
	if flags.Changed("format") {
		f, err := pixeltoaster.ParseFormat(formatFlag)
		if err != nil {
			return cfg, err
		}
		cfg.Display.Format = f
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if cfg.Frames < 0 {
		return cfg, errors.Errorf("frames must not be negative, got %d", cfg.Frames)
	}
	return cfg, nil
}
