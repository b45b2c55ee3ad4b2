package main

import (
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/go-errors/errors"

	"github.com/intuitionamiga/pixeltoaster"
)

// newBackend returns the backend named by cfg. The headless backend is also
// returned on its own so the caller can take snapshots from it.
func newBackend(cfg Config, logger *slog.Logger) (pixeltoaster.DisplayBackend, *pixeltoaster.HeadlessBackend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "headless":
		h := pixeltoaster.NewHeadlessBackend(cfg.Display.Format)
		return h, h, nil
	case "ebiten", "":
		if cfg.Snapshot != "" {
			return nil, nil, errors.Errorf("snapshots need the headless backend")
		}
		b, err := pixeltoaster.NewEbitenBackend(logger)
		if err != nil {
			return nil, nil, err
		}
		return b, nil, nil
	}
	return nil, nil, errors.Errorf("unknown backend %q", cfg.Backend)
}

func writeSnapshot(h *pixeltoaster.HeadlessBackend, path string) error {
	snap := h.Snapshot()
	if snap == nil {
		return errors.Errorf("nothing has been presented")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	if err := png.Encode(f, snap); err != nil {
		_ = f.Close()
		return errors.Wrap(err, 0)
	}
	return f.Close()
}
