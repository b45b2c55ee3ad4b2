//go:build headless

package pixeltoaster

import "log/slog"

func init() {
	registerFeature("backend:ebiten-unavailable")
}

// NewEbitenBackend is unavailable in headless builds.
func NewEbitenBackend(logger *slog.Logger) (DisplayBackend, error) {
	return nil, platformError("create display", CodeDisplayUnsupported,
		"failed to create display: ebiten backend is not compiled into headless builds")
}
