// pixel_registry.go - Converter registry and format-pair lookup

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package pixeltoaster

// Registry owns one converter per (canonical source, destination) pair. It
// is built once, never mutated afterwards and can be shared freely; lookups
// hand out the same converter values every time.
type Registry struct {
	float     [formatCount]*floatConverter
	trueColor [formatCount]*trueColorConverter
}

// NewRegistry builds the converter table for every supported format pair.
func NewRegistry() *Registry {
	r := &Registry{}
	for f := FormatFloatRGBA; f < formatCount; f++ {
		if fn := floatConversions[f]; fn != nil {
			r.float[f] = &floatConverter{dst: f, bpp: f.BytesPerPixel(), convert: fn}
		}
		if fn := trueColorConversions[f]; fn != nil {
			r.trueColor[f] = &trueColorConverter{dst: f, bpp: f.BytesPerPixel(), convert: fn}
		}
	}
	return r
}

// RequestConverter returns the converter for source -> destination. Only the
// two canonical formats are valid sources.
func (r *Registry) RequestConverter(source, destination Format) (Converter, error) {
	if source == FormatUnknown || destination == FormatUnknown {
		return nil, invalidParameterError("request converter", CodeUnknownFormat,
			"invalid pixel format: unknown format specified")
	}
	switch source {
	case FormatFloatRGBA:
		c, err := r.FloatingPoint(destination)
		if err != nil {
			return nil, err
		}
		return c, nil
	case FormatTrueColorRGBA:
		c, err := r.TrueColor(destination)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, invalidParameterError("request converter", CodeUnsupportedSource,
		"unsupported format conversion: unsupported source format %s", source)
}

// FloatingPoint returns the FloatRGBA -> destination converter.
func (r *Registry) FloatingPoint(destination Format) (FloatingPointConverter, error) {
	if destination.valid() {
		if c := r.float[destination]; c != nil {
			return c, nil
		}
	}
	return nil, invalidParameterError("request converter", CodeUnsupportedFloatDestination,
		"unsupported format conversion: %s to %s", FormatFloatRGBA, destination)
}

// TrueColor returns the TrueColorRGBA -> destination converter.
func (r *Registry) TrueColor(destination Format) (TrueColorConverter, error) {
	if destination.valid() {
		if c := r.trueColor[destination]; c != nil {
			return c, nil
		}
	}
	return nil, invalidParameterError("request converter", CodeUnsupportedTrueColorDestination,
		"unsupported format conversion: %s to %s", FormatTrueColorRGBA, destination)
}
