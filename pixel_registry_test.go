package pixeltoaster

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistry_EveryCanonicalPairResolves(t *testing.T) {
	r := NewRegistry()
	for _, src := range []Format{FormatFloatRGBA, FormatTrueColorRGBA} {
		for _, dst := range Formats() {
			c, err := r.RequestConverter(src, dst)
			if err != nil {
				t.Fatalf("%s -> %s returned error: %v", src, dst, err)
			}
			if c.Source() != src || c.Destination() != dst {
				t.Fatalf("expected %s -> %s, got %s -> %s", src, dst, c.Source(), c.Destination())
			}
			switch src {
			case FormatFloatRGBA:
				if _, ok := c.(FloatingPointConverter); !ok {
					t.Fatalf("expected %s -> %s to be a FloatingPointConverter", src, dst)
				}
			case FormatTrueColorRGBA:
				if _, ok := c.(TrueColorConverter); !ok {
					t.Fatalf("expected %s -> %s to be a TrueColorConverter", src, dst)
				}
			}
		}
	}
}

func TestRegistry_ReturnsSameConverter(t *testing.T) {
	r := NewRegistry()
	a, err := r.RequestConverter(FormatTrueColorRGBA, FormatRGB565)
	if err != nil {
		t.Fatalf("RequestConverter returned error: %v", err)
	}
	b, _ := r.RequestConverter(FormatTrueColorRGBA, FormatRGB565)
	if a != b {
		t.Fatal("expected the same converter for repeated requests")
	}
}

func TestRegistry_UnknownFormat(t *testing.T) {
	r := NewRegistry()
	for _, pair := range [][2]Format{
		{FormatUnknown, FormatXRGB8888},
		{FormatFloatRGBA, FormatUnknown},
	} {
		_, err := r.RequestConverter(pair[0], pair[1])
		if CodeOf(err) != CodeUnknownFormat {
			t.Fatalf("expected code %d for %s -> %s, got %v", CodeUnknownFormat, pair[0], pair[1], err)
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("expected invalid parameter error, got %v", err)
		}
	}
}

func TestRegistry_NonCanonicalSource(t *testing.T) {
	_, err := NewRegistry().RequestConverter(FormatRGB565, FormatXRGB8888)
	if CodeOf(err) != CodeUnsupportedSource {
		t.Fatalf("expected code %d, got %v", CodeUnsupportedSource, err)
	}
	if !strings.Contains(err.Error(), "RGB565") {
		t.Fatalf("expected message to name the source, got %q", err)
	}
}

func TestRegistry_OutOfRangeDestination(t *testing.T) {
	r := NewRegistry()
	if _, err := r.FloatingPoint(Format(99)); CodeOf(err) != CodeUnsupportedFloatDestination {
		t.Fatalf("expected code %d, got %v", CodeUnsupportedFloatDestination, err)
	}
	if _, err := r.TrueColor(Format(-1)); CodeOf(err) != CodeUnsupportedTrueColorDestination {
		t.Fatalf("expected code %d, got %v", CodeUnsupportedTrueColorDestination, err)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("xrgb8888")
	if err != nil || f != FormatXRGB8888 {
		t.Fatalf("expected XRGB8888, got %s, %v", f, err)
	}
	if _, err := ParseFormat("ARGB4444"); CodeOf(err) != CodeUnknownFormat {
		t.Fatalf("expected code %d, got %v", CodeUnknownFormat, err)
	}

	var g Format
	if err := g.UnmarshalText([]byte(" BGR565 ")); err != nil || g != FormatBGR565 {
		t.Fatalf("expected BGR565, got %s, %v", g, err)
	}
	text, err := g.MarshalText()
	if err != nil || string(text) != "BGR565" {
		t.Fatalf("expected BGR565 text, got %q, %v", text, err)
	}
}

func TestFormat_Layout(t *testing.T) {
	sizes := map[Format]int{
		FormatFloatRGBA: 16,
		FormatRGB888:    3,
		FormatXBGR1555:  2,
		FormatUnknown:   0,
		Format(42):      0,
	}
	for f, want := range sizes {
		if got := f.BytesPerPixel(); got != want {
			t.Fatalf("expected %s to be %d bytes, got %d", f, want, got)
		}
	}
	if !FormatTrueColorRGBA.Canonical() || FormatXRGB8888.Canonical() {
		t.Fatal("expected only the pixel types to be canonical")
	}
	if n := len(Formats()); n != 10 {
		t.Fatalf("expected 10 formats, got %d", n)
	}
	if s := Format(42).String(); s != "Format(42)" {
		t.Fatalf("expected Format(42), got %q", s)
	}
}

func TestError_KindAndCodeMatching(t *testing.T) {
	err := error(invalidParameterError("open", CodeInvalidWidth, "bad width %d", 0))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatal("expected match on kind sentinel")
	}
	if !errors.Is(err, &Error{Kind: KindInvalidParameter, Code: CodeInvalidWidth}) {
		t.Fatal("expected match on kind and code")
	}
	if errors.Is(err, &Error{Kind: KindInvalidParameter, Code: CodeInvalidHeight}) || errors.Is(err, ErrResource) {
		t.Fatal("expected no match on a different code or kind")
	}
	if KindOf(err) != KindInvalidParameter || !strings.Contains(err.Error(), "code 3001") {
		t.Fatalf("expected invalid parameter 3001, got %v", err)
	}

	cause := errors.New("device gone")
	wrapped := resourceError("open", CodeSurfaceCreate, cause, "failed to open display backend")
	if !errors.Is(wrapped, cause) || !errors.Is(wrapped, ErrResource) {
		t.Fatalf("expected wrapped resource error to match cause and kind, got %v", wrapped)
	}
	if !strings.Contains(wrapped.Error(), "device gone") {
		t.Fatalf("expected cause in message, got %q", wrapped)
	}
	if CodeOf(cause) != 0 {
		t.Fatal("expected foreign errors to have code 0")
	}
}
