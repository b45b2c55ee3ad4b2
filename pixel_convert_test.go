package pixeltoaster

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func convertFloat(t *testing.T, dst Format, src ...FloatingPointPixel) []byte {
	t.Helper()
	c, err := NewRegistry().FloatingPoint(dst)
	if err != nil {
		t.Fatalf("FloatingPoint(%s) returned error: %v", dst, err)
	}
	out := make([]byte, len(src)*dst.BytesPerPixel())
	if n := c.ConvertFloatingPoint(out, src); n != len(src) {
		t.Fatalf("expected %d pixels converted, got %d", len(src), n)
	}
	return out
}

func convertTrueColor(t *testing.T, dst Format, src ...TrueColorPixel) []byte {
	t.Helper()
	c, err := NewRegistry().TrueColor(dst)
	if err != nil {
		t.Fatalf("TrueColor(%s) returned error: %v", dst, err)
	}
	out := make([]byte, len(src)*dst.BytesPerPixel())
	if n := c.ConvertTrueColor(out, src); n != len(src) {
		t.Fatalf("expected %d pixels converted, got %d", len(src), n)
	}
	return out
}

func word16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func TestFloatingPointConvert_PureRed(t *testing.T) {
	red := FloatingPointPixel{R: 1, A: 1}
	cases := []struct {
		format Format
		want   []byte
	}{
		{FormatTrueColorRGBA, []byte{0xFF, 0x00, 0x00, 0xFF}},
		{FormatXRGB8888, []byte{0x00, 0x00, 0xFF, 0x00}},
		{FormatXBGR8888, []byte{0xFF, 0x00, 0x00, 0x00}},
		{FormatRGB888, []byte{0xFF, 0x00, 0x00}},
		{FormatBGR888, []byte{0x00, 0x00, 0xFF}},
		{FormatRGB565, []byte{0x00, 0xF8}},
		{FormatBGR565, []byte{0x1F, 0x00}},
		{FormatXRGB1555, []byte{0x00, 0x7C}},
		{FormatXBGR1555, []byte{0x1F, 0x00}},
	}
	for _, tc := range cases {
		t.Run(tc.format.String(), func(t *testing.T) {
			if got := convertFloat(t, tc.format, red); !bytes.Equal(got, tc.want) {
				t.Fatalf("expected % X, got % X", tc.want, got)
			}
		})
	}
}

func TestFloatingPointConvert_PackedGreen(t *testing.T) {
	green := FloatingPointPixel{G: 1}
	if got := binary.LittleEndian.Uint32(convertFloat(t, FormatXRGB8888, green)); got != 0x0000FF00 {
		t.Fatalf("expected XRGB8888 0x0000FF00, got 0x%08X", got)
	}
	cases := []struct {
		format Format
		want   uint16
	}{
		{FormatRGB565, 0x07E0},
		{FormatBGR565, 0x07E0},
		{FormatXRGB1555, 0x03E0},
	}
	for _, tc := range cases {
		if got := word16(convertFloat(t, tc.format, green)); got != tc.want {
			t.Fatalf("expected %s 0x%04X, got 0x%04X", tc.format, tc.want, got)
		}
	}
}

func TestFloatingPointConvert_ClampsOutOfRange(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	got := convertFloat(t, FormatTrueColorRGBA, FloatingPointPixel{R: -0.5, G: 2, B: nan, A: inf})
	if want := []byte{0x00, 0xFF, 0x00, 0xFF}; !bytes.Equal(got, want) {
		t.Fatalf("expected % X, got % X", want, got)
	}
}

func TestFloatingPointConvert_ClampedPackedFieldsStayInPlace(t *testing.T) {
	nan := float32(math.NaN())
	cases := []struct {
		format Format
		pixel  FloatingPointPixel
		want   uint16
	}{
		{FormatRGB565, FloatingPointPixel{R: 2, G: -1, B: 5}, 0xF81F},
		{FormatRGB565, FloatingPointPixel{R: -3, G: 7, B: -0.1}, 0x07E0},
		{FormatRGB565, FloatingPointPixel{R: 1e30, G: nan, B: -1e30}, 0xF800},
		{FormatBGR565, FloatingPointPixel{R: 2, G: -1, B: -2}, 0x001F},
		{FormatXRGB1555, FloatingPointPixel{R: 9, G: -9, B: 9}, 0x7C1F},
		{FormatXRGB1555, FloatingPointPixel{R: nan, G: 1e30, B: -1e30, A: 5}, 0x03E0},
		{FormatXRGB1555, FloatingPointPixel{R: 4, G: 4, B: 4, A: 4}, 0x7FFF},
		{FormatXBGR1555, FloatingPointPixel{R: 9, G: -9, B: -9}, 0x001F},
	}
	for _, tc := range cases {
		got := word16(convertFloat(t, tc.format, tc.pixel))
		if got != tc.want {
			t.Fatalf("expected %s 0x%04X for %+v, got 0x%04X", tc.format, tc.want, tc.pixel, got)
		}
		if (tc.format == FormatXRGB1555 || tc.format == FormatXBGR1555) && got&0x8000 != 0 {
			t.Fatalf("expected unused bit clear in %s, got 0x%04X", tc.format, got)
		}
	}
}

func TestFloatingPointConvert_RoundsHalfUp(t *testing.T) {
	half := FloatingPointPixel{R: 0.5, G: 0.5, B: 0.5}
	if got := convertFloat(t, FormatRGB888, half); !bytes.Equal(got, []byte{128, 128, 128}) {
		t.Fatalf("expected 80 80 80, got % X", got)
	}

	w := word16(convertFloat(t, FormatRGB565, half))
	if w>>11 != 16 || (w>>5)&0x3F != 32 || w&0x1F != 16 {
		t.Fatalf("expected RGB565 fields 16/32/16, got %d/%d/%d", w>>11, (w>>5)&0x3F, w&0x1F)
	}
}

func TestFloatingPointConvert_IdentityCopiesBytes(t *testing.T) {
	src := []FloatingPointPixel{{R: 0.25, G: 2, B: -1, A: 0.75}}
	got := convertFloat(t, FormatFloatRGBA, src...)
	var back [1]FloatingPointPixel
	if n := FormatFloatRGBA.UnpackFloatingPoint(back[:], got); n != 1 {
		t.Fatalf("expected 1 pixel unpacked, got %d", n)
	}
	if back[0] != src[0] {
		t.Fatalf("expected %+v, got %+v", src[0], back[0])
	}
}

func TestFloatingPointConvert_RoundTripWithinOneStep(t *testing.T) {
	steps := map[Format][3]float32{
		FormatXRGB8888: {255, 255, 255},
		FormatXBGR8888: {255, 255, 255},
		FormatRGB888:   {255, 255, 255},
		FormatBGR888:   {255, 255, 255},
		FormatRGB565:   {31, 63, 31},
		FormatBGR565:   {31, 63, 31},
		FormatXRGB1555: {31, 31, 31},
		FormatXBGR1555: {31, 31, 31},
	}
	src := make([]FloatingPointPixel, 0, 101)
	for i := 0; i <= 100; i++ {
		v := float32(i) / 100
		src = append(src, FloatingPointPixel{R: v, G: 1 - v, B: v * v, A: 1})
	}
	within := func(a, b, step float32) bool {
		return float32(math.Abs(float64(a-b))) <= 1/step
	}
	for format, scale := range steps {
		t.Run(format.String(), func(t *testing.T) {
			packed := convertFloat(t, format, src...)
			back := make([]FloatingPointPixel, len(src))
			if n := format.UnpackFloatingPoint(back, packed); n != len(src) {
				t.Fatalf("expected %d pixels unpacked, got %d", len(src), n)
			}
			for i := range src {
				if !within(src[i].R, back[i].R, scale[0]) ||
					!within(src[i].G, back[i].G, scale[1]) ||
					!within(src[i].B, back[i].B, scale[2]) {
					t.Fatalf("pixel %d: expected %+v within one step, got %+v", i, src[i], back[i])
				}
			}
		})
	}
}

func TestFloatingPointConvert_StopsAtShortDestination(t *testing.T) {
	c, err := NewRegistry().FloatingPoint(FormatRGB888)
	if err != nil {
		t.Fatalf("FloatingPoint returned error: %v", err)
	}
	if n := c.ConvertFloatingPoint(make([]byte, 7), make([]FloatingPointPixel, 4)); n != 2 {
		t.Fatalf("expected 2 pixels to fit in 7 bytes, got %d", n)
	}
	if n := c.ConvertFloatingPoint(nil, make([]FloatingPointPixel, 4)); n != 0 {
		t.Fatalf("expected 0 pixels for nil destination, got %d", n)
	}
}

func TestTrueColorConvert_Truncates(t *testing.T) {
	p := TrueColorPixel{R: 0xFF, G: 0x80, B: 0x10, A: 0x00}
	cases := []struct {
		format Format
		want   uint16
	}{
		{FormatRGB565, 0xFC02},
		{FormatBGR565, 0x1400 | 0x1F},
		{FormatXRGB1555, 31<<10 | 16<<5 | 2},
		{FormatXBGR1555, 2<<10 | 16<<5 | 31},
	}
	for _, tc := range cases {
		if got := word16(convertTrueColor(t, tc.format, p)); got != tc.want {
			t.Fatalf("expected %s 0x%04X, got 0x%04X", tc.format, tc.want, got)
		}
	}
}

func TestTrueColorConvert_ByteLayouts(t *testing.T) {
	p := TrueColorPixel{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	cases := []struct {
		format Format
		want   []byte
	}{
		{FormatTrueColorRGBA, []byte{0x11, 0x22, 0x33, 0x44}},
		{FormatXRGB8888, []byte{0x33, 0x22, 0x11, 0x00}},
		{FormatXBGR8888, []byte{0x11, 0x22, 0x33, 0x00}},
		{FormatRGB888, []byte{0x11, 0x22, 0x33}},
		{FormatBGR888, []byte{0x33, 0x22, 0x11}},
	}
	for _, tc := range cases {
		if got := convertTrueColor(t, tc.format, p); !bytes.Equal(got, tc.want) {
			t.Fatalf("expected %s % X, got % X", tc.format, tc.want, got)
		}
	}
}

func TestTrueColorConvert_ToFloatingPoint(t *testing.T) {
	got := convertTrueColor(t, FormatFloatRGBA, TrueColorPixel{R: 255, G: 0, B: 51, A: 255})
	var back [1]FloatingPointPixel
	FormatFloatRGBA.UnpackFloatingPoint(back[:], got)
	p := back[0]
	if p.R != 1 || p.G != 0 || p.A != 1 || math.Abs(float64(p.B)-0.2) > 1e-6 {
		t.Fatalf("expected {1 0 0.2 1}, got %+v", p)
	}
}

func TestUnpackTrueColor_ExpandsNarrowChannels(t *testing.T) {
	cases := []struct {
		format Format
		src    []byte
		want   TrueColorPixel
	}{
		{FormatRGB565, []byte{0xFF, 0xFF}, TrueColorPixel{R: 255, G: 255, B: 255, A: 255}},
		{FormatXRGB1555, []byte{0x00, 0x7C}, TrueColorPixel{R: 255, A: 255}},
		{FormatBGR888, []byte{0x01, 0x02, 0x03}, TrueColorPixel{R: 3, G: 2, B: 1, A: 255}},
	}
	for _, tc := range cases {
		var px [1]TrueColorPixel
		tc.format.UnpackTrueColor(px[:], tc.src)
		if px[0] != tc.want {
			t.Fatalf("expected %s to unpack to %+v, got %+v", tc.format, tc.want, px[0])
		}
	}
}

func TestUnpack_UnknownFormatDecodesNothing(t *testing.T) {
	if n := FormatUnknown.UnpackTrueColor(make([]TrueColorPixel, 4), make([]byte, 16)); n != 0 {
		t.Fatalf("expected 0 true color pixels, got %d", n)
	}
	if n := FormatUnknown.UnpackFloatingPoint(make([]FloatingPointPixel, 4), make([]byte, 16)); n != 0 {
		t.Fatalf("expected 0 floating point pixels, got %d", n)
	}
}
