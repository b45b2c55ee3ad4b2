package pixeltoaster

import "testing"

const benchWidth, benchHeight = 320, 240

func BenchmarkConvertFloatingPoint(b *testing.B) {
	src := make([]FloatingPointPixel, benchWidth*benchHeight)
	for i := range src {
		v := float32(i%256) / 255
		src[i] = FloatingPointPixel{R: v, G: 1 - v, B: v / 2, A: 1}
	}
	r := NewRegistry()
	for _, f := range Formats() {
		c, err := r.FloatingPoint(f)
		if err != nil {
			b.Fatal(err)
		}
		dst := make([]byte, len(src)*f.BytesPerPixel())
		b.Run(f.String(), func(b *testing.B) {
			b.SetBytes(int64(len(src) * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.ConvertFloatingPoint(dst, src)
			}
		})
	}
}

func BenchmarkConvertTrueColor(b *testing.B) {
	src := make([]TrueColorPixel, benchWidth*benchHeight)
	for i := range src {
		src[i] = TrueColorPixel{R: uint8(i), G: uint8(i >> 8), B: uint8(i >> 4), A: 0xFF}
	}
	r := NewRegistry()
	for _, f := range Formats() {
		c, err := r.TrueColor(f)
		if err != nil {
			b.Fatal(err)
		}
		dst := make([]byte, len(src)*f.BytesPerPixel())
		b.Run(f.String(), func(b *testing.B) {
			b.SetBytes(int64(len(src) * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.ConvertTrueColor(dst, src)
			}
		})
	}
}

func BenchmarkDisplayUpdateHeadless(b *testing.B) {
	d, err := NewDisplay(NewHeadlessBackend(FormatXRGB8888))
	if err != nil {
		b.Fatal(err)
	}
	if err := d.Open("bench", benchWidth, benchHeight, OutputDefault, ModeFloatingPoint); err != nil {
		b.Fatal(err)
	}
	frame := make([]FloatingPointPixel, benchWidth*benchHeight)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.UpdateFloatingPoint(frame, nil); err != nil {
			b.Fatal(err)
		}
	}
}
