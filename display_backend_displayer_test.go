package pixeltoaster

import (
	"errors"
	"image/color"
	"testing"
)

type fakePanel struct {
	w, h     int16
	pix      map[[2]int16]color.RGBA
	flushes  int
	flushErr error
}

func newFakePanel(w, h int16) *fakePanel {
	return &fakePanel{w: w, h: h, pix: make(map[[2]int16]color.RGBA)}
}

func (p *fakePanel) Size() (x, y int16) { return p.w, p.h }

func (p *fakePanel) SetPixel(x, y int16, c color.RGBA) { p.pix[[2]int16{x, y}] = c }

func (p *fakePanel) Display() error {
	p.flushes++
	return p.flushErr
}

func TestDisplayerBackend_PresentsDirtyRegion(t *testing.T) {
	panel := newFakePanel(16, 16)
	d, err := NewDisplay(NewDisplayerBackend(panel))
	if err != nil {
		t.Fatalf("NewDisplay returned error: %v", err)
	}
	if err := d.Open("lcd", 4, 4, OutputDefault, ModeTrueColor); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	frame := make([]TrueColorPixel, 16)
	for i := range frame {
		frame[i] = TrueColorPixel{R: uint8(i), G: 0x40, B: 0x80, A: 0}
	}
	box := Rectangle{X: 1, Y: 2, Width: 2, Height: 1}
	ok, err := d.UpdateTrueColor(frame, &box)
	if !ok || err != nil {
		t.Fatalf("expected true, nil; got %v, %v", ok, err)
	}
	if len(panel.pix) != 2 || panel.flushes != 1 {
		t.Fatalf("expected 2 pixels and 1 flush, got %d and %d", len(panel.pix), panel.flushes)
	}
	if got := panel.pix[[2]int16{2, 2}]; got != (color.RGBA{R: 10, G: 0x40, B: 0x80, A: 0xFF}) {
		t.Fatalf("unexpected pixel at (2,2): %+v", got)
	}
}

func TestDisplayerBackend_FloatFramesAreQuantized(t *testing.T) {
	panel := newFakePanel(2, 1)
	d, _ := NewDisplay(NewDisplayerBackend(panel))
	if err := d.Open("lcd", 2, 1, OutputDefault, ModeFloatingPoint); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := d.UpdateFloatingPoint([]FloatingPointPixel{{R: 1}, {B: 0.5}}, nil); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got := panel.pix[[2]int16{1, 0}]; got.B != 128 || got.A != 0xFF {
		t.Fatalf("expected blue 128 opaque, got %+v", got)
	}
}

func TestDisplayerBackend_FrameLargerThanPanel(t *testing.T) {
	d, _ := NewDisplay(NewDisplayerBackend(newFakePanel(8, 8)))
	err := d.Open("lcd", 9, 8, OutputDefault, ModeTrueColor)
	if CodeOf(err) != CodeSurfaceCreate {
		t.Fatalf("expected code %d, got %v", CodeSurfaceCreate, err)
	}
}

func TestDisplayerBackend_FlushFailure(t *testing.T) {
	panel := newFakePanel(2, 2)
	panel.flushErr = errors.New("spi timeout")
	d, _ := NewDisplay(NewDisplayerBackend(panel))
	if err := d.Open("lcd", 2, 2, OutputDefault, ModeTrueColor); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	ok, err := d.UpdateTrueColor(make([]TrueColorPixel, 4), nil)
	if ok || err != nil {
		t.Fatalf("expected false, nil; got %v, %v", ok, err)
	}
}
