package pixeltoaster

import "unsafe"

// FloatingPointBytes views pixels as their FloatRGBA memory layout without copying.
func FloatingPointBytes(pixels []FloatingPointPixel) []byte {
	if len(pixels) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&pixels[0])), len(pixels)*int(unsafe.Sizeof(FloatingPointPixel{})))
}

// TrueColorBytes views pixels as their TrueColorRGBA memory layout without copying.
func TrueColorBytes(pixels []TrueColorPixel) []byte {
	if len(pixels) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&pixels[0])), len(pixels)*int(unsafe.Sizeof(TrueColorPixel{})))
}

// trueColorView is the inverse of TrueColorBytes; trailing bytes that do
// not form a whole pixel are ignored.
func trueColorView(b []byte) []TrueColorPixel {
	n := len(b) / int(unsafe.Sizeof(TrueColorPixel{}))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*TrueColorPixel)(unsafe.Pointer(&b[0])), n)
}
