//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package pixeltoaster

// The identity converters view canonical pixel slices as raw bytes, which
// only matches the documented FloatRGBA/TrueColorRGBA layouts on little-endian.
var _ = "PixelToaster requires a little-endian architecture" + 1
