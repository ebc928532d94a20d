package engine

import "image/color"

// Pixel is an unpacked frame buffer value.
type Pixel struct {
	Red, Green, Blue, Alpha uint8
}

func PixelFromUint(p uint32) Pixel {
	return Pixel{
		Red:   uint8(p),
		Green: uint8(p >> 8),
		Blue:  uint8(p >> 16),
		Alpha: uint8(p >> 24),
	}
}

func (p Pixel) ToUint() uint32 {
	return uint32(p.Alpha)<<24 | uint32(p.Blue)<<16 | uint32(p.Green)<<8 | uint32(p.Red)
}

func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p.Red, G: p.Green, B: p.Blue, A: p.Alpha}
}

// IsTransparent treats anything short of fully opaque as a cutout.
func IsTransparent(p uint32) bool {
	return p>>24 < 0xFF
}

// Opaque packs an RGB colour with full alpha.
func Opaque(r, g, b uint8) uint32 {
	return Pixel{Red: r, Green: g, Blue: b, Alpha: 0xFF}.ToUint()
}
