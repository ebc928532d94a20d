package engine

import (
	"encoding/binary"
	"image"
)

// FrameBuffer is the viewport pixel target, row-major packed pixels. Exactly one
// renderer writes to it at a time.
type FrameBuffer struct {
	Pixels []uint32
	Width  int
	Height int
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Pixels: make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

func (f *FrameBuffer) Set(x, y int, p uint32) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Pixels[y*f.Width+x] = p
}

func (f *FrameBuffer) At(x, y int) uint32 {
	return f.Pixels[y*f.Width+x]
}

func (f *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// FillRect clips to the buffer.
func (f *FrameBuffer) FillRect(x, y, width, height int, p uint32) {
	r := image.Rect(x, y, x+width, y+height).Intersect(f.Bounds())
	for dy := r.Min.Y; dy < r.Max.Y; dy++ {
		row := f.Pixels[dy*f.Width : (dy+1)*f.Width]
		for dx := r.Min.X; dx < r.Max.X; dx++ {
			row[dx] = p
		}
	}
}

func (f *FrameBuffer) Clear() {
	for i := range f.Pixels {
		f.Pixels[i] = 0
	}
}

// Bytes returns the buffer as RGBA bytes for presentation.
func (f *FrameBuffer) Bytes() []byte {
	out := make([]byte, len(f.Pixels)*4)
	f.CopyBytes(out)
	return out
}

// CopyBytes writes RGBA bytes into dst, which must hold 4 bytes per pixel.
func (f *FrameBuffer) CopyBytes(dst []byte) {
	for i, p := range f.Pixels {
		binary.LittleEndian.PutUint32(dst[i*4:], p)
	}
}
