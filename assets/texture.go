// Package assets holds decoded textures in the packed pixel layout the renderer
// writes: (A<<24)|(B<<16)|(G<<8)|R, which is RGBA byte order read little-endian.
package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var ErrTextureIndex = errors.New("texture index out of range")

// Texture is row-major packed pixels.
type Texture struct {
	Pixels []uint32
	Width  int
	Height int
}

func NewTexture(width, height int) Texture {
	return Texture{Pixels: make([]uint32, width*height), Width: width, Height: height}
}

func (t Texture) Get(x, y int) uint32 {
	return t.Pixels[y*t.Width+x]
}

// At is Get with bounds checking.
func (t Texture) At(x, y int) (uint32, bool) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return 0, false
	}
	return t.Pixels[y*t.Width+x], true
}

func (t Texture) Set(x, y int, p uint32) {
	t.Pixels[y*t.Width+x] = p
}

// Scale resamples with nearest-neighbour filtering.
func (t Texture) Scale(factor float64) Texture {
	w, h := int(float64(t.Width)*factor), int(float64(t.Height)*factor)
	if w <= 0 || h <= 0 {
		return Texture{}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), t.Image(), image.Rect(0, 0, t.Width, t.Height), draw.Src, nil)
	return FromRGBA(dst)
}

// Image exposes the texture as an *image.RGBA sharing no memory with it.
func (t Texture) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	for i, p := range t.Pixels {
		binary.LittleEndian.PutUint32(img.Pix[i*4:], p)
	}
	return img
}

func FromRGBA(img *image.RGBA) Texture {
	b := img.Bounds()
	t := NewTexture(b.Dx(), b.Dy())
	for y := 0; y < t.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < t.Width; x++ {
			t.Pixels[y*t.Width+x] = binary.LittleEndian.Uint32(row[x*4:])
		}
	}
	return t
}

// FromImage converts any image. Non-RGBA sources are drawn onto an RGBA canvas
// first, which premultiplies alpha.
func FromImage(src image.Image) Texture {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return FromRGBA(rgba)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return FromRGBA(dst)
}

// -- pack

// Pack is the texture table the renderers index into.
type Pack struct {
	Walls   []Texture
	Sprites []Texture
}

func (p *Pack) Wall(index int) (Texture, error) {
	if index < 0 || index >= len(p.Walls) {
		return Texture{}, fmt.Errorf("wall %d of %d: %w", index, len(p.Walls), ErrTextureIndex)
	}
	return p.Walls[index], nil
}

func (p *Pack) Sprite(index int) (Texture, error) {
	if index < 0 || index >= len(p.Sprites) {
		return Texture{}, fmt.Errorf("sprite %d of %d: %w", index, len(p.Sprites), ErrTextureIndex)
	}
	return p.Sprites[index], nil
}

// Scale returns a pack with every texture resampled.
func (p *Pack) Scale(factor float64) *Pack {
	out := &Pack{
		Walls:   make([]Texture, len(p.Walls)),
		Sprites: make([]Texture, len(p.Sprites)),
	}
	for i, t := range p.Walls {
		out.Walls[i] = t.Scale(factor)
	}
	for i, t := range p.Sprites {
		out.Sprites[i] = t.Scale(factor)
	}
	return out
}
