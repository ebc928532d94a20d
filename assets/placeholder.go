package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// placeholder wall hues, cycled by texture pair
var wallPalette = []color.RGBA{
	{140, 145, 155, 255},
	{120, 130, 140, 255},
	{139, 90, 60, 255},
	{50, 120, 180, 255},
	{160, 120, 80, 255},
	{0, 150, 200, 255},
	{200, 150, 0, 255},
	{80, 85, 95, 255},
}

var (
	borderColor = color.RGBA{40, 40, 45, 255}
	spriteColor = color.RGBA{255, 50, 50, 255}
)

// Placeholder builds a pack of procedural textures. Walls come in pairs with the
// east-west face darker than the north-south face; sprites are opaque discs on a
// transparent background.
func Placeholder(walls, sprites, size int) *Pack {
	p := &Pack{
		Walls:   make([]Texture, walls),
		Sprites: make([]Texture, sprites),
	}
	for i := range p.Walls {
		base := wallPalette[(i/2)%len(wallPalette)]
		if i%2 == 0 {
			base = darken(base)
		}
		p.Walls[i] = FromRGBA(borderedTile(size, base, i))
	}
	for i := range p.Sprites {
		p.Sprites[i] = FromRGBA(discTile(size, i))
	}
	return p
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255}
}

func borderedTile(size int, fill color.RGBA, index int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)

	for i := 0; i < size; i++ {
		img.Set(i, 0, borderColor)
		img.Set(i, size-1, borderColor)
		img.Set(0, i, borderColor)
		img.Set(size-1, i, borderColor)
	}
	// one notch per index bit along the top edge so textures can be told apart
	for bit := 0; bit < 8 && bit*4+4 < size; bit++ {
		if index&(1<<bit) != 0 {
			for y := 2; y < 5 && y < size; y++ {
				img.Set(bit*4+2, y, borderColor)
				img.Set(bit*4+3, y, borderColor)
			}
		}
	}
	return img
}

func discTile(size, index int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := spriteColor
	c.G = uint8(index * 37)
	r := float64(size) / 3
	mid := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-mid, float64(y)+0.5-mid
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
	return img
}
