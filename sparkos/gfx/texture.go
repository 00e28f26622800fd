package gfx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"

	"sparkbench/hal"
)

// Texture is an RGB565 image sampled by DrawTexture.
type Texture struct {
	W, H int
	Pix  []uint16
}

// LoadTexture decodes a PNG or TGA file. When size > 0 the image is scaled
// to size x size.
func LoadTexture(path string, size int) (*Texture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return FromImage(img, size), nil
}

// FromImage converts img, scaling it to size x size when size > 0.
func FromImage(img image.Image, size int) *Texture {
	b := img.Bounds()
	if size > 0 && (b.Dx() != size || b.Dy() != size) {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
		b = dst.Bounds()
	}
	t := &Texture{W: b.Dx(), H: b.Dy(), Pix: make([]uint16, b.Dx()*b.Dy())}
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			t.Pix[y*t.W+x] = hal.RGB565(c.R, c.G, c.B)
		}
	}
	return t
}

// NewXORTexture returns the classic x^y pattern.
func NewXORTexture(size int) *Texture {
	if size <= 0 {
		size = 1
	}
	t := &Texture{W: size, H: size, Pix: make([]uint16, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8((x ^ y) * 256 / size)
			t.Pix[y*size+x] = hal.RGB565(v, v/2, 255-v)
		}
	}
	return t
}

// NewCheckerTexture returns a checkerboard of cell-sized squares.
func NewCheckerTexture(size, cell int, a, b color.RGBA) *Texture {
	if size <= 0 {
		size = 1
	}
	if cell <= 0 {
		cell = 1
	}
	pa := hal.RGB565(a.R, a.G, a.B)
	pb := hal.RGB565(b.R, b.G, b.B)
	t := &Texture{W: size, H: size, Pix: make([]uint16, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := pa
			if (x/cell+y/cell)%2 == 1 {
				p = pb
			}
			t.Pix[y*size+x] = p
		}
	}
	return t
}

// DrawTexture fills [x, x+w) x [y, y+h) with t, nearest-sampled and wrapped,
// starting at texel (u, v). A non-positive w or h uses the texture size.
func (c *Canvas) DrawTexture(t *Texture, x, y, w, h, u, v int) {
	c.count(4, 2)
	if t == nil || t.W <= 0 || t.H <= 0 {
		return
	}
	if w <= 0 {
		w = t.W
	}
	if h <= 0 {
		h = t.H
	}
	x0, y0 := clampInt(x, 0, c.w), clampInt(y, 0, c.h)
	x1, y1 := clampInt(x+w, 0, c.w), clampInt(y+h, 0, c.h)
	for yy := y0; yy < y1; yy++ {
		ty := wrap(v+(yy-y)*t.H/h, t.H)
		row := t.Pix[ty*t.W : ty*t.W+t.W]
		for xx := x0; xx < x1; xx++ {
			tx := wrap(u+(xx-x)*t.W/w, t.W)
			c.put(xx, yy, row[tx])
		}
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
