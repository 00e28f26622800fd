package procedural

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/scene"
)

var env = scene.Env{Width: 64, Height: 64, Seed: 3}

func TestFillCoversArea(t *testing.T) {
	s, err := NewFill(env)
	if err != nil {
		t.Fatalf("NewFill() error = %v", err)
	}
	c := gfx.New(64, 64)
	c.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 0xFF})
	marker := c.Pixel(0, 0)

	s.SetTopMargin(10)
	s.Update(0.5)
	s.Render(c)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			covered := c.Pixel(x, y) != marker
			if y < 10 && covered {
				t.Fatalf("fill drew under the overlay at (%d, %d)", x, y)
			}
			if y >= 10 && !covered {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
	if got := c.Stats().DrawCalls; got != fillCells*fillCells {
		t.Fatalf("DrawCalls = %d, want %d", got, fillCells*fillCells)
	}
}

func TestHueColorWraps(t *testing.T) {
	if hueColor(0) != hueColor(1) || hueColor(0.25) != hueColor(2.25) {
		t.Fatalf("hueColor does not wrap")
	}
	if got := hueColor(0); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("hueColor(0) = %v, want red", got)
	}
}

func TestTextureDefaultAndFile(t *testing.T) {
	s, err := NewTexture(env)
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	c := gfx.New(64, 64)
	s.Update(0.1)
	s.Render(c)
	if got := c.Stats().DrawCalls; got != textureTiles*textureTiles+1 {
		t.Fatalf("DrawCalls = %d", got)
	}

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	png.Encode(f, img)
	f.Close()

	fileEnv := env
	fileEnv.TexturePath = path
	if _, err := NewTexture(fileEnv); err != nil {
		t.Fatalf("NewTexture(file) error = %v", err)
	}
	fileEnv.TexturePath = filepath.Join(t.TempDir(), "missing.tga")
	if _, err := NewTexture(fileEnv); err == nil {
		t.Fatalf("NewTexture(missing) error = nil")
	}
}

func TestTextureScrollWraps(t *testing.T) {
	s, _ := NewTexture(env)
	tx := s.(*Texture)
	for i := 0; i < 100; i++ {
		tx.Update(0.1)
	}
	if tx.u < 0 || tx.u >= textureSize || tx.v < 0 || tx.v >= textureSize {
		t.Fatalf("scroll offsets out of range: %v %v", tx.u, tx.v)
	}
}

func TestLinesStayInBounds(t *testing.T) {
	s, err := NewLines(env)
	if err != nil {
		t.Fatalf("NewLines() error = %v", err)
	}
	l := s.(*Lines)
	l.SetTopMargin(12)
	for i := 0; i < 300; i++ {
		l.Update(1.0 / 30)
	}
	for i := range l.ends {
		for _, e := range l.ends[i] {
			if e.x < 0 || e.x > 63 || e.y < 12 || e.y > 63 {
				t.Fatalf("endpoint out of bounds: %+v", e)
			}
		}
	}
	c := gfx.New(64, 64)
	l.Render(c)
	if st := c.Stats(); st.DrawCalls != lineCount || st.Vertices != 2*lineCount {
		t.Fatalf("Stats() = %+v", st)
	}
}
