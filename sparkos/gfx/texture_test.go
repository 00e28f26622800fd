package gfx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckerTexture(t *testing.T) {
	tex := NewCheckerTexture(8, 4, white, black)
	c := New(8, 8)
	c.DrawTexture(tex, 0, 0, 0, 0, 0, 0)
	if c.Pixel(0, 0) != white || c.Pixel(4, 0) != black || c.Pixel(4, 4) != white {
		t.Fatalf("checker pattern wrong: %v %v %v", c.Pixel(0, 0), c.Pixel(4, 0), c.Pixel(4, 4))
	}

	// Scrolling by one cell flips the pattern.
	c.DrawTexture(tex, 0, 0, 8, 8, 4, 0)
	if c.Pixel(0, 0) != black {
		t.Fatalf("scrolled pixel = %v, want black", c.Pixel(0, 0))
	}
}

func TestDrawTextureScalesAndClips(t *testing.T) {
	tex := NewCheckerTexture(2, 1, white, black)
	c := New(4, 4)
	c.Clear(red)
	c.DrawTexture(tex, -2, -2, 8, 8, 0, 0)
	if got := countColor(c, red); got != 0 {
		t.Fatalf("%d pixels not covered", got)
	}
	if c.Pixel(0, 0) != white || c.Pixel(2, 0) != black {
		t.Fatalf("scaled texels wrong: %v %v", c.Pixel(0, 0), c.Pixel(2, 0))
	}
	c.DrawTexture(nil, 0, 0, 4, 4, 0, 0)
	if s := c.Stats(); s.DrawCalls != 2 {
		t.Fatalf("DrawCalls = %d, want 2", s.DrawCalls)
	}
}

func TestXORTexture(t *testing.T) {
	tex := NewXORTexture(64)
	if tex.W != 64 || tex.H != 64 || len(tex.Pix) != 64*64 {
		t.Fatalf("texture = %dx%d/%d", tex.W, tex.H, len(tex.Pix))
	}
	if tex.Pix[0] == tex.Pix[63] {
		t.Fatalf("XOR texture is flat")
	}
}

func TestLoadTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "white.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	tex, err := LoadTexture(path, 16)
	if err != nil {
		t.Fatalf("LoadTexture() error = %v", err)
	}
	if tex.W != 16 || tex.H != 16 {
		t.Fatalf("size = %dx%d, want 16x16", tex.W, tex.H)
	}
	if tex.Pix[5*16+5] != 0xFFFF {
		t.Fatalf("texel = %#x, want white", tex.Pix[5*16+5])
	}

	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Fatalf("LoadTexture(missing) error = nil")
	}
	junk := filepath.Join(t.TempDir(), "junk.png")
	os.WriteFile(junk, []byte("not an image"), 0644)
	if _, err := LoadTexture(junk, 0); err == nil {
		t.Fatalf("LoadTexture(junk) error = nil")
	}
}

func TestEncodeWebP(t *testing.T) {
	c := New(16, 16)
	c.Clear(color.RGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xFF})
	c.FillRect(4, 4, 8, 8, white)

	var buf bytes.Buffer
	if err := EncodeWebP(&buf, c); err != nil {
		t.Fatalf("EncodeWebP() error = %v", err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Fatalf("output is not a WebP container: % x", b[:min(len(b), 12)])
	}

	path := filepath.Join(t.TempDir(), "sub", "frame.webp")
	if err := SaveWebP(path, c); err != nil {
		t.Fatalf("SaveWebP() error = %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("SaveWebP() wrote nothing: %v", err)
	}
}
