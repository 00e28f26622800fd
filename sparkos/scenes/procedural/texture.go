package procedural

import (
	"fmt"
	"image/color"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/scene"
)

const (
	textureSize  = 64
	textureTiles = 4
	scrollSpeed  = 40
)

// Texture tiles the screen with a scrolling texture.
type Texture struct {
	w, h int
	top  int
	tex  *gfx.Texture
	u, v float32
}

// NewTexture uses env.TexturePath when set and a generated XOR pattern
// otherwise.
func NewTexture(env scene.Env) (scene.Scene, error) {
	tex := gfx.NewXORTexture(textureSize)
	if env.TexturePath != "" {
		t, err := gfx.LoadTexture(env.TexturePath, textureSize)
		if err != nil {
			return nil, fmt.Errorf("texture scene: %w", err)
		}
		tex = t
		if env.Logger != nil {
			env.Logger.WriteLineString("texture: loaded " + env.TexturePath)
		}
	}
	return &Texture{w: env.Width, h: env.Height, tex: tex}, nil
}

func (s *Texture) Name() string { return TextureName }

func (s *Texture) SetTopMargin(px int) { s.top = max(px, 0) }

func (s *Texture) Update(dt float32) {
	dt = scene.ClampDelta(dt)
	s.u += dt * scrollSpeed
	s.v += dt * scrollSpeed * 0.5
	for s.u >= textureSize {
		s.u -= textureSize
	}
	for s.v >= textureSize {
		s.v -= textureSize
	}
}

func (s *Texture) Render(c *gfx.Canvas) {
	area := s.h - s.top
	if area <= 0 {
		return
	}
	tw := (s.w + textureTiles - 1) / textureTiles
	th := (area + textureTiles - 1) / textureTiles
	for j := 0; j < textureTiles; j++ {
		for i := 0; i < textureTiles; i++ {
			c.DrawTexture(s.tex, i*tw, s.top+j*th, tw, th, int(s.u), int(s.v))
		}
	}
	c.FillRect(0, s.top, s.w, 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
}
