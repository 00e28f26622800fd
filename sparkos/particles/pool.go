// Package particles implements the fixed-capacity particle pool shared by the
// benchmark scenes.
package particles

import (
	"errors"
	"fmt"
	"image/color"
	"iter"

	"sparkbench/sparkos/rng"
)

// ErrInvalidConfig is returned by New when it cannot build a usable pool.
var ErrInvalidConfig = errors.New("particles: invalid config")

// Palette holds the colors a particle can be assigned at respawn.
var Palette = [8]color.RGBA{
	{R: 0xFF, G: 0x55, B: 0x55, A: 0xFF},
	{R: 0xFF, G: 0xAA, B: 0x33, A: 0xFF},
	{R: 0xFF, G: 0xEE, B: 0x55, A: 0xFF},
	{R: 0x66, G: 0xEE, B: 0x66, A: 0xFF},
	{R: 0x44, G: 0xDD, B: 0xDD, A: 0xFF},
	{R: 0x55, G: 0x88, B: 0xFF, A: 0xFF},
	{R: 0xBB, G: 0x66, B: 0xFF, A: 0xFF},
	{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
}

// Particle is one slot of a Pool.
type Particle struct {
	X, Y   float32
	DX, DY float32
	Life   float32
}

// Sprite is what the renderer receives for a visible particle.
type Sprite struct {
	X, Y  float32
	Life  float32
	Color color.RGBA
}

// Pool is a fixed set of particle slots that recycle in place.
//
// Slots [0, Count()) are in play. The palette index of each slot lives in a
// parallel array so that the color survives across frames.
type Pool struct {
	cfg Config
	src *rng.Source

	width  float32
	height float32
	top    float32

	parts []Particle
	color []uint8
	count int
}

// New builds a pool and respawns every slot.
func New(cfg Config, width, height int, src *rng.Source) (*Pool, error) {
	if !cfg.valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidConfig, cfg)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, width, height)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidConfig)
	}
	p := &Pool{
		cfg:    cfg,
		src:    src,
		width:  float32(width),
		height: float32(height),
		parts:  make([]Particle, cfg.Capacity),
		color:  make([]uint8, cfg.Capacity),
		count:  cfg.Capacity,
	}
	for i := range p.parts {
		p.Respawn(i)
	}
	return p, nil
}

// Config returns the preset the pool was built with.
func (p *Pool) Config() Config { return p.cfg }

// Cap returns the number of slots.
func (p *Pool) Cap() int {
	if p == nil {
		return 0
	}
	return len(p.parts)
}

// Count returns the number of slots in play.
func (p *Pool) Count() int {
	if p == nil {
		return 0
	}
	return p.count
}

// SetCount changes how many slots are in play. Newly activated slots are
// respawned.
func (p *Pool) SetCount(n int) {
	if p == nil {
		return
	}
	n = clampInt(n, 0, len(p.parts))
	for i := p.count; i < n; i++ {
		p.Respawn(i)
	}
	p.count = n
}

// TopMargin returns the reserved band at the top of the screen.
func (p *Pool) TopMargin() float32 {
	if p == nil {
		return 0
	}
	return p.top
}

// SetTopMargin reserves px rows at the top of the screen. Spawn area,
// respawn bounds and visibility all derive from it.
func (p *Pool) SetTopMargin(px int) {
	if p == nil {
		return
	}
	p.top = float32(clampInt(px, 0, int(p.height)-1))
}

// At returns slot i. Out-of-range slots return the zero Particle.
func (p *Pool) At(i int) Particle {
	if p == nil || i < 0 || i >= len(p.parts) {
		return Particle{}
	}
	return p.parts[i]
}

// Respawn reassigns slot i a random position, velocity and color. Both
// position ranges are half-open: x in [0, width) and y in [top, height-1).
func (p *Pool) Respawn(i int) {
	if p == nil || i < 0 || i >= len(p.parts) {
		return
	}
	v := p.cfg.Velocity
	p.parts[i] = Particle{
		X:    p.src.Range(0, p.width),
		Y:    p.src.Range(p.top, p.height-1),
		DX:   p.src.Range(-v, v),
		DY:   p.src.Range(-v, v),
		Life: 1,
	}
	p.color[i] = uint8(p.src.Intn(len(Palette)))
}

// Update advances every slot in play by dt seconds. A dt that is not
// positive, NaN included, leaves the pool untouched.
func (p *Pool) Update(dt float32) {
	if p == nil || !(dt > 0) {
		return
	}
	step := dt * p.cfg.Speed
	decay := dt * p.cfg.Decay
	m := p.cfg.RespawnMargin
	for i := 0; i < p.count; i++ {
		pt := &p.parts[i]
		pt.X += pt.DX * step
		pt.Y += pt.DY * step
		pt.Life -= decay
		if !(pt.Life > 0) || !p.inBand(*pt, m) {
			p.Respawn(i)
		}
	}
}

// Visible yields the particles that should be drawn this frame. Slots whose
// palette index is out of range are skipped.
func (p *Pool) Visible() iter.Seq[Sprite] {
	return func(yield func(Sprite) bool) {
		if p == nil {
			return
		}
		m := p.cfg.VisibleMargin
		for i := 0; i < p.count; i++ {
			pt := p.parts[i]
			if !p.inBand(pt, m) {
				continue
			}
			ci := int(p.color[i])
			if ci >= len(Palette) {
				continue
			}
			if !yield(Sprite{X: pt.X, Y: pt.Y, Life: pt.Life, Color: Palette[ci]}) {
				return
			}
		}
	}
}

// inBand reports whether pt lies within margin m of the playfield. NaN
// coordinates are never in band.
func (p *Pool) inBand(pt Particle, m float32) bool {
	return pt.X >= -m && pt.X <= p.width+m && pt.Y >= p.top && pt.Y <= p.height+m
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
