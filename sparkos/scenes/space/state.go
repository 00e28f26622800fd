// Package space is the space-shooter benchmark: a player ship with a fading
// trail, waves of wireframe drones and enemies, and a drifting star field.
//
// Entity z runs from 0 (far) to FarZ (near the viewer). Entities of one kind
// are painted in ascending z so nearer ones cover farther ones.
package space

import (
	"fmt"
	"math"

	"sparkbench/sparkos/particles"
	"sparkbench/sparkos/quarkgl"
	"sparkbench/sparkos/rng"
	"sparkbench/sparkos/scene"
	"sparkbench/sparkos/trail"
)

const Name = "space"

const (
	MaxDrones  = 8
	MaxEnemies = 6
	FarZ       = 100

	trailCapacity = 48
	trailInterval = 1.0 / 30
	trailDecay    = 1.2
	scrollSpeed   = 60

	playerX    = 64
	playerSize = 10
	droneSize  = 6
	enemySize  = 9

	// despawnX is how far past the left edge an entity travels before its
	// slot is freed.
	despawnX = -20
	spawnPad = 10
)

// entity is a drone, an enemy or the player ship.
type entity struct {
	pos    quarkgl.Vec3
	vx     float32
	roll   float32
	spin   float32
	baseY  float32
	phase  float32
	active bool
}

// Scene owns every piece of simulation state of the space benchmark.
type Scene struct {
	w, h float32
	top  float32

	src   *rng.Source
	pool  *particles.Pool
	trail *trail.Buffer

	player  entity
	drones  [MaxDrones]entity
	enemies [MaxEnemies]entity

	t          float32
	trailClock float32
	droneWait  float32
	enemyWait  float32

	order []int
}

// New builds the space scene from env's size and seed.
func New(env scene.Env) (scene.Scene, error) {
	src := rng.New(env.Seed)
	pool, err := particles.New(particles.Space, env.Width, env.Height, src)
	if err != nil {
		return nil, fmt.Errorf("space: %w", err)
	}
	s := &Scene{
		w:     float32(env.Width),
		h:     float32(env.Height),
		src:   src,
		pool:  pool,
		trail: trail.New(trailCapacity),
		order: make([]int, 0, max(MaxDrones, MaxEnemies)),
	}
	s.player = entity{
		pos:    quarkgl.V3(playerX, s.h/2, FarZ),
		active: true,
	}
	s.droneWait = s.src.Range(0.1, 0.4)
	s.enemyWait = s.src.Range(0.5, 1.2)
	return s, nil
}

func (s *Scene) Name() string { return Name }

func (s *Scene) SetTopMargin(px int) {
	s.pool.SetTopMargin(px)
	s.top = s.pool.TopMargin()
}

// Update advances one frame: particles, player, trail, then both waves.
func (s *Scene) Update(dt float32) {
	dt = scene.ClampDelta(dt)
	if dt == 0 {
		return
	}
	s.t += dt
	s.pool.Update(dt)
	s.updatePlayer()
	s.updateTrail(dt)

	s.droneWait -= dt
	if s.droneWait <= 0 {
		s.spawn(s.drones[:], 50, 110)
		s.droneWait = s.src.Range(0.3, 0.9)
	}
	s.enemyWait -= dt
	if s.enemyWait <= 0 {
		s.spawn(s.enemies[:], 30, 70)
		s.enemyWait = s.src.Range(0.8, 1.8)
	}
	s.advance(s.drones[:], dt, 0)
	s.advance(s.enemies[:], dt, 14)
}

func (s *Scene) updatePlayer() {
	mid := (s.top + s.h) / 2
	amp := (s.h - s.top) / 3
	p := &s.player
	p.pos.X = playerX + 12*sinf(s.t*0.5)
	p.pos.Y = clampF(mid+amp*sinf(s.t*0.8), s.top+playerSize, s.h-playerSize)
	p.roll = 0.5 * sinf(s.t*1.3)
}

// updateTrail samples the ship's exhaust at a fixed rate and lets older
// samples fade and scroll with the world.
func (s *Scene) updateTrail(dt float32) {
	s.trailClock += dt
	for s.trailClock >= trailInterval {
		s.trailClock -= trailInterval
		s.trail.Push(s.player.pos.X-playerSize/2, s.player.pos.Y)
	}
	s.trail.Update(dt, trailDecay, scrollSpeed)
}

// spawn activates the first free slot, if any.
func (s *Scene) spawn(list []entity, minSpeed, maxSpeed float32) {
	for i := range list {
		if list[i].active {
			continue
		}
		y := s.src.Range(s.top+spawnPad, s.h-spawnPad)
		list[i] = entity{
			pos:    quarkgl.V3(s.w+spawnPad, y, s.src.Range(0, FarZ)),
			vx:     -s.src.Range(minSpeed, maxSpeed),
			roll:   s.src.Range(0, 2*math.Pi),
			spin:   s.src.Range(-3, 3),
			baseY:  y,
			phase:  s.src.Range(0, 2*math.Pi),
			active: true,
		}
		return
	}
}

// advance moves active entities left, weaving by weave pixels, and frees the
// ones that left the screen.
func (s *Scene) advance(list []entity, dt, weave float32) {
	for i := range list {
		e := &list[i]
		if !e.active {
			continue
		}
		e.pos.X += e.vx * dt
		e.roll += e.spin * dt
		if weave != 0 {
			y := e.baseY + weave*sinf(s.t*2+e.phase)
			e.pos.Y = clampF(y, s.top, s.h-1)
		}
		if e.pos.X < despawnX {
			e.active = false
		}
	}
}

func sinf(v float32) float32 { return float32(math.Sin(float64(v))) }

func clampF(v, lo, hi float32) float32 {
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
