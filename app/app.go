// Package app wires the benchmark scenes to a HAL: it owns the frame driver,
// scene cycling, the HUD overlay, metrics, capture and the run report.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"slices"
	"time"

	"sparkbench/hal"
	"sparkbench/internal/buildinfo"
	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/scene"
	"sparkbench/sparkos/scenes/batched"
	"sparkbench/sparkos/scenes/cube"
	"sparkbench/sparkos/scenes/procedural"
	"sparkbench/sparkos/scenes/softraster"
	"sparkbench/sparkos/scenes/space"

	"github.com/google/uuid"
)

// MaxDeltaTime caps a wall-clock frame step, in seconds.
const MaxDeltaTime = 0.1

var ErrUnknownScene = errors.New("unknown scene")

var clearColor = color.RGBA{A: 0xFF}

var registry = map[string]scene.Factory{
	cube.Name:              cube.New,
	procedural.FillName:    procedural.NewFill,
	procedural.TextureName: procedural.NewTexture,
	procedural.LinesName:   procedural.NewLines,
	batched.Name:           batched.New,
	softraster.Name:        softraster.New,
	space.Name:             space.New,
}

// order is the default run order.
var order = []string{
	cube.Name,
	procedural.FillName,
	procedural.TextureName,
	procedural.LinesName,
	batched.Name,
	softraster.Name,
	space.Name,
}

// SceneNames returns every registered scene in run order.
func SceneNames() []string { return slices.Clone(order) }

// Bench is a running benchmark.
type Bench struct {
	log    hal.Logger
	keys   <-chan hal.KeyEvent
	cfg    Config
	canvas *gfx.Canvas

	overlay *scene.Overlay
	margin  int

	idx   int
	cur   scene.Scene
	meter sceneMeter

	clock   hal.Time
	last    time.Duration
	ticking bool

	report Report
	done   bool
}

// New builds a Bench on h and returns its per-tick step function. The step
// returns hal.ErrStop once the last scene has run, unless cfg.Loop is set.
func New(h hal.HAL, cfg Config) (func() error, *Bench, error) {
	b, err := newBench(h, cfg)
	if err != nil {
		return nil, nil, err
	}
	return b.Step, b, nil
}

func newBench(h hal.HAL, cfg Config) (*Bench, error) {
	if h == nil {
		return nil, errors.New("app: nil hal")
	}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	disp := h.Display()
	if disp == nil {
		return nil, fmt.Errorf("app: no display: %w", hal.ErrNotImplemented)
	}
	c, err := gfx.Wrap(disp.Framebuffer())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = max(uint32(time.Now().UnixNano()), 1)
	}
	clock := h.Time()
	if clock == nil {
		clock = hal.NewClock()
	}

	b := &Bench{
		log:     h.Logger(),
		cfg:     cfg,
		canvas:  c,
		overlay: scene.NewOverlay(),
		clock:   clock,
		report: Report{
			RunID:   uuid.New(),
			Version: buildinfo.Short(),
			Commit:  buildinfo.Commit,
			Seed:    cfg.Seed,
			Width:   c.Width(),
			Height:  c.Height(),
		},
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			b.keys = kbd.Events()
		}
	}
	b.overlay.SetVisible(!cfg.NoOverlay)

	if b.log != nil {
		b.log.WriteLineString(fmt.Sprintf("bench: start run=%s version=%s seed=%d scenes=%v",
			b.report.RunID, b.report.Version, cfg.Seed, cfg.Scenes))
	}
	if err := b.open(0); err != nil {
		return nil, err
	}
	return b, nil
}

// Config returns the resolved configuration.
func (b *Bench) Config() Config { return b.cfg }

// Report returns the results gathered so far.
func (b *Bench) Report() Report { return b.report }

// Scene returns the active scene.
func (b *Bench) Scene() scene.Scene { return b.cur }

// Overlay returns the HUD.
func (b *Bench) Overlay() *scene.Overlay { return b.overlay }

// Step runs one frame.
func (b *Bench) Step() (err error) {
	if b.done {
		return hal.ErrStop
	}
	defer b.recoverFrame(&err)

	next, stop := b.pollKeys()
	if stop {
		return b.finish()
	}

	simDT, wallDT := b.delta()
	b.frame(simDT, wallDT)

	if next || b.sceneDone() {
		return b.advance()
	}
	return nil
}

func (b *Bench) pollKeys() (next, stop bool) {
	if b.keys == nil {
		return false, false
	}
	for {
		select {
		case ev, ok := <-b.keys:
			if !ok {
				b.keys = nil
				return next, stop
			}
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyRight, hal.KeyEnter:
				next = true
			case hal.KeyF1:
				b.overlay.Toggle()
			case hal.KeyEscape:
				stop = true
			}
		default:
			return next, stop
		}
	}
}

// delta returns the simulation step and the measured wall time since the
// previous frame.
func (b *Bench) delta() (sim, wall float64) {
	t := b.clock.Now()
	if b.ticking {
		wall = (t - b.last).Seconds()
	}
	b.last, b.ticking = t, true
	if wall < 0 {
		wall = 0
	}

	if b.cfg.FixedStep {
		return 1 / float64(b.cfg.Hz), wall
	}
	sim = wall
	if b.meter.frames == 0 && sim == 0 {
		sim = 1 / float64(b.cfg.Hz)
	}
	return min(sim, MaxDeltaTime), wall
}

func (b *Bench) frame(simDT, wallDT float64) {
	c := b.canvas
	b.syncMargin()

	c.ResetStats()
	c.Clear(clearColor)
	b.cur.Update(float32(simDT))
	b.cur.Render(c)
	work := c.Stats()
	b.meter.frame(simDT, wallDT, work)

	b.updateOverlay(work)
	b.overlay.Draw(c)
	_ = c.Present()
}

// syncMargin hands the overlay height to the scene whenever it changes.
func (b *Bench) syncMargin() {
	h := b.overlay.Height()
	if h == b.margin {
		return
	}
	b.margin = h
	b.cur.SetTopMargin(h)
}

func (b *Bench) updateOverlay(s gfx.Stats) {
	b.overlay.SetLines(
		fmt.Sprintf("%d/%d %s", b.idx+1, len(b.cfg.Scenes), b.meter.name),
		fmt.Sprintf("fps %.1f  frame %d", b.meter.lastFPS, b.meter.frames),
		fmt.Sprintf("dc %d  v %d  t %d", s.DrawCalls, s.Vertices, s.Triangles),
	)
}

func (b *Bench) sceneDone() bool {
	if b.cfg.SceneFrames > 0 {
		return b.meter.frames >= b.cfg.SceneFrames
	}
	return b.meter.sim >= b.cfg.SceneSeconds
}

// advance closes the active scene and opens the next one.
func (b *Bench) advance() error {
	if err := b.closeScene(); err != nil {
		return err
	}
	next := b.idx + 1
	if next >= len(b.cfg.Scenes) {
		if !b.cfg.Loop {
			return b.finish()
		}
		next = 0
	}
	return b.open(next)
}

func (b *Bench) open(i int) error {
	name := b.cfg.Scenes[i]
	factory := registry[name]
	s, err := factory(scene.Env{
		Width:       b.canvas.Width(),
		Height:      b.canvas.Height(),
		Seed:        b.cfg.Seed,
		TexturePath: b.cfg.TexturePath,
		Logger:      b.log,
	})
	if err != nil {
		b.done = true
		return fmt.Errorf("app: scene %s: %w", name, err)
	}
	b.idx = i
	b.cur = s
	b.meter.reset(name)
	b.ticking = false

	b.updateOverlay(gfx.Stats{})
	b.margin = b.overlay.Height()
	s.SetTopMargin(b.margin)
	return nil
}

func (b *Bench) closeScene() error {
	if b.cur == nil {
		return nil
	}
	r := b.meter.result()
	if b.cfg.CaptureDir != "" {
		path := filepath.Join(b.cfg.CaptureDir, r.Name+".webp")
		if err := gfx.SaveWebP(path, b.canvas); err != nil {
			b.done = true
			return fmt.Errorf("app: capture %s: %w", r.Name, err)
		}
		r.Capture = path
	}
	logScene(b.log, r)
	b.report.Scenes = append(b.report.Scenes, r)
	b.cur = nil
	return nil
}

// finish records the active scene, emits the report and stops the runner.
func (b *Bench) finish() error {
	if b.done {
		return hal.ErrStop
	}
	if err := b.closeScene(); err != nil {
		return err
	}
	b.done = true
	b.report.log(b.log)
	if b.cfg.ReportPath != "" {
		if err := b.report.WriteFile(b.cfg.ReportPath); err != nil {
			return err
		}
	}
	return hal.ErrStop
}
