package hal

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz    int
	Ticks uint64
}

// halfBlock paints the upper pixel as foreground and the lower as background,
// so each cell shows two framebuffer rows.
const halfBlock = '▀'

var tcellKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyEscape: KeyEscape,
	tcell.KeyF1:     KeyF1,
}

// RunTerminal presents the framebuffer in the terminal with half-block
// characters and forwards key presses. Ctrl-C stops the runner. Log lines are
// held back and written to stdout once the terminal is restored.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	h := New().(*hostHAL)
	var held bytes.Buffer
	out := h.logger.redirect(&held)

	err = runTerminal(ctx, screen, h, newApp, cfg)
	screen.Fini()

	h.logger.redirect(out)
	os.Stdout.Write(held.Bytes())
	return err
}

func runTerminal(ctx context.Context, screen tcell.Screen, h *hostHAL, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	step := newApp(h)
	p := &termPresenter{screen: screen, fb: h.fb}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				h.kbd.send(keyEventFromTcell(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			if stop, err := runStep(step); stop {
				return err
			}
			p.present()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func keyEventFromTcell(ev *tcell.EventKey) KeyEvent {
	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Press: true, Rune: ev.Rune()}
	}
	if code, ok := tcellKeys[ev.Key()]; ok {
		return KeyEvent{Code: code, Press: true}
	}
	return KeyEvent{Code: KeyUnknown, Press: true}
}

// termPresenter downsamples the framebuffer to the terminal size.
type termPresenter struct {
	screen  tcell.Screen
	fb      *hostFramebuffer
	scratch []byte
	shown   uint64
}

func (p *termPresenter) present() {
	fb := p.fb
	if len(p.scratch) != len(fb.buf) {
		p.scratch = make([]byte, len(fb.buf))
	}
	n := fb.snapshotRGB565(p.scratch)
	if n == 0 || n == p.shown {
		return
	}
	p.shown = n

	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	pixRows := rows * 2
	for cy := 0; cy < rows; cy++ {
		top := cy * 2 * fb.height / pixRows
		bot := (cy*2 + 1) * fb.height / pixRows
		for cx := 0; cx < cols; cx++ {
			x := cx * fb.width / cols
			st := tcell.StyleDefault.
				Foreground(p.color(x, top)).
				Background(p.color(x, bot))
			p.screen.SetContent(cx, cy, halfBlock, nil, st)
		}
	}
	p.screen.Show()
}

func (p *termPresenter) color(x, y int) tcell.Color {
	i := y*p.fb.stride + x*2
	r, g, b := RGB888(uint16(p.scratch[i]) | uint16(p.scratch[i+1])<<8)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
