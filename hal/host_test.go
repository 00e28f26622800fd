package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func testHAL() (*hostHAL, *bytes.Buffer) {
	var buf bytes.Buffer
	return newHostHAL(&buf, 16, 8), &buf
}

func TestLogger(t *testing.T) {
	h, buf := testHAL()
	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("world"))
	if got := buf.String(); got != "hello\nworld\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestHeadlessTicks(t *testing.T) {
	h, _ := testHAL()
	steps := 0
	err := runHeadless(context.Background(), h, func(HAL) func() error {
		return func() error { steps++; return nil }
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestHeadlessStop(t *testing.T) {
	h, _ := testHAL()
	steps := 0
	err := runHeadless(context.Background(), h, func(HAL) func() error {
		return func() error {
			steps++
			if steps == 3 {
				return fmt.Errorf("done: %w", ErrStop)
			}
			return nil
		}
	}, HeadlessConfig{Hz: 1000})
	if err != nil {
		t.Fatalf("runHeadless() error = %v, want nil on ErrStop", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestHeadlessError(t *testing.T) {
	h, _ := testHAL()
	boom := errors.New("boom")
	err := runHeadless(context.Background(), h, func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("runHeadless() error = %v, want boom", err)
	}
}

func TestHeadlessContext(t *testing.T) {
	h, _ := testHAL()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := runHeadless(ctx, h, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("runHeadless() error = %v, want deadline", err)
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestTerminalPresent(t *testing.T) {
	screen := newSimScreen(t, 8, 4)
	fb := newHostFramebuffer(16, 8)
	fb.ClearRGB(0xFF, 0, 0)
	// Bottom half blue.
	blue := RGB565(0, 0, 0xFF)
	for y := 4; y < 8; y++ {
		for x := 0; x < 16; x++ {
			i := y*fb.stride + x*2
			fb.buf[i], fb.buf[i+1] = byte(blue), byte(blue>>8)
		}
	}

	fb.Present()

	p := &termPresenter{screen: screen, fb: fb}
	p.present()

	cells, w, h := screen.GetContents()
	if w != 8 || h != 4 {
		t.Fatalf("screen = %dx%d", w, h)
	}
	top := cells[0]
	if len(top.Runes) == 0 || top.Runes[0] != halfBlock {
		t.Fatalf("cell rune = %q, want half block", top.Runes)
	}
	fg, bg, _ := top.Style.Decompose()
	if r, g, b := fg.RGB(); r != 0xFF || g != 0 || b != 0 {
		t.Fatalf("fg = %d,%d,%d, want red", r, g, b)
	}
	if r, _, _ := bg.RGB(); r != 0xFF {
		t.Fatalf("bg of top row not red")
	}
	_, bg, _ = cells[3*w].Style.Decompose()
	if r, g, b := bg.RGB(); r != 0 || g != 0 || b != 0xFF {
		t.Fatalf("bottom bg = %d,%d,%d, want blue", r, g, b)
	}
}

func TestTerminalKeysAndCtrlC(t *testing.T) {
	screen := newSimScreen(t, 8, 4)
	h, _ := testHAL()
	screen.InjectKey(tcell.KeyF1, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	done := make(chan error, 1)
	go func() {
		done <- runTerminal(context.Background(), screen, h, func(HAL) func() error {
			return func() error { return nil }
		}, TerminalConfig{Hz: 50})
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runTerminal() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("runTerminal did not stop on Ctrl-C")
	}

	var got []string
	for len(h.kbd.ch) > 0 {
		ev := <-h.kbd.ch
		got = append(got, fmt.Sprintf("%d/%q", ev.Code, ev.Rune))
	}
	want := []string{fmt.Sprintf("%d/%q", KeyF1, rune(0)), fmt.Sprintf("%d/%q", KeyUnknown, 'q')}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("key events = %v, want %v", got, want)
	}
}

func TestTerminalStop(t *testing.T) {
	screen := newSimScreen(t, 8, 4)
	h, _ := testHAL()
	err := runTerminal(context.Background(), screen, h, func(HAL) func() error {
		return func() error { return ErrStop }
	}, TerminalConfig{Hz: 200})
	if err != nil {
		t.Fatalf("runTerminal() error = %v, want nil on ErrStop", err)
	}
}

func TestClock(t *testing.T) {
	h, _ := testHAL()
	c := h.Time()
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	if a < 0 || b-a < 2*time.Millisecond {
		t.Fatalf("clock went %v -> %v", a, b)
	}
	if NewClock().Now() > time.Second {
		t.Fatalf("new clock does not start near zero")
	}
}
