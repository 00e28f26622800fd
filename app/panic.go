package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"sparkbench/sparkos/gfx"
)

var (
	panicBG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	panicFG = color.RGBA{A: 0xFF}
)

// recoverFrame turns a panic inside a frame into an error, after logging the
// stack and drawing it over the framebuffer. Use as a deferred call.
func (b *Bench) recoverFrame(err *error) {
	r := recover()
	if r == nil {
		return
	}
	name := b.meter.name
	stack := debug.Stack()

	lines := []string{
		"Bench Panic:",
		fmt.Sprintf("scene: %s", name),
		fmt.Sprintf("panic: %v", r),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if b.log != nil {
		for _, line := range lines {
			b.log.WriteLineString(line)
		}
	}
	drawPanic(b.canvas, lines)

	b.done = true
	*err = fmt.Errorf("app: panic in scene %s: %v", name, r)
}

// drawPanic wraps lines to the canvas width and draws as many as fit.
func drawPanic(c *gfx.Canvas, lines []string) {
	if c == nil {
		return
	}
	c.Clear(panicBG)

	fontWidth := gfx.TextWidth("0")
	if fontWidth <= 0 {
		_ = c.Present()
		return
	}
	cols := c.Width() / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+gfx.LineHeight > c.Height() {
				_ = c.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(0, y, chunk, panicFG)
			y += gfx.LineHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = c.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
