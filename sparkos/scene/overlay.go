package scene

import (
	"image/color"

	"sparkbench/sparkos/gfx"
)

// MaxOverlayLines is the number of HUD lines the overlay can hold.
const MaxOverlayLines = 4

const overlayPad = 3

var (
	overlayBG = color.RGBA{R: 0x08, G: 0x0C, B: 0x18, A: 0xFF}
	overlayFG = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	overlayHi = color.RGBA{R: 0xFF, G: 0xD0, B: 0x60, A: 0xFF}
)

// Overlay is a band of text lines at the top of the screen. Its Height is the
// top margin handed to the active scene.
type Overlay struct {
	lines  [MaxOverlayLines]string
	n      int
	hidden bool
}

func NewOverlay() *Overlay { return &Overlay{} }

// SetLines replaces the HUD text. Lines past MaxOverlayLines are dropped.
func (o *Overlay) SetLines(lines ...string) {
	o.n = min(len(lines), MaxOverlayLines)
	copy(o.lines[:], lines[:o.n])
}

// SetLine updates line i, growing the line count if needed.
func (o *Overlay) SetLine(i int, s string) {
	if i < 0 || i >= MaxOverlayLines {
		return
	}
	o.lines[i] = s
	if i >= o.n {
		o.n = i + 1
	}
}

func (o *Overlay) Lines() []string { return o.lines[:o.n] }

func (o *Overlay) Visible() bool { return !o.hidden }

func (o *Overlay) SetVisible(v bool) { o.hidden = !v }

func (o *Overlay) Toggle() { o.hidden = !o.hidden }

// Height returns the rows covered by the overlay, 0 when hidden or empty.
func (o *Overlay) Height() int {
	if o.hidden || o.n == 0 {
		return 0
	}
	return o.n*gfx.LineHeight + 2*overlayPad
}

// Draw paints the band and its lines. The first line is highlighted.
func (o *Overlay) Draw(c *gfx.Canvas) {
	h := o.Height()
	if h == 0 || c == nil {
		return
	}
	c.FillRect(0, 0, c.Width(), h, overlayBG)
	for i := 0; i < o.n; i++ {
		fg := overlayFG
		if i == 0 {
			fg = overlayHi
		}
		c.Text(overlayPad, overlayPad+i*gfx.LineHeight, o.lines[i], fg)
	}
}
