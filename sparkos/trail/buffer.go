// Package trail keeps the fading point history drawn behind a moving entity.
package trail

// CutoffX is the screen x below which a scrolled point is dropped.
const CutoffX = -50

// Point is one trail sample. Alpha starts at 1 and fades toward 0.
type Point struct {
	X, Y  float32
	Alpha float32
}

// Buffer is a fixed-capacity trail stored oldest first.
type Buffer struct {
	pts []Point
	n   int
}

// New returns a buffer holding up to capacity points. A non-positive capacity
// yields a buffer on which every operation is a no-op.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{pts: make([]Point, capacity)}
}

// Len returns the number of live points.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.n
}

// Cap returns the maximum number of points.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.pts)
}

// At returns the i-th live point, oldest first.
func (b *Buffer) At(i int) Point {
	if b == nil || i < 0 || i >= b.n {
		return Point{}
	}
	return b.pts[i]
}

// Points returns the live points, oldest first. The slice aliases the buffer
// and is only valid until the next Push or Update.
func (b *Buffer) Points() []Point {
	if b == nil {
		return nil
	}
	return b.pts[:b.n:b.n]
}

// Reset drops every point.
func (b *Buffer) Reset() {
	if b == nil {
		return
	}
	b.n = 0
}

// Push appends a fully opaque point, evicting the oldest one when full.
func (b *Buffer) Push(x, y float32) {
	if b == nil || len(b.pts) == 0 {
		return
	}
	if b.n == len(b.pts) {
		copy(b.pts, b.pts[1:b.n])
		b.n--
	}
	b.pts[b.n] = Point{X: x, Y: y, Alpha: 1}
	b.n++
}

// Update fades every point by dt*decayRate and scrolls it left by
// dt*scrollSpeed. A negative or NaN dt counts as 0. Points that are fully faded or past CutoffX are removed;
// survivors keep their order.
func (b *Buffer) Update(dt, decayRate, scrollSpeed float32) {
	if b == nil {
		return
	}
	if dt < 0 || dt != dt {
		dt = 0
	}
	fade := dt * decayRate
	shift := dt * scrollSpeed
	w := 0
	for r := 0; r < b.n; r++ {
		p := b.pts[r]
		p.Alpha -= fade
		p.X -= shift
		if !(p.Alpha > 0) || !(p.X >= CutoffX) {
			continue
		}
		b.pts[w] = p
		w++
	}
	b.n = w
}
