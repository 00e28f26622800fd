package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sparkbench/hal"
	"sparkbench/sparkos/gfx"

	"github.com/google/uuid"
)

// SceneResult is the measurement of one scene run.
type SceneResult struct {
	Name    string  `json:"name"`
	Frames  int     `json:"frames"`
	Seconds float64 `json:"seconds"`
	FPS     float64 `json:"fps"`

	DrawCalls int `json:"draw_calls"`
	Vertices  int `json:"vertices"`
	Triangles int `json:"triangles"`

	AvgDrawCalls float64 `json:"avg_draw_calls"`
	AvgVertices  float64 `json:"avg_vertices"`
	AvgTriangles float64 `json:"avg_triangles"`

	Capture string `json:"capture,omitempty"`
}

// Report is the summary of a whole run.
type Report struct {
	RunID   uuid.UUID     `json:"run_id"`
	Version string        `json:"version"`
	Commit  string        `json:"commit"`
	Seed    uint32        `json:"seed"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Scenes  []SceneResult `json:"scenes"`
}

// sceneMeter accumulates per-frame numbers for the active scene.
type sceneMeter struct {
	name    string
	frames  int
	sim     float64
	wall    float64
	total   gfx.Stats
	lastFPS float64
}

func (m *sceneMeter) reset(name string) {
	*m = sceneMeter{name: name}
}

func (m *sceneMeter) frame(simDT, wallDT float64, s gfx.Stats) {
	m.frames++
	m.sim += simDT
	m.wall += wallDT
	m.total = m.total.Add(s)
	if wallDT > 0 {
		fps := 1 / wallDT
		if m.lastFPS == 0 {
			m.lastFPS = fps
		} else {
			m.lastFPS += (fps - m.lastFPS) * 0.1
		}
	}
}

func (m *sceneMeter) result() SceneResult {
	r := SceneResult{
		Name:      m.name,
		Frames:    m.frames,
		Seconds:   m.wall,
		DrawCalls: m.total.DrawCalls,
		Vertices:  m.total.Vertices,
		Triangles: m.total.Triangles,
	}
	if m.wall > 0 {
		r.FPS = float64(m.frames) / m.wall
	}
	if m.frames > 0 {
		n := float64(m.frames)
		r.AvgDrawCalls = float64(m.total.DrawCalls) / n
		r.AvgVertices = float64(m.total.Vertices) / n
		r.AvgTriangles = float64(m.total.Triangles) / n
	}
	return r
}

func logScene(l hal.Logger, r SceneResult) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(
		"bench: scene=%s frames=%d seconds=%.2f fps=%.1f draws=%.1f verts=%.1f tris=%.1f",
		r.Name, r.Frames, r.Seconds, r.FPS, r.AvgDrawCalls, r.AvgVertices, r.AvgTriangles,
	))
}

func (r *Report) log(l hal.Logger) {
	if l == nil {
		return
	}
	var frames int
	var wall float64
	for _, s := range r.Scenes {
		frames += s.Frames
		wall += s.Seconds
	}
	l.WriteLineString(fmt.Sprintf("bench: done run=%s version=%s seed=%d size=%dx%d scenes=%d frames=%d seconds=%.2f",
		r.RunID, r.Version, r.Seed, r.Width, r.Height, len(r.Scenes), frames, wall))
}

// WriteFile stores the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
