package particles

// Config parameterizes a Pool. The presets below carry the per-scene constants.
type Config struct {
	// Capacity is the fixed number of slots.
	Capacity int

	// Speed scales velocity into pixels per second.
	Speed float32

	// Decay is the life lost per second.
	Decay float32

	// Velocity is the half-width of the symmetric dx/dy spawn range.
	Velocity float32

	// RespawnMargin is how far outside the screen a particle may drift
	// before Update recycles it.
	RespawnMargin float32

	// VisibleMargin is the tighter band used by Visible. It must not exceed
	// RespawnMargin.
	VisibleMargin float32
}

// Presets for the scenes that own a particle pool.
var (
	DoubleBuffer = Config{
		Capacity:      500,
		Speed:         60,
		Decay:         0.4,
		Velocity:      1,
		RespawnMargin: 6,
		VisibleMargin: 1,
	}

	Software = Config{
		Capacity:      300,
		Speed:         50,
		Decay:         0.4,
		Velocity:      0.9,
		RespawnMargin: 6,
		VisibleMargin: 1,
	}

	Batched = Config{
		Capacity:      1500,
		Speed:         70,
		Decay:         0.35,
		Velocity:      1,
		RespawnMargin: 6,
		VisibleMargin: 1,
	}

	Space = Config{
		Capacity:      200,
		Speed:         40,
		Decay:         0.5,
		Velocity:      0.9,
		RespawnMargin: 6,
		VisibleMargin: 1,
	}
)

func (c Config) valid() bool {
	return c.Capacity > 0 &&
		c.Speed >= 0 &&
		c.Decay >= 0 &&
		c.Velocity >= 0 &&
		c.VisibleMargin >= 0 &&
		c.VisibleMargin <= c.RespawnMargin
}
