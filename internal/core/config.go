package core

// RuntimeConfig contains configuration passed to a host at start.
// Hosts use this to size the viewport and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport returns the pixel size of a cols x rows area, given the size of
// one cell in pixels.
func Viewport(cols, rows, cellW, cellH int) Measurements {
	return M(float64(cols*cellW), float64(rows*cellH))
}
