package cubestate

// Option configures Session behavior.
type Option func(*config)

type config struct {
	start          *Cube
	moveHistory    bool
	phaseDetection bool
}

func defaultConfig() *config {
	return &config{
		moveHistory:    true,
		phaseDetection: true,
	}
}

// WithStart sets the state the session starts from and resets to.
// The cube is copied; the caller keeps ownership of its argument.
// Default is the solved cube.
func WithStart(c *Cube) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.start = c.Clone()
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves(),
// and Undo is available.
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(cfg *config) {
		cfg.moveHistory = enabled
	}
}

// WithPhaseDetection enables or disables automatic phase detection.
// When enabled (default), the OnPhaseChange callback fires when phases complete.
func WithPhaseDetection(enabled bool) Option {
	return func(cfg *config) {
		cfg.phaseDetection = enabled
	}
}
