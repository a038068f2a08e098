package core

// RuntimeConfig is the screen/timing configuration handed to the
// platform models. The tick only drives animation (win-line blink);
// the rules engine is turn-based and has no clock of its own.
type RuntimeConfig struct {
	ScreenW  int // screen width in characters
	ScreenH  int // screen height in characters
	TickRate int // animation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}
