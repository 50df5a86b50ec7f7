package firpar

// Option configures a Kernel.
type Option func(*kernelConfig)

type kernelConfig struct {
	hook         PhaseHook
	forceGeneric *bool
}

// WithPhaseHook installs a hook that observes every core's phase
// transitions. A nil hook is ignored.
func WithPhaseHook(h PhaseHook) Option {
	return func(cfg *kernelConfig) {
		if h != nil {
			cfg.hook = h
		}
	}
}

// WithForceGeneric overrides host detection and, when force is true, makes
// Filter use only the scalar reference engine.
func WithForceGeneric(force bool) Option {
	return func(cfg *kernelConfig) {
		cfg.forceGeneric = &force
	}
}

// StreamOption configures a Stream.
type StreamOption func(*streamConfig)

type streamConfig struct {
	tileSize int
	variant  Variant
}

// DefaultTileSize is the tile length a Stream uses unless configured.
const DefaultTileSize = 256

// WithTileSize sets the number of samples per kernel invocation.
func WithTileSize(n int) StreamOption {
	return func(cfg *streamConfig) {
		cfg.tileSize = n
	}
}

// WithVariant pins the engine a Stream uses instead of the registry choice.
func WithVariant(v Variant) StreamOption {
	return func(cfg *streamConfig) {
		cfg.variant = v
	}
}
