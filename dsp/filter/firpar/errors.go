package firpar

import "errors"

var (
	// ErrNoCoeffs reports an empty coefficient set.
	ErrNoCoeffs = errors.New("firpar: at least one coefficient required")
	// ErrOddTaps reports an odd tap count for a paired or specialized variant.
	ErrOddTaps = errors.New("firpar: variant requires an even tap count")
	// ErrTapMismatch reports a tap count that a specialized variant cannot run.
	ErrTapMismatch = errors.New("firpar: tap count does not match variant")
	// ErrLength reports a buffer whose length disagrees with NSamples/NCoeffs.
	ErrLength = errors.New("firpar: buffer length mismatch")
	// ErrInvalidTile reports a non-positive tile size.
	ErrInvalidTile = errors.New("firpar: tile size must be > 0")
	// ErrUnknownVariant reports an unrecognized variant.
	ErrUnknownVariant = errors.New("firpar: unknown variant")
	// ErrShortOutput reports a destination shorter than the source.
	ErrShortOutput = errors.New("firpar: destination shorter than source")
)
