package fixed

import "math"

const (
	// MaxSample is the largest representable 16-bit sample.
	MaxSample = math.MaxInt16
	// MinSample is the smallest representable 16-bit sample.
	MinSample = math.MinInt16
)

// Saturate16 clips x to the signed 16-bit range.
func Saturate16(x int64) int16 {
	if x > MaxSample {
		return MaxSample
	}
	if x < MinSample {
		return MinSample
	}
	return int16(x)
}

// Narrow rescales a wide accumulator to a 16-bit sample.
//
// For norm > 0 the result equals adding 1<<(norm-1) and shifting right
// arithmetically by norm, which rounds half up (towards +Inf). For norm == 0 the accumulator is used
// as is. The result is always saturated to [MinSample, MaxSample].
func Narrow(acc int64, norm uint) int16 {
	return Saturate16(Round(acc, norm))
}

// Round returns acc rescaled by norm with the same rounding as [Narrow] but
// without the final clip. It is useful to count saturation events.
//
// The rounding bit is taken from acc instead of adding 1<<(norm-1), so the
// full int64 range is accepted. Any norm >= 64 yields 0.
func Round(acc int64, norm uint) int64 {
	switch {
	case norm == 0:
		return acc
	case norm >= 64:
		return 0
	}
	return acc>>norm + (acc>>(norm-1))&1
}
