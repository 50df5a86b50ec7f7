// Package cpu reports processor capabilities used to pick filter kernels and
// to size the core team.
//
// Detection runs lazily on the first call to DetectFeatures and is cached.
// Tests may override the result with SetForcedFeatures.
package cpu

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// ForceGenericEnv names the environment variable that, when set to a true
// value, restricts kernel selection to the scalar reference path.
const ForceGenericEnv = "FIRPAR_FORCE_GENERIC"

// Features describes the host as seen by kernel selection.
type Features struct {
	// x86/amd64 SIMD features, reported but not used for kernel selection
	HasSSE2 bool
	HasAVX2 bool

	// ARM SIMD features
	HasNEON bool

	// ForceGeneric disables every specialized kernel.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string

	// NumCPU is the number of logical CPUs usable by the process.
	NumCPU int
}

// String returns a compact description such as "amd64 sse2 avx2 (8 cpus)".
func (f Features) String() string {
	parts := []string{f.Architecture}
	if f.HasSSE2 {
		parts = append(parts, "sse2")
	}
	if f.HasAVX2 {
		parts = append(parts, "avx2")
	}
	if f.HasNEON {
		parts = append(parts, "neon")
	}
	if f.ForceGeneric {
		parts = append(parts, "force-generic")
	}
	return strings.Join(parts, " ") + " (" + strconv.Itoa(f.NumCPU) + " cpus)"
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current host. It is safe for
// concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.NumCPU = runtime.GOMAXPROCS(0)
		detectedFeatures.ForceGeneric = forceGenericFromEnv()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

func forceGenericFromEnv() bool {
	val := os.Getenv(ForceGenericEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
