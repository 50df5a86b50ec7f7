package firpar

import (
	"fmt"

	"github.com/cwbudde/algo-firpar/internal/cluster"
	"github.com/cwbudde/algo-firpar/internal/cpu"
)

// Kernel runs filter invocations on a fixed team of cores. A Kernel is safe
// for concurrent use; invocations are serialized.
type Kernel struct {
	team         *cluster.Team
	hook         PhaseHook
	forceGeneric bool
}

// New returns a kernel backed by cores cores. cores <= 0 uses one core per
// usable CPU.
func New(cores int, opts ...Option) (*Kernel, error) {
	features := cpu.DetectFeatures()
	if cores <= 0 {
		cores = max(features.NumCPU, 1)
	}

	var cfg kernelConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	team, err := cluster.New(cores)
	if err != nil {
		return nil, fmt.Errorf("firpar: %w", err)
	}

	k := &Kernel{
		team:         team,
		hook:         cfg.hook,
		forceGeneric: features.ForceGeneric,
	}
	if cfg.forceGeneric != nil {
		k.forceGeneric = *cfg.forceGeneric
	}
	return k, nil
}

// Cores returns the team size.
func (k *Kernel) Cores() int {
	return k.team.Size()
}

// Close releases the core team. The kernel must not be used afterwards.
func (k *Kernel) Close() {
	k.team.Close()
}

// FilterScalar filters one tile with the scalar reference engine.
// Requires NCoeffs >= 1.
func (k *Kernel) FilterScalar(a *Args) {
	k.run(a, computeScalar)
}

// FilterPaired filters one tile two taps per step. Requires an even NCoeffs;
// pad odd filters with a zero coefficient.
func (k *Kernel) FilterPaired(a *Args) {
	k.run(a, computePaired)
}

// Filter10Taps filters one tile with the 10-tap engine. Requires NCoeffs == 10.
func (k *Kernel) Filter10Taps(a *Args) {
	k.run(a, computeFixed[[10]int16])
}

// Filter20Taps filters one tile with the 20-tap engine. Requires NCoeffs == 20.
func (k *Kernel) Filter20Taps(a *Args) {
	k.run(a, computeFixed[[20]int16])
}

// Filter filters one tile with the engine Lookup selects for a.NCoeffs.
func (k *Kernel) Filter(a *Args) {
	k.run(a, k.Lookup(a.NCoeffs).compute)
}

// FilterVariant dispatches to the entry point of v. VariantAuto behaves like
// Filter.
func (k *Kernel) FilterVariant(v Variant, a *Args) {
	k.run(a, k.engine(v, a.NCoeffs).compute)
}

// Lookup returns the engine Filter uses for nCoeffs taps.
func (k *Kernel) Lookup(nCoeffs int) *Entry {
	e := global.Lookup(nCoeffs, k.forceGeneric)
	if e == nil {
		panic(fmt.Sprintf("firpar: no engine registered for %d taps", nCoeffs))
	}
	return e
}

func (k *Kernel) engine(v Variant, nCoeffs int) *Entry {
	if v == VariantAuto {
		return k.Lookup(nCoeffs)
	}
	e := global.ByVariant(v)
	if e == nil {
		panic(fmt.Sprintf("firpar: no engine registered for variant %s", v))
	}
	return e
}

// run executes one invocation: every core filters its bucket, all cores meet
// at barrier A, core 0 updates the delay line, and all cores meet again at
// barrier B before the call returns.
func (k *Kernel) run(a *Args, compute computeFn) {
	hook := k.hook
	k.team.Run(func(c cluster.Core) {
		id := c.ID()
		if hook != nil {
			hook(id, PhaseInit)
		}
		start, end := Bucket(a.NSamples, c.Count(), id)

		if hook != nil {
			hook(id, PhaseCompute)
		}
		if start < end {
			compute(a, start, end)
		}

		if hook != nil {
			hook(id, PhaseBarrierA)
		}
		c.Barrier()

		if id == 0 {
			if hook != nil {
				hook(id, PhaseDelayLineUpdate)
			}
			updateDelayLine(a)
		}

		if hook != nil {
			hook(id, PhaseBarrierB)
		}
		c.Barrier()

		if hook != nil {
			hook(id, PhaseDone)
		}
	})
}
