package firpar

// Phase is a step of one core's walk through a kernel invocation.
type Phase int

const (
	// PhaseInit computes the core's bucket.
	PhaseInit Phase = iota
	// PhaseCompute filters the bucket.
	PhaseCompute
	// PhaseBarrierA waits for every core to finish computing.
	PhaseBarrierA
	// PhaseDelayLineUpdate rewrites History; only core 0 enters it.
	PhaseDelayLineUpdate
	// PhaseBarrierB waits for the delay line update to complete.
	PhaseBarrierB
	// PhaseDone is terminal.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseCompute:
		return "compute"
	case PhaseBarrierA:
		return "barrier_a"
	case PhaseDelayLineUpdate:
		return "delay_line_update"
	case PhaseBarrierB:
		return "barrier_b"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// PhaseHook observes phase transitions. It is called concurrently from every
// core and must be safe for concurrent use.
type PhaseHook func(core int, p Phase)
