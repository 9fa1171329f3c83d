package irdecode

// TraceKind discriminates trace events.
type TraceKind uint8

const (
	TraceStartBit TraceKind = iota // a start bit matched, Protocol is the primary
	TraceBit                       // one payload bit stored
	TracePivot                     // active descriptor switched mid-frame
	TraceFinalize                  // frame ended, Outcome says how
)

// FinalizeOutcome says what became of a frame at its end.
type FinalizeOutcome uint8

const (
	OutcomeFrame            FinalizeOutcome = iota // decoded and latched
	OutcomeTimingMiss                              // pulse or pause outside every window
	OutcomeIntegrityFail                           // parity, complement or CRC failed
	OutcomePivotFail                               // pivot left inconsistent state
	OutcomeSuppressedRepeat                        // valid but a by-design repeat
	OutcomeLeadIn                                  // protocol preamble frame, dropped
	OutcomeNoStartMatch                            // no descriptor claimed the start bit
	OutcomeDenonHeld                               // first Denon half, awaiting complement
)

var outcomeNames = [...]string{
	"frame", "timing-miss", "integrity-fail", "pivot-fail",
	"suppressed-repeat", "lead-in", "no-start-match", "denon-held",
}

func (o FinalizeOutcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// TraceEvent is delivered to the trace hook for every notable decoding step.
// Tracing is off by default; the hook is called synchronously from Step.
type TraceEvent struct {
	Kind     TraceKind
	Protocol ProtocolTag
	Pivot    ProtocolTag // TracePivot: the descriptor switched to
	Shadow   ProtocolTag // TraceStartBit: armed shadow descriptor, if any
	BitIndex int
	BitValue uint8
	Outcome  FinalizeOutcome
}

func (d *Decoder) trace(ev TraceEvent) {
	if d.traceFn != nil {
		d.traceFn(ev)
	}
}
