package irdecode

import "math"

// Frame is one decoded remote-control frame. It is returned by value; the
// engine keeps no references into it.
type Frame struct {
	Protocol    ProtocolTag
	Address     uint16
	Command     uint32
	Flags       uint8
	StartSample uint64
	EndSample   uint64
}

// Frame flag bits. The upper nibble carries protocol specific payload:
// Kaseikyo genre-2 bits, or the Merlin command length in bytes.
const (
	FlagRepetition uint8 = 0x01
)

// phase of the edge detector.
type phase uint8

const (
	phaseIdle  phase = iota // line quiet, counting gap ticks
	phasePulse              // line active, counting pulse ticks
	phasePause              // line quiet after a pulse, counting pause ticks
)

// Decoder is a single-receiver IR decoding engine. It consumes one line
// sample per Step call and latches at most one decoded frame at a time.
// A Decoder is not safe for concurrent use; run one per receiver.
type Decoder struct {
	rate    uint32
	cmd32   bool
	enabled ProtocolSet

	descs             [protocolCount]descriptor
	order             []ProtocolTag
	necRepeatPauseWin window
	startTimeoutTicks uint16
	repeatWindowTicks uint32
	denonWindowTicks  uint32

	// Edge detector.
	phase      phase
	pulseTicks uint16
	pauseTicks uint16
	waitIdle   bool // malformed frame: ignore everything until the line goes quiet

	// Per-frame state.
	started     bool
	repeatFrame bool // NEC key-held repeat frame (no payload bits)
	active      *descriptor
	shadow      *descriptor
	bitIndex    uint16
	addrAcc     uint16
	cmdAcc      uint32
	raw         [2]uint64 // every stored bit, indexed by arrival order
	bi          biphaseState
	beoLast     uint8
	rc5Ext      bool // long RC5 start seen, command bit 6 preloaded
	frameStart  uint64
	gapAtStart  uint32

	// Cross-frame state.
	lastAddr     uint16
	lastCmd      uint32
	lastProto    ProtocolTag
	gapTicks     uint32
	burstCount   uint8
	denonPending *Frame
	pending      Frame
	detected     bool

	sampleIndex uint64
	lastLevel   uint8

	edgeCB  func(level uint8, sample uint64)
	traceFn func(TraceEvent)
}

// NewDecoder builds the timing windows for the configured sample rate and
// protocol set. Nearly all allocation happens here: the only allocation
// Step makes is the held copy of the first frame of a Denon pair.
func NewDecoder(cfg Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Decoder{
		rate:    cfg.SampleRate,
		cmd32:   cfg.Command32,
		enabled: cfg.Protocols,
	}
	for _, tag := range cfg.Protocols.Tags() {
		d.descs[tag] = buildDescriptor(tag, cfg.SampleRate)
		d.order = append(d.order, tag)
	}
	// Pivot targets need descriptors even when only the base is enabled.
	for proto, base := range pivotTargets {
		if d.descs[proto].tag == 0 && cfg.Protocols.Has(base) {
			d.descs[proto] = buildDescriptor(proto, cfg.SampleRate)
		}
	}
	d.necRepeatPauseWin = newWindow(necRepeatPause, cfg.SampleRate, tol20)
	d.startTimeoutTicks = ticksFor(frameTimeout, cfg.SampleRate)
	for _, tag := range d.order {
		if d.descs[tag].timeoutTicks > d.startTimeoutTicks {
			d.startTimeoutTicks = d.descs[tag].timeoutTicks
		}
	}
	d.repeatWindowTicks = ticks32For(keyRepeatWindow, cfg.SampleRate)
	d.denonWindowTicks = ticks32For(2*denonPairGap, cfg.SampleRate)
	d.Reset()
	return d, nil
}

// pivotTargets maps protocols reachable only mid-frame to the base protocol
// whose classification leads there.
var pivotTargets = map[ProtocolTag]ProtocolTag{
	ProtoApple:     ProtoNEC,
	ProtoOnkyo:     ProtoNEC,
	ProtoJVC:       ProtoNEC,
	ProtoNEC16:     ProtoNEC,
	ProtoNEC42:     ProtoNEC,
	ProtoLGAir:     ProtoNEC,
	ProtoSamsung32: ProtoSamsung,
	ProtoSamsung48: ProtoSamsung,
	ProtoTechnics:  ProtoMatsushita,
	ProtoRC6A:      ProtoRC6,
	ProtoIR60:      ProtoGrundig,
	ProtoNokia:     ProtoGrundig,
	ProtoSiemens:   ProtoRuwido,
	ProtoRCMM24:    ProtoRCMM32,
	ProtoRCMM12:    ProtoRCMM32,
	ProtoFDC:       ProtoRC5,
	ProtoRCCar:     ProtoRC5,
}

// SampleRate returns the configured sample rate in Hz.
func (d *Decoder) SampleRate() uint32 { return d.rate }

// SetEdgeCallback registers a function invoked synchronously from Step
// whenever the line level inverts. The callback must not call back into the
// decoder.
func (d *Decoder) SetEdgeCallback(fn func(level uint8, sample uint64)) { d.edgeCB = fn }

// SetTraceHook registers a structured trace receiver. Nil disables tracing.
func (d *Decoder) SetTraceHook(fn func(TraceEvent)) { d.traceFn = fn }

// Reset zeroes all per-frame and cross-frame state and restarts the sample
// counter. The engine returns to idle.
func (d *Decoder) Reset() {
	d.phase = phaseIdle
	d.pulseTicks = 0
	d.pauseTicks = 0
	d.waitIdle = false
	d.clearFrame()
	d.lastAddr = 0
	d.lastCmd = 0
	d.lastProto = ProtoUnknown
	d.gapTicks = math.MaxUint32
	d.burstCount = 0
	d.denonPending = nil
	d.pending = Frame{}
	d.detected = false
	d.sampleIndex = 0
	d.lastLevel = 1
}

// clearFrame drops all per-frame registers.
func (d *Decoder) clearFrame() {
	d.started = false
	d.repeatFrame = false
	d.active = nil
	d.shadow = nil
	d.bitIndex = 0
	d.addrAcc = 0
	d.cmdAcc = 0
	d.raw[0] = 0
	d.raw[1] = 0
	d.bi = biphaseState{}
	d.beoLast = 0
	d.rc5Ext = false
}

// Step consumes one line sample. level is 0 while the demodulator reports IR
// carrier (active low) and non-zero while the line idles. It returns true
// exactly when a frame has just been finalized and awaits GetData.
func (d *Decoder) Step(level uint8) bool {
	d.sampleIndex++
	if d.gapTicks < math.MaxUint32 {
		d.gapTicks++
	}

	lvl := uint8(1)
	on := level == 0
	if on {
		lvl = 0
	}
	if lvl != d.lastLevel {
		d.lastLevel = lvl
		if d.edgeCB != nil {
			d.edgeCB(lvl, d.sampleIndex)
		}
	}

	wasDetected := d.detected
	switch d.phase {
	case phaseIdle:
		if on {
			d.phase = phasePulse
			d.pulseTicks = 1
			d.frameStart = d.sampleIndex
			d.gapAtStart = d.gapTicks
			d.waitIdle = false
		}
	case phasePulse:
		if on {
			satInc(&d.pulseTicks)
		} else {
			d.phase = phasePause
			d.pauseTicks = 1
		}
	case phasePause:
		if !on {
			satInc(&d.pauseTicks)
			if d.pauseTicks >= d.timeoutTicks() {
				d.onTimeout()
			}
		} else {
			d.onPair(d.pulseTicks, d.pauseTicks)
			d.phase = phasePulse
			d.pulseTicks = 1
		}
	}
	return d.detected && !wasDetected
}

// GetData returns the pending frame, if any, and clears the latch.
func (d *Decoder) GetData() (Frame, bool) {
	if !d.detected {
		return Frame{}, false
	}
	d.detected = false
	return d.pending, true
}

// Detect steps the engine over a sample buffer until the first frame is
// finalized or the buffer is exhausted.
func (d *Decoder) Detect(samples []uint8) (Frame, bool) {
	for _, s := range samples {
		if d.Step(s) {
			return d.GetData()
		}
	}
	return Frame{}, false
}

// timeoutTicks selects the pause threshold that terminates the current
// frame: the active protocol's own once classified, the widest enabled one
// before that.
func (d *Decoder) timeoutTicks() uint16 {
	if d.active != nil {
		return d.active.timeoutTicks
	}
	return d.startTimeoutTicks
}

// onPair is invoked on every pause-to-pulse transition with the completed
// pulse+pause measurement.
func (d *Decoder) onPair(pulse, pause uint16) {
	if d.waitIdle {
		return
	}
	if !d.started {
		if !d.classifyStart(pulse, pause) {
			d.discardFrame(OutcomeNoStartMatch)
		}
		return
	}
	if d.repeatFrame {
		// A repeat frame carries no payload pairs, only the stop pulse.
		d.discardFrame(OutcomeTimingMiss)
		return
	}
	if !d.decodePair(pulse, pause) {
		if !d.promoteShadow(pulse, pause) {
			d.discardFrame(OutcomeTimingMiss)
		}
	}
}

// decodePair routes a completed pulse+pause pair to the active family.
func (d *Decoder) decodePair(pulse, pause uint16) bool {
	switch d.active.family {
	case famPulseDistance, famPulseWidth:
		return d.pairDistance(pulse, pause)
	case famBiphase:
		return d.biphaseRun(true, pulse) && d.biphaseRun(false, pause)
	case famSerial:
		return d.serialRun(true, pulse) && d.serialRun(false, pause)
	case famRCMM:
		return d.pairRCMM(pulse, pause)
	case famBeo:
		return d.pairBeo(pulse, pause)
	}
	return false
}

// onTimeout fires when the pause outlives the frame threshold: the pulse
// measured just before it is the frame's trailing pulse (stop bit, final
// data bit, or final biphase half) and the frame is finalized.
func (d *Decoder) onTimeout() {
	if d.started && !d.waitIdle {
		if d.repeatFrame {
			d.finalizeRepeatFrame()
		} else if d.consumeTrailingPulse(d.pulseTicks) {
			d.endFrame()
		} else {
			d.trace(TraceEvent{Kind: TraceFinalize, Protocol: d.activeTag(), Outcome: OutcomeTimingMiss})
		}
	}
	d.clearFrame()
	d.waitIdle = false
	d.phase = phaseIdle
	// The terminating pause keeps counting as idle gap; gapTicks already
	// includes it.
}

// consumeTrailingPulse folds the unpaired final pulse into the frame.
func (d *Decoder) consumeTrailingPulse(pulse uint16) bool {
	a := d.active
	switch a.family {
	case famPulseDistance:
		if a.stopBit() {
			return a.pulse1.contains(pulse) || a.pulse0.contains(pulse)
		}
		return true
	case famPulseWidth:
		if a.stopBit() {
			return a.pulse1.contains(pulse) || a.pulse0.contains(pulse)
		}
		// The final pulse is the last data bit; its pause merged into the gap.
		switch {
		case a.pulse1.contains(pulse):
			return d.storeBit(1)
		case a.pulse0.contains(pulse):
			return d.storeBit(0)
		}
		return false
	case famBiphase:
		return d.biphaseRun(true, pulse)
	case famSerial:
		if !d.serialRun(true, pulse) {
			return false
		}
		// Trailing zeros merged into the gap.
		for d.bitIndex < uint16(a.completeLen) {
			if !d.storeBit(0) {
				return false
			}
		}
		return true
	case famRCMM, famBeo:
		return a.pulse1.contains(pulse)
	}
	return false
}

func (d *Decoder) activeTag() ProtocolTag {
	if d.active == nil {
		return ProtoUnknown
	}
	return d.active.tag
}

// discardFrame abandons the current frame and ignores the line until it has
// been quiet for a full timeout.
func (d *Decoder) discardFrame(outcome FinalizeOutcome) {
	if d.active != nil || outcome == OutcomeNoStartMatch {
		d.trace(TraceEvent{Kind: TraceFinalize, Protocol: d.activeTag(), Outcome: outcome})
	}
	d.clearFrame()
	d.waitIdle = true
}

// storeBit appends one decoded bit, routing it to the address or command
// register according to the active descriptor, and always into the raw
// frame image used by pivot repacks and integrity checks.
func (d *Decoder) storeBit(v uint8) bool {
	a := d.active
	i := d.bitIndex
	if i >= uint16(a.completeLen) {
		return false
	}
	if v != 0 {
		d.raw[i>>6] |= 1 << (i & 63)
	}
	if i >= uint16(a.addrOfs) && i < uint16(a.addrEnd) {
		if a.lsb() {
			d.addrAcc |= uint16(v) << (i - uint16(a.addrOfs))
		} else {
			d.addrAcc = d.addrAcc<<1 | uint16(v)
		}
	} else if i >= uint16(a.cmdOfs) && i < uint16(a.cmdEnd) {
		if a.lsb() {
			d.cmdAcc |= uint32(v) << (i - uint16(a.cmdOfs))
		} else {
			d.cmdAcc = d.cmdAcc<<1 | uint32(v)
		}
	}
	d.bitIndex++
	d.trace(TraceEvent{Kind: TraceBit, Protocol: a.tag, BitIndex: int(i), BitValue: v})
	return true
}

// rawBits extracts bits [lo,hi) of the frame image in arrival order, bit lo
// in the result's bit 0.
func (d *Decoder) rawBits(lo, hi uint16) uint32 {
	var v uint32
	for i := lo; i < hi; i++ {
		if d.raw[i>>6]&(1<<(i&63)) != 0 {
			v |= 1 << (i - lo)
		}
	}
	return v
}

// rawBitsMSB extracts bits [lo,hi) with bit lo as the most significant.
func (d *Decoder) rawBitsMSB(lo, hi uint16) uint32 {
	var v uint32
	for i := lo; i < hi; i++ {
		v <<= 1
		if d.raw[i>>6]&(1<<(i&63)) != 0 {
			v |= 1
		}
	}
	return v
}

// setActive swaps the active descriptor mid-frame.
func (d *Decoder) setActive(tag ProtocolTag) {
	from := d.activeTag()
	d.active = &d.descs[tag]
	if from != tag {
		d.trace(TraceEvent{Kind: TracePivot, Protocol: from, Pivot: tag})
	}
}

func satInc(v *uint16) {
	if *v < math.MaxUint16 {
		*v++
	}
}
