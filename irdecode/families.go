package irdecode

import "math"

// pairDistance decodes one pulse+pause pair for the pulse-distance and
// pulse-width families, including the mid-frame sync pauses that pivot
// Samsung and NEC variants.
func (d *Decoder) pairDistance(pulse, pause uint16) bool {
	a := d.active

	switch a.tag {
	case ProtoSamsung, ProtoSamsung32, ProtoSamsung48:
		// Bit 16 is a sync bit; its pause length selects the frame variant.
		if d.bitIndex == 16 {
			if !a.pulse1.contains(pulse) {
				return false
			}
			long := a.pause1.contains(pause)
			if !long && !a.pause0.contains(pause) {
				return false
			}
			if a.tag == ProtoSamsung {
				if long {
					d.setActive(ProtoSamsung32)
				} else {
					d.setActive(ProtoSamsung48)
				}
			}
			v := uint8(0)
			if long {
				v = 1
			}
			return d.storeBit(v)
		}
	case ProtoNEC, ProtoNEC42:
		// An address-length frame whose pause at bit 8 looks like the start
		// bit pause is the short NEC16 variant's sync bit.
		if d.bitIndex == 8 && a.startPause.contains(pause) && a.pulse1.contains(pulse) {
			d.setActive(ProtoNEC16)
			return d.storeBit(1)
		}
	}

	switch a.family {
	case famPulseDistance:
		if !a.pulse1.contains(pulse) {
			return false
		}
		switch {
		case a.pause1.contains(pause):
			return d.storeBit(1)
		case a.pause0.contains(pause):
			return d.storeBit(0)
		}
		return false
	default: // famPulseWidth
		switch {
		case a.pulse1.contains(pulse) && a.pause1.contains(pause):
			return d.storeBit(1)
		case a.pulse0.contains(pulse) && a.pause0.contains(pause):
			return d.storeBit(0)
		}
		return false
	}
}

// serialRun emits one bit per unit period of a self-clocked run: ones while
// the line pulses, zeros while it pauses. A pause running past the frame
// length is the inter-frame gap and terminates cleanly.
func (d *Decoder) serialRun(isPulse bool, ticks uint16) bool {
	a := d.active
	n := serialUnits(ticks, a.unitTicks)
	if n < 1 {
		return false
	}
	v := uint8(0)
	if isPulse {
		v = 1
	}
	for ; n > 0; n-- {
		if d.bitIndex >= uint16(a.completeLen) {
			return !isPulse
		}
		if !d.storeBit(v) {
			return false
		}
	}
	return true
}

// serialUnits divides a run length by the unit period, requiring the
// remainder to stay within a third of a unit plus one tick. Returns 0 on a
// bad fit.
func serialUnits(ticks uint16, unit float64) int {
	if unit <= 0 {
		return 0
	}
	n := int(math.Round(float64(ticks) / unit))
	if n < 1 {
		return 0
	}
	if math.Abs(float64(ticks)-float64(n)*unit) > unit/3+1 {
		return 0
	}
	return n
}

// pairRCMM decodes one RCMM symbol: a fixed pulse followed by one of four
// pause lengths carrying two bits, high bit first.
func (d *Decoder) pairRCMM(pulse, pause uint16) bool {
	a := d.active
	if !a.pulse1.contains(pulse) {
		return false
	}
	for i, w := range a.rcmmPause {
		if w.contains(pause) {
			return d.storeBit(uint8(i>>1)) && d.storeBit(uint8(i&1))
		}
	}
	return false
}

// pairBeo decodes one Bang & Olufsen symbol: a fixed short pulse followed
// by a pause from the five-value alphabet.
func (d *Decoder) pairBeo(pulse, pause uint16) bool {
	a := d.active
	if !a.pulse1.contains(pulse) {
		return false
	}
	switch {
	case a.beoZero.contains(pause):
		d.beoLast = 0
		return d.storeBit(0)
	case a.beoOne.contains(pause):
		d.beoLast = 1
		return d.storeBit(1)
	case a.beoSame.contains(pause):
		return d.storeBit(d.beoLast)
	case a.beoTrailer.contains(pause), a.beoSpacer.contains(pause):
		// Structure, not data.
		return true
	}
	return false
}

// promoteShadow retries a failed pair under the shadow descriptor armed at
// start classification. Only the earliest data bits may pivot this way;
// later divergence is a malformed frame.
func (d *Decoder) promoteShadow(pulse, pause uint16) bool {
	if d.shadow == nil || d.bitIndex > 3 {
		return false
	}
	sh := d.shadow
	d.shadow = nil
	d.trace(TraceEvent{Kind: TracePivot, Protocol: d.activeTag(), Pivot: sh.tag})
	d.active = sh
	d.bitIndex = 0
	d.addrAcc = 0
	d.cmdAcc = 0
	d.raw[0] = 0
	d.raw[1] = 0
	d.bi = biphaseState{}
	d.rc5Ext = false
	return d.decodePair(pulse, pause)
}
