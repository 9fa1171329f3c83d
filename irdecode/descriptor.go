package irdecode

// descriptor is the runtime form of one timing table row: every duration
// converted to an integer tick window for the configured sample rate.
// Descriptors are immutable once built; a pivot swaps the active pointer,
// it never edits the table.
type descriptor struct {
	tag    ProtocolTag
	family family

	startPulse window
	startPause window

	pulse1 window
	pause1 window
	pulse0 window
	pause0 window

	// Biphase run windows for 1..3 consecutive half-bit units. unitTicks is
	// the nominal unit in fractional ticks, used by the run dividers; it
	// stays fractional because 275 us at 20 kHz is 5.5 ticks and rounding
	// it would drift over long runs.
	unit1     window
	unit2     window
	unit3     window
	unitTicks float64

	rcmmPause [4]window

	beoZero    window
	beoSame    window
	beoOne     window
	beoTrailer window
	beoSpacer  window

	addrOfs uint8
	addrEnd uint8
	cmdOfs  uint8
	cmdEnd  uint8

	completeLen uint8
	minLen      uint8

	flags descFlag

	repeats        uint8
	repeatGapTicks uint32

	timeoutTicks uint16
}

func (d *descriptor) lsb() bool     { return d.flags&flagLSBFirst != 0 }
func (d *descriptor) stopBit() bool { return d.flags&flagStopBit != 0 }

// matchUnits classifies a biphase run length as 1, 2 or 3 half-bit units.
// Returns 0 when the run fits none of the windows.
func (d *descriptor) matchUnits(ticks uint16) int {
	switch {
	case d.unit1.contains(ticks):
		return 1
	case d.unit2.contains(ticks):
		return 2
	case d.unit3.contains(ticks):
		return 3
	}
	return 0
}

// buildDescriptor expands one timing row at the given sample rate.
func buildDescriptor(tag ProtocolTag, rate uint32) descriptor {
	t := &timings[tag]
	d := descriptor{
		tag:         tag,
		family:      t.family,
		addrOfs:     t.addrOfs,
		addrEnd:     t.addrOfs + t.addrLen,
		cmdOfs:      t.cmdOfs,
		cmdEnd:      t.cmdOfs + t.cmdLen,
		completeLen: t.completeLen,
		minLen:      t.minLen,
		flags:       t.flags,
		repeats:     t.repeats,
	}
	if d.minLen == 0 {
		d.minLen = d.completeLen
	}
	if t.repeatGap > 0 {
		d.repeatGapTicks = ticks32For(t.repeatGap, rate)
	}
	timeout := frameTimeout
	if t.flags&flagLongTimeout != 0 {
		timeout = frameTimeoutLong
	}
	d.timeoutTicks = ticksFor(timeout, rate)

	if t.startPulse > 0 {
		d.startPulse = newWindow(t.startPulse, rate, t.startTol)
		d.startPause = newWindow(t.startPause, rate, t.startTol)
	}

	switch t.family {
	case famPulseDistance, famPulseWidth:
		d.pulse1 = newWindow(t.pulse1, rate, t.pulseTol)
		d.pause1 = newWindow(t.pause1, rate, t.pauseTol)
		d.pulse0 = newWindow(t.pulse0, rate, t.pulseTol)
		d.pause0 = newWindow(t.pause0, rate, t.pauseTol)
		if t.flags&flagStartIsData != 0 {
			// No dedicated start bit: the classifier matches the first data
			// pair directly.
			d.startPulse = window{Min: d.pulse0.Min, Max: d.pulse1.Max}
			d.startPause = window{Min: min16(d.pause0.Min, d.pause1.Min), Max: max16(d.pause0.Max, d.pause1.Max)}
		}
	case famBiphase:
		d.unitTicks = t.unit * float64(rate)
		d.unit1 = newWindow(t.unit, rate, t.unitTol)
		d.unit2 = newWindow(2*t.unit, rate, t.unitTol)
		d.unit3 = newWindow(3*t.unit, rate, t.unitTol)
		if t.startPulse == 0 {
			// RC5 style: the leading pulse is itself a biphase half-bit and
			// may span one or two units.
			d.startPulse = window{Min: d.unit1.Min, Max: d.unit2.Max}
			d.startPause = window{Min: d.unit1.Min, Max: d.unit2.Max}
		}
	case famSerial:
		d.unitTicks = t.unit * float64(rate)
		d.unit1 = newWindow(t.unit, rate, t.unitTol)
	case famRCMM:
		d.pulse1 = newWindow(t.pulse1, rate, t.pulseTol)
		for i, p := range rcmmPauses {
			d.rcmmPause[i] = newWindow(p, rate, t.pauseTol)
		}
	case famBeo:
		d.pulse1 = newWindow(t.pulse1, rate, t.pulseTol)
		d.beoZero = newWindow(beoPauseZero, rate, t.pauseTol)
		d.beoSame = newWindow(beoPauseSame, rate, t.pauseTol)
		d.beoOne = newWindow(beoPauseOne, rate, t.pauseTol)
		d.beoTrailer = newWindow(beoPauseTrailer, rate, t.pauseTol)
		d.beoSpacer = newWindow(beoPauseSpacer, rate, t.pauseTol)
	}
	return d
}

func min16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
