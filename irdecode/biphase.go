package irdecode

// biphaseState tracks the half-bit position of the Manchester decoder. Each
// bit occupies two half-bit units with a mid-bit transition; the level of
// the first half carries the value, per the active protocol's polarity.
type biphaseState struct {
	inSecondHalf  bool
	unitsIntoHalf uint8
	firstIsPulse  bool // level of the current bit's first half
	lastValue     uint8
}

// biphaseHalfWidth returns how many units one half of the bit at index
// occupies. The RC6 toggle bit at index 4 is double width; its RC6A form is
// triple width.
func (d *Decoder) biphaseHalfWidth() uint8 {
	idx := d.bitIndex
	if d.bi.inSecondHalf && idx > 0 {
		idx--
	}
	switch d.active.tag {
	case ProtoRC6:
		if idx == 4 {
			return 2
		}
	case ProtoRC6A:
		if idx == 4 {
			return 3
		}
	}
	return 1
}

// biphaseRun feeds one measured run (a pulse or a pause) into the half-bit
// clock, one unit at a time.
func (d *Decoder) biphaseRun(isPulse bool, ticks uint16) bool {
	n := d.active.matchUnits(ticks)
	if n == 0 {
		// Runs longer than three units only occur around the wide RC6/RC6A
		// toggle; fall back to dividing by the nominal unit.
		n = serialUnits(ticks, d.active.unitTicks)
		if n < 4 || n > 6 {
			return false
		}
	}
	for i := 0; i < n; i++ {
		if !d.biphaseUnit(isPulse) {
			return false
		}
	}
	return true
}

// biphaseUnit advances the half-bit clock by one unit of the given level.
func (d *Decoder) biphaseUnit(isPulse bool) bool {
	b := &d.bi
	width := d.biphaseHalfWidth()

	if !b.inSecondHalf {
		if b.unitsIntoHalf == 0 {
			b.firstIsPulse = isPulse
		} else if b.firstIsPulse != isPulse {
			return false // level flipped inside a half
		}
		b.unitsIntoHalf++
		if b.unitsIntoHalf < width {
			return true
		}
		// First half complete: the bit value is known now.
		v := uint8(0)
		if isPulse == (d.active.flags&flagFirstHalfOne != 0) {
			v = 1
		}
		b.lastValue = v
		b.inSecondHalf = true
		b.unitsIntoHalf = 0
		return d.storeBit(v)
	}

	// Second half: must be the opposite level for the same width.
	if isPulse == b.firstIsPulse {
		// The first half ran longer than the expected width. A pulse doing
		// that on the RC6 toggle announces the RC6A long toggle.
		if d.active.tag == ProtoRC6 && d.bitIndex == 5 && isPulse && b.unitsIntoHalf == 0 {
			d.setActive(ProtoRC6A)
			// The unit extends the already-complete first half to the RC6A
			// width; the bit value stands.
			return true
		}
		return false
	}
	b.unitsIntoHalf++
	if b.unitsIntoHalf >= width {
		b.inSecondHalf = false
		b.unitsIntoHalf = 0
	}
	return true
}
