package irdecode

// classifyStart matches the leading pulse+pause pair against every enabled
// protocol's start windows, in tag order. The first match selects the
// active descriptor; two ambiguous starts additionally arm a shadow.
func (d *Decoder) classifyStart(pulse, pause uint16) bool {
	// A JVC transmitter repeats frames with a shorter leader that the wide
	// NEC windows would swallow; test JVC first while a JVC key is held.
	if d.lastProto == ProtoJVC && d.gapAtStart < d.repeatWindowTicks {
		if d.tryStart(ProtoJVC, pulse, pause) {
			return true
		}
	}

	// NEC key-held repeat frame: start pulse with a half-length pause and
	// no payload.
	if nec := d.necBase(); nec != nil &&
		nec.startPulse.contains(pulse) && d.necRepeatPauseWin.contains(pause) {
		d.active = nec
		d.started = true
		d.repeatFrame = true
		d.trace(TraceEvent{Kind: TraceStartBit, Protocol: nec.tag})
		return true
	}

	for _, tag := range d.order {
		if d.tryStart(tag, pulse, pause) {
			return true
		}
	}
	return false
}

// necBase returns the descriptor NEC-family starts classify into: the NEC42
// superset when enabled, plain NEC otherwise.
func (d *Decoder) necBase() *descriptor {
	if d.enabled.Has(ProtoNEC42) {
		return &d.descs[ProtoNEC42]
	}
	if d.enabled.Has(ProtoNEC) {
		return &d.descs[ProtoNEC]
	}
	return nil
}

// classifyVia lists protocols whose frames classify through a base
// protocol's start bit whenever that base is enabled; they only answer the
// classifier directly when running without their base.
var classifyVia = map[ProtocolTag]ProtocolTag{
	ProtoNEC42:     ProtoNEC,
	ProtoApple:     ProtoNEC,
	ProtoOnkyo:     ProtoNEC,
	ProtoNEC16:     ProtoNEC,
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
}

// tryStart tests one candidate and, on success, initializes the per-frame
// machinery for its family.
func (d *Decoder) tryStart(tag ProtocolTag, pulse, pause uint16) bool {
	if !d.enabled.Has(tag) {
		return false
	}
	if base, ok := classifyVia[tag]; ok && d.enabled.Has(base) {
		return false
	}
	a := &d.descs[tag]
	if a.family == famSerial {
		return d.tryStartSerial(a, pulse, pause)
	}
	if !a.startPulse.contains(pulse) || !a.startPause.contains(pause) {
		return false
	}

	switch {
	case tag == ProtoRC5 || tag == ProtoS100:
		if !d.tryStartRC5(a, pulse, pause) {
			return false
		}
	case tag == ProtoNEC:
		a = d.necBase()
		d.active = a
		d.started = true
	case a.flags&flagStartIsData != 0:
		d.active = a
		d.started = true
		if !d.decodePair(pulse, pause) {
			d.active = nil
			d.started = false
			return false
		}
	default:
		d.active = a
		d.started = true
	}
	d.trace(TraceEvent{Kind: TraceStartBit, Protocol: a.tag, Shadow: d.shadowTag()})
	return true
}

func (d *Decoder) shadowTag() ProtocolTag {
	if d.shadow == nil {
		return ProtoUnknown
	}
	return d.shadow.tag
}

// tryStartRC5 handles the biphase start of RC5 and S100, where the leading
// pulse is itself a half-bit and spans one or two units. The one-unit case
// means the second start bit ("field") is set; the two-unit case is the
// long start of the extended command range and pre-loads command bit 6.
func (d *Decoder) tryStartRC5(a *descriptor, pulse, pause uint16) bool {
	np := a.matchUnits(pulse)
	ns := a.matchUnits(pause)
	if np == 0 || ns == 0 || np > 2 || ns > 2 {
		return false
	}
	if np == 1 && ns == 2 {
		// A one-unit start pulse pins the field bit high, which makes a
		// two-unit pause unreachable.
		return false
	}
	d.active = a
	d.started = true
	d.storeBit(1) // first start bit, always one
	if np == 1 {
		// Field bit high; the pause is its first half.
		d.storeBit(1)
		d.bi = biphaseState{inSecondHalf: true, firstIsPulse: false, lastValue: 1}
	} else {
		// Long start: field bit low, extended command range.
		d.rc5Ext = true
		d.storeBit(0)
		if ns == 1 {
			d.bi = biphaseState{}
		} else {
			// The two-unit pause carries the toggle's first half as well.
			d.storeBit(1)
			d.bi = biphaseState{inSecondHalf: true, firstIsPulse: false, lastValue: 1}
		}
	}
	// The same pair may satisfy the FDC or RCCAR start windows; arm the
	// better fit as a shadow and let the first data bit disambiguate.
	if a.tag == ProtoRC5 {
		for _, sh := range []ProtocolTag{ProtoFDC, ProtoRCCar} {
			s := &d.descs[sh]
			if d.enabled.Has(sh) && s.startPulse.contains(pulse) && s.startPause.contains(pause) {
				d.shadow = s
				break
			}
		}
	}
	return true
}

// tryStartSerial handles the Netbox start: a marker pulse of three unit
// periods, optionally extended by leading one-bits, followed by the first
// zero-bit run.
func (d *Decoder) tryStartSerial(a *descriptor, pulse, pause uint16) bool {
	np := serialUnits(pulse, a.unitTicks)
	if np < 3 {
		return false
	}
	ms := serialUnits(pause, a.unitTicks)
	if ms < 1 {
		return false
	}
	d.active = a
	d.started = true
	for i := 3; i < np; i++ {
		d.storeBit(1)
	}
	if !d.serialRun(false, pause) {
		d.clearFrame()
		return false
	}
	d.trace(TraceEvent{Kind: TraceStartBit, Protocol: a.tag})
	return true
}
