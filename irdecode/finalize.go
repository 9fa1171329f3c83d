package irdecode

import "math/bits"

// acp24CommandBits lists the frame positions whose values assemble the
// reported ACP24 command, low bit first. The 70-bit frame scatters the key
// code across the state blocks; everything else is air-conditioner state
// the engine does not interpret.
var acp24CommandBits = [16]uint16{
	6, 7, 8, 9,
	16, 17, 18, 19,
	34, 35, 36, 37,
	58, 59, 60, 61,
}

// necFamily reports whether a tag counts as the NEC family for repeat-frame
// purposes.
func necFamily(tag ProtocolTag) bool {
	switch tag {
	case ProtoNEC, ProtoNEC16, ProtoNEC42, ProtoApple, ProtoOnkyo, ProtoLGAir:
		return true
	}
	return false
}

// endFrame resolves the collected bits into a frame, applying the
// bit-count pivots, the per-protocol integrity checks and the repeat
// filter. Called once per frame from the timeout handler.
func (d *Decoder) endFrame() {
	a := d.active
	n := d.bitIndex
	f := Frame{
		Protocol:    a.tag,
		StartSample: d.frameStart,
		EndSample:   d.sampleIndex,
	}
	outcome := OutcomeFrame

	switch {
	case necFamily(a.tag):
		outcome = d.finalizeNECFamily(&f, n)
	case a.tag == ProtoSamsung, a.tag == ProtoSamsung32, a.tag == ProtoSamsung48:
		outcome = d.finalizeSamsung(&f, n)
	case a.tag == ProtoMatsushita, a.tag == ProtoTechnics:
		outcome = d.finalizeMatsushita(&f, n)
	case a.tag == ProtoKaseikyo:
		outcome = d.finalizeKaseikyo(&f, n)
	case a.tag == ProtoGrundig, a.tag == ProtoNokia, a.tag == ProtoIR60:
		outcome = d.finalizeGrundig(&f, n)
	case a.tag == ProtoRuwido, a.tag == ProtoSiemens:
		outcome = d.finalizeRuwido(&f, n)
	case a.tag == ProtoRCMM32, a.tag == ProtoRCMM24, a.tag == ProtoRCMM12:
		outcome = d.finalizeRCMM(&f, n)
	case a.tag == ProtoRC5, a.tag == ProtoS100:
		outcome = d.finalizeRC5(&f, n)
	case a.tag == ProtoRC6, a.tag == ProtoRC6A:
		outcome = d.finalizeRC6(&f, n)
	case a.tag == ProtoOrtek:
		outcome = d.finalizeOrtek(&f, n)
	case a.tag == ProtoBose:
		outcome = d.finalizeBose(&f, n)
	case a.tag == ProtoLego:
		outcome = d.finalizeLego(&f, n)
	case a.tag == ProtoMitsuHeavy:
		outcome = d.finalizeMitsuHeavy(&f, n)
	case a.tag == ProtoACP24:
		outcome = d.finalizeACP24(&f, n)
	case a.tag == ProtoMerlin:
		outcome = d.finalizeMerlin(&f, n)
	default:
		outcome = d.finalizeGeneric(&f, n)
	}

	if outcome != OutcomeFrame {
		d.trace(TraceEvent{Kind: TraceFinalize, Protocol: f.Protocol, Outcome: outcome})
		return
	}
	d.deliver(f)
}

func (d *Decoder) finalizeGeneric(f *Frame, n uint16) FinalizeOutcome {
	a := d.active
	if n < uint16(a.minLen) || n > uint16(a.completeLen) {
		return OutcomeTimingMiss
	}
	f.Address = d.addrAcc
	f.Command = d.clampCmd(d.cmdAcc)
	return OutcomeFrame
}

func (d *Decoder) clampCmd(c uint32) uint32 {
	if d.cmd32 {
		return c
	}
	return c & 0xFFFF
}

func (d *Decoder) finalizeNECFamily(f *Frame, n uint16) FinalizeOutcome {
	switch {
	case d.active.tag == ProtoNEC16 && n == 17:
		f.Protocol = ProtoNEC16
		f.Address = uint16(d.rawBits(0, 8))
		f.Command = d.rawBits(9, 17)
		return OutcomeFrame

	case n == 16 || n == 17:
		if !d.reachable(ProtoJVC) {
			return OutcomeTimingMiss
		}
		f.Protocol = ProtoJVC
		f.Address = uint16(d.rawBits(0, 4))
		f.Command = d.rawBits(4, 16)
		d.tracePivot(ProtoJVC)
		return OutcomeFrame

	case n == 28 || n == 29:
		if !d.reachable(ProtoLGAir) {
			return OutcomeTimingMiss
		}
		cmd := d.rawBits(8, 24)
		sum := (cmd & 0xF) + (cmd >> 4 & 0xF) + (cmd >> 8 & 0xF) + (cmd >> 12 & 0xF)
		if sum&0xF != d.rawBits(24, 28) {
			return OutcomeIntegrityFail
		}
		f.Protocol = ProtoLGAir
		f.Address = uint16(d.rawBits(0, 8))
		f.Command = cmd
		d.tracePivot(ProtoLGAir)
		return OutcomeFrame

	case n == 32 || n == 33:
		addr := uint16(d.rawBits(0, 16))
		c := d.rawBits(16, 32)
		lo, hi := c&0xFF, c>>8
		switch {
		case hi == ^lo&0xFF:
			f.Protocol = ProtoNEC
			f.Address = addr
			f.Command = lo
		case addr == appleVendorAddr && d.reachable(ProtoApple):
			f.Protocol = ProtoApple
			f.Address = addr
			f.Command = lo
			d.tracePivot(ProtoApple)
		case d.reachable(ProtoOnkyo):
			f.Protocol = ProtoOnkyo
			f.Address = addr
			f.Command = c
			d.tracePivot(ProtoOnkyo)
		default:
			return OutcomeIntegrityFail
		}
		return OutcomeFrame

	case n == 42:
		addr := d.rawBits(0, 13)
		if d.rawBits(13, 26) != ^addr&0x1FFF {
			return OutcomeIntegrityFail
		}
		cmd := d.rawBits(26, 34)
		if d.rawBits(34, 42) != ^cmd&0xFF {
			return OutcomeIntegrityFail
		}
		f.Protocol = ProtoNEC42
		f.Address = uint16(addr)
		f.Command = cmd
		return OutcomeFrame
	}
	return OutcomeTimingMiss
}

func (d *Decoder) finalizeSamsung(f *Frame, n uint16) FinalizeOutcome {
	switch {
	case d.active.tag == ProtoSamsung48 && n == 49:
		f.Protocol = ProtoSamsung48
		f.Address = uint16(d.rawBits(0, 16))
		if d.cmd32 {
			f.Command = d.rawBits(17, 49)
		} else {
			f.Command = d.rawBits(17, 33)
		}
		return OutcomeFrame
	case n == 33:
		// A 32 payload-bit frame is SAMSG32 even when the sync pause first
		// suggested the long variant.
		f.Protocol = ProtoSamsung32
		f.Address = uint16(d.rawBits(0, 16))
		f.Command = d.rawBits(17, 33)
		if d.active.tag == ProtoSamsung48 {
			d.tracePivot(ProtoSamsung32)
		}
		return OutcomeFrame
	}
	return OutcomeTimingMiss
}

func (d *Decoder) finalizeMatsushita(f *Frame, n uint16) FinalizeOutcome {
	switch n {
	case 24:
		if d.active.tag != ProtoMatsushita {
			return OutcomeTimingMiss
		}
		f.Protocol = ProtoMatsushita
		f.Address = d.addrAcc
		f.Command = d.cmdAcc
		return OutcomeFrame
	case 22:
		// A 22 bit frame whose second half inverts the first is Technics.
		half := d.rawBits(0, 11)
		if d.rawBits(11, 22) != ^half&0x7FF {
			return OutcomePivotFail
		}
		if !d.reachable(ProtoTechnics) {
			return OutcomeTimingMiss
		}
		f.Protocol = ProtoTechnics
		f.Address = 0
		f.Command = half
		d.tracePivot(ProtoTechnics)
		return OutcomeFrame
	}
	return OutcomeTimingMiss
}

func (d *Decoder) finalizeKaseikyo(f *Frame, n uint16) FinalizeOutcome {
	if n != 48 {
		return OutcomeTimingMiss
	}
	var b [6]uint32
	for i := range b {
		b[i] = d.rawBits(uint16(8*i), uint16(8*i+8))
	}
	vendorParity := (b[0] & 0xF) ^ (b[0] >> 4) ^ (b[1] & 0xF) ^ (b[1] >> 4)
	if vendorParity&0xF != b[2]&0xF {
		return OutcomeIntegrityFail
	}
	if b[2]^b[3]^b[4] != b[5] {
		return OutcomeIntegrityFail
	}
	f.Protocol = ProtoKaseikyo
	f.Address = d.addrAcc
	f.Command = d.cmdAcc
	f.Flags = uint8(d.rawBits(24, 28)) << 4 // genre-2 bits
	return OutcomeFrame
}

func (d *Decoder) finalizeGrundig(f *Frame, n uint16) FinalizeOutcome {
	switch {
	case n >= 5 && n <= 8:
		if !d.reachable(ProtoIR60) {
			return OutcomeTimingMiss
		}
		f.Protocol = ProtoIR60
		f.Address = 0
		f.Command = d.rawBitsMSB(1, n) & 0x7F
		if d.active.tag != ProtoIR60 {
			d.tracePivot(ProtoIR60)
		}
		return OutcomeFrame
	case n == 10:
		cmd := d.rawBitsMSB(1, 10)
		if cmd == 0x1FF {
			return OutcomeLeadIn // all-ones magic frame preceding the payload
		}
		f.Protocol = ProtoGrundig
		f.Address = 0
		f.Command = cmd
		return OutcomeFrame
	case n == 17:
		if !d.reachable(ProtoNokia) {
			return OutcomeTimingMiss
		}
		addr := uint16(d.rawBitsMSB(9, 17))
		cmd := d.rawBitsMSB(1, 9)
		if addr == nokiaLeadInAddr && cmd == nokiaLeadInCmd {
			return OutcomeLeadIn
		}
		f.Protocol = ProtoNokia
		f.Address = addr
		f.Command = cmd
		if d.active.tag != ProtoNokia {
			d.tracePivot(ProtoNokia)
		}
		return OutcomeFrame
	}
	return OutcomeTimingMiss
}

func (d *Decoder) finalizeRuwido(f *Frame, n uint16) FinalizeOutcome {
	switch n {
	case 15:
		f.Protocol = ProtoRuwido
		f.Address = uint16(d.rawBitsMSB(1, 10))
		f.Command = d.rawBitsMSB(10, 15)
		return OutcomeFrame
	case 23:
		if !d.reachable(ProtoSiemens) {
			return OutcomeTimingMiss
		}
		f.Protocol = ProtoSiemens
		f.Address = uint16(d.rawBitsMSB(1, 12))
		f.Command = d.rawBitsMSB(12, 23)
		if d.active.tag != ProtoSiemens {
			d.tracePivot(ProtoSiemens)
		}
		return OutcomeFrame
	}
	return OutcomeTimingMiss
}

func (d *Decoder) finalizeRCMM(f *Frame, n uint16) FinalizeOutcome {
	switch n {
	case 12:
		f.Protocol = ProtoRCMM12
		f.Address = 0
		f.Command = d.rawBitsMSB(0, 12)
	case 24:
		f.Protocol = ProtoRCMM24
		f.Address = uint16(d.rawBitsMSB(0, 12))
		f.Command = d.rawBitsMSB(12, 24)
	case 32:
		f.Protocol = ProtoRCMM32
		f.Address = uint16(d.rawBitsMSB(0, 16))
		f.Command = d.rawBitsMSB(16, 32)
	default:
		return OutcomeTimingMiss
	}
	if f.Protocol != d.active.tag {
		if !d.reachable(f.Protocol) {
			return OutcomeTimingMiss
		}
		d.tracePivot(f.Protocol)
	}
	return OutcomeFrame
}

func (d *Decoder) finalizeRC5(f *Frame, n uint16) FinalizeOutcome {
	if n != uint16(d.active.completeLen) {
		return OutcomeTimingMiss
	}
	f.Protocol = d.active.tag
	f.Address = d.addrAcc
	f.Command = d.cmdAcc
	if d.rc5Ext {
		f.Command |= 0x40
	}
	return OutcomeFrame
}

func (d *Decoder) finalizeRC6(f *Frame, n uint16) FinalizeOutcome {
	if n != uint16(d.active.completeLen) {
		return OutcomeTimingMiss
	}
	if d.rawBits(0, 1) != 1 {
		return OutcomeIntegrityFail // leading biphase bit must be one
	}
	f.Protocol = d.active.tag
	f.Address = d.addrAcc
	f.Command = d.cmdAcc
	return OutcomeFrame
}

func (d *Decoder) finalizeOrtek(f *Frame, n uint16) FinalizeOutcome {
	if n != 17 {
		return OutcomeTimingMiss
	}
	if bits.OnesCount32(d.rawBits(0, 15))&1 != 0 {
		return OutcomeIntegrityFail // even parity over the payload and bit 14
	}
	f.Protocol = ProtoOrtek
	f.Address = d.addrAcc
	f.Command = d.cmdAcc
	if d.rawBitsMSB(15, 17) != 0 {
		// Frame counter past zero: by-design retransmission.
		return OutcomeSuppressedRepeat
	}
	return OutcomeFrame
}

func (d *Decoder) finalizeBose(f *Frame, n uint16) FinalizeOutcome {
	if n != 16 {
		return OutcomeTimingMiss
	}
	lo := d.rawBits(0, 8)
	if d.rawBits(8, 16) != ^lo&0xFF {
		return OutcomeIntegrityFail
	}
	f.Protocol = ProtoBose
	f.Address = 0
	f.Command = lo
	return OutcomeFrame
}

func (d *Decoder) finalizeLego(f *Frame, n uint16) FinalizeOutcome {
	if n != 16 {
		return OutcomeTimingMiss
	}
	data := d.rawBitsMSB(0, 12)
	crc := 0xF ^ (data >> 8 & 0xF) ^ (data >> 4 & 0xF) ^ (data & 0xF)
	if d.rawBitsMSB(12, 16) != crc {
		return OutcomeIntegrityFail
	}
	f.Protocol = ProtoLego
	f.Address = 0
	f.Command = data
	return OutcomeFrame
}

func (d *Decoder) finalizeMitsuHeavy(f *Frame, n uint16) FinalizeOutcome {
	if n != 88 {
		return OutcomeTimingMiss
	}
	b1, b2 := d.rawBits(8, 16), d.rawBits(16, 24)
	b3, b4 := d.rawBits(24, 32), d.rawBits(32, 40)
	if b2 != ^b1&0xFF || b4 != ^b3&0xFF {
		return OutcomeIntegrityFail
	}
	f.Protocol = ProtoMitsuHeavy
	f.Address = uint16(d.rawBits(0, 8))
	f.Command = b1
	return OutcomeFrame
}

func (d *Decoder) finalizeACP24(f *Frame, n uint16) FinalizeOutcome {
	if n != 70 {
		return OutcomeTimingMiss
	}
	var cmd uint32
	for i, pos := range acp24CommandBits {
		if d.raw[pos>>6]&(1<<(pos&63)) != 0 {
			cmd |= 1 << i
		}
	}
	f.Protocol = ProtoACP24
	f.Address = 0
	f.Command = cmd
	return OutcomeFrame
}

func (d *Decoder) finalizeMerlin(f *Frame, n uint16) FinalizeOutcome {
	a := d.active
	if n < uint16(a.minLen) || n > uint16(a.completeLen) || n <= 9 {
		return OutcomeTimingMiss
	}
	if n-9 > 32 {
		return OutcomeTimingMiss // command register holds 32 bits
	}
	f.Protocol = ProtoMerlin
	f.Address = uint16(d.rawBitsMSB(1, 9))
	f.Command = d.rawBitsMSB(9, n)
	f.Flags = uint8((n-9+7)/8) << 4 // command length in bytes
	return OutcomeFrame
}

// reachable reports whether a pivot destination may be used: either it is
// enabled itself, or its classification base is.
func (d *Decoder) reachable(tag ProtocolTag) bool {
	if d.enabled.Has(tag) {
		return true
	}
	if base, ok := classifyVia[tag]; ok {
		return d.enabled.Has(base)
	}
	return false
}

func (d *Decoder) tracePivot(to ProtocolTag) {
	d.trace(TraceEvent{Kind: TracePivot, Protocol: d.activeTag(), Pivot: to})
}

// deliver runs the repeat filter and latches the frame.
func (d *Decoder) deliver(f Frame) {
	// Denon transmits each key as a frame followed ~45 ms later by one with
	// the bitwise inverted command; only the confirmed pair is reported.
	if f.Protocol == ProtoDenon {
		if p := d.denonPending; p != nil &&
			d.gapAtStart < d.denonWindowTicks &&
			f.Address == p.Address &&
			f.Command == ^p.Command&0x3FF {
			out := *p
			d.denonPending = nil
			d.latch(out)
			return
		}
		held := f
		d.denonPending = &held
		d.gapTicks = 0
		d.trace(TraceEvent{Kind: TraceFinalize, Protocol: f.Protocol, Outcome: OutcomeDenonHeld})
		return
	}

	same := f.Protocol == d.lastProto && f.Address == d.lastAddr && f.Command == d.lastCmd
	rep := d.descs[f.Protocol].repeats
	if rep > 1 && same && d.gapAtStart < d.descs[f.Protocol].repeatGapTicks {
		d.burstCount++
		if d.burstCount < rep {
			// By-design retransmission of the frame just reported.
			d.gapTicks = 0
			d.trace(TraceEvent{Kind: TraceFinalize, Protocol: f.Protocol, Outcome: OutcomeSuppressedRepeat})
			return
		}
	}
	d.burstCount = 0
	if same && d.gapAtStart < d.repeatWindowTicks {
		f.Flags |= FlagRepetition
	}
	d.latch(f)
}

// latch stores the frame for GetData and updates the cross-frame state.
func (d *Decoder) latch(f Frame) {
	d.lastProto = f.Protocol
	d.lastAddr = f.Address
	d.lastCmd = f.Command
	d.gapTicks = 0
	d.pending = f
	d.detected = true
	d.trace(TraceEvent{Kind: TraceFinalize, Protocol: f.Protocol, Outcome: OutcomeFrame})
}

// finalizeRepeatFrame handles the payload-free NEC repeat frame.
func (d *Decoder) finalizeRepeatFrame() {
	if !necFamily(d.lastProto) || d.gapAtStart >= d.repeatWindowTicks {
		d.trace(TraceEvent{Kind: TraceFinalize, Protocol: ProtoNEC, Outcome: OutcomeTimingMiss})
		return
	}
	f := Frame{
		Protocol:    d.lastProto,
		Address:     d.lastAddr,
		Command:     d.lastCmd,
		Flags:       FlagRepetition,
		StartSample: d.frameStart,
		EndSample:   d.sampleIndex,
	}
	d.latch(f)
}
