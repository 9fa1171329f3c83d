package irdecode

import "math"

// Test-side signal builder: level 0 is carrier (pulse), 1 is idle. Frames
// are synthesized from the same nominal durations the timing table uses so
// encoder and decoder agree on the window math.

const testRate = 20000

type sig struct {
	s []uint8
}

func (b *sig) pulse(n int) *sig {
	for i := 0; i < n; i++ {
		b.s = append(b.s, 0)
	}
	return b
}

func (b *sig) pause(n int) *sig {
	for i := 0; i < n; i++ {
		b.s = append(b.s, 1)
	}
	return b
}

func (b *sig) gapMS(ms float64) *sig {
	return b.pause(int(ms * testRate / 1000))
}

// tks converts microseconds to whole ticks at the test rate.
func tks(us float64) int {
	return int(math.Round(us * testRate / 1e6))
}

// lsbBits expands the low n bits of v, least significant first.
func lsbBits(v uint64, n int) []uint8 {
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = uint8(v >> i & 1)
	}
	return out
}

// msbBits expands the low n bits of v, most significant first.
func msbBits(v uint64, n int) []uint8 {
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = uint8(v >> (n - 1 - i) & 1)
	}
	return out
}

// pulseDistanceBits appends data bits as a fixed pulse and a value-coded pause.
func (b *sig) pulseDistanceBits(bits []uint8, pulse, pause1, pause0 int) *sig {
	for _, v := range bits {
		b.pulse(pulse)
		if v != 0 {
			b.pause(pause1)
		} else {
			b.pause(pause0)
		}
	}
	return b
}

// renderHalves emits a biphase half-bit sequence, merging equal-level runs
// and keeping cumulative rounding so fractional half-bit widths do not
// drift. The sequence must begin with a pulse half.
func (b *sig) renderHalves(halves []bool, halfTicks float64) *sig {
	emitted := 0
	for i := 0; i < len(halves); {
		j := i
		for j < len(halves) && halves[j] == halves[i] {
			j++
		}
		ticks := int(math.Round(float64(j)*halfTicks)) - emitted
		if halves[i] {
			b.pulse(ticks)
		} else {
			b.pause(ticks)
		}
		emitted += ticks
		i = j
	}
	return b
}

// biphaseHalves encodes bits into half-bit levels. firstHalfOne selects the
// polarity; width gives the half width in units for each bit (1 for all but
// the RC6 toggle).
func biphaseHalves(bits []uint8, firstHalfOne bool, width func(i int) int) []bool {
	var h []bool
	for i, v := range bits {
		first := (v == 1) == firstHalfOne
		w := 1
		if width != nil {
			w = width(i)
		}
		for k := 0; k < w; k++ {
			h = append(h, first)
		}
		for k := 0; k < w; k++ {
			h = append(h, !first)
		}
	}
	return h
}

// necSamples builds one NEC-timing frame from 32 payload bits.
func necSamples(bits []uint8) *sig {
	b := &sig{}
	b.pulse(tks(9000)).pause(tks(4500))
	b.pulseDistanceBits(bits, tks(560), tks(1690), tks(560))
	b.pulse(tks(560)) // stop
	return b
}

// necFrame is the standard 32 bit layout: 16 bit address, command byte and
// its complement.
func necFrame(addr uint16, cmd uint8) *sig {
	bits := lsbBits(uint64(addr), 16)
	bits = append(bits, lsbBits(uint64(cmd), 8)...)
	bits = append(bits, lsbBits(uint64(^cmd), 8)...)
	return necSamples(bits)
}

// necRepeatFrame is the payload-free key-held frame.
func necRepeatFrame() *sig {
	b := &sig{}
	b.pulse(tks(9000)).pause(tks(2250)).pulse(tks(560))
	return b
}

// samsungFrame builds a Samsung frame: 16 address bits, the sync bit, and
// the given payload bits. longSync selects the 32 bit variant's sync pause.
func samsungFrame(addr uint16, payload []uint8, longSync bool) *sig {
	b := &sig{}
	b.pulse(tks(4500)).pause(tks(4500))
	b.pulseDistanceBits(lsbBits(uint64(addr), 16), tks(550), tks(1650), tks(550))
	b.pulse(tks(550))
	if longSync {
		b.pause(tks(1500))
	} else {
		b.pause(tks(550))
	}
	b.pulseDistanceBits(payload, tks(550), tks(1650), tks(550))
	b.pulse(tks(550)) // stop
	return b
}

// rc5Frame encodes start, field, toggle, 5 address and 6 command bits.
func rc5Frame(addr uint16, cmd uint16, toggle, field uint8) *sig {
	half := 889.0 * testRate / 1e6
	var h []bool
	h = append(h, true) // second half of the leading start bit
	bits := []uint8{field, toggle}
	bits = append(bits, msbBits(uint64(addr), 5)...)
	bits = append(bits, msbBits(uint64(cmd), 6)...)
	// RC5 polarity: a one is idle first, carrier second.
	h = append(h, biphaseHalves(bits, false, nil)...)
	b := &sig{}
	return b.renderHalves(h, half)
}

// rc6Frame encodes leader, start bit, 3 mode bits, toggle (double width)
// and 8+8 payload, mode 0.
func rc6Frame(addr, cmd uint8, toggle uint8) *sig {
	b := &sig{}
	b.pulse(tks(2666)).pause(tks(889))
	bits := []uint8{1, 0, 0, 0, toggle}
	bits = append(bits, msbBits(uint64(addr), 8)...)
	bits = append(bits, msbBits(uint64(cmd), 8)...)
	h := biphaseHalves(bits, true, func(i int) int {
		if i == 4 {
			return 2
		}
		return 1
	})
	half := 444.0 * testRate / 1e6
	return b.renderHalves(h, half)
}

// kaseikyoFrame encodes the six byte frame with valid vendor parity and
// byte checksum unless corrupt is set, which flips one bit in the last byte.
func kaseikyoFrame(vendor uint16, genre1, genre2 uint8, cmd uint16, corrupt bool) *sig {
	b0 := uint8(vendor)
	b1 := uint8(vendor >> 8)
	parity := (b0 & 0xF) ^ (b0 >> 4) ^ (b1 & 0xF) ^ (b1 >> 4)
	b2 := genre1<<4 | parity
	b3 := uint8(cmd&0xF)<<4 | genre2
	b4 := uint8(cmd >> 4)
	b5 := b2 ^ b3 ^ b4
	if corrupt {
		b5 ^= 0x10
	}
	var bits []uint8
	for _, by := range []uint8{b0, b1, b2, b3, b4, b5} {
		bits = append(bits, lsbBits(uint64(by), 8)...)
	}
	b := &sig{}
	b.pulse(tks(3380)).pause(tks(1690))
	b.pulseDistanceBits(bits, tks(423), tks(1269), tks(423))
	b.pulse(tks(423))
	return b
}

// sircsFrame encodes a 12 bit SIRCS frame (7 command, 5 device bits).
func sircsFrame(bits []uint8) *sig {
	b := &sig{}
	b.pulse(tks(2400)).pause(tks(600))
	for _, v := range bits {
		if v != 0 {
			b.pulse(tks(1200))
		} else {
			b.pulse(tks(600))
		}
		b.pause(tks(600))
	}
	return b
}

// denonFrame encodes the startless 15 bit Denon frame.
func denonFrame(addr uint8, cmd uint16) *sig {
	bits := lsbBits(uint64(addr), 5)
	bits = append(bits, lsbBits(uint64(cmd), 10)...)
	b := &sig{}
	b.pulseDistanceBits(bits, tks(310), tks(1780), tks(745))
	b.pulse(tks(310))
	return b
}

// nubertFrame encodes 10 pulse-width bits plus the stop pulse.
func nubertFrame(cmd uint16) *sig {
	b := &sig{}
	b.pulse(tks(1340)).pause(tks(340))
	for _, v := range msbBits(uint64(cmd), 10) {
		if v != 0 {
			b.pulse(tks(1340)).pause(tks(340))
		} else {
			b.pulse(tks(500)).pause(tks(1300))
		}
	}
	b.pulse(tks(500))
	return b
}

// grundigFrame encodes the pre-bit plus nine command bits.
func grundigFrame(cmd uint16) *sig {
	b := &sig{}
	b.pulse(tks(528)).pause(tks(2639))
	bits := []uint8{1}
	bits = append(bits, msbBits(uint64(cmd), 9)...)
	half := 528.0 * testRate / 1e6
	return b.renderHalves(biphaseHalves(bits, true, nil), half)
}

// matsushitaFrame encodes raw bits with Matsushita timing.
func matsushitaFrame(bits []uint8) *sig {
	b := &sig{}
	b.pulse(tks(3488)).pause(tks(3488))
	b.pulseDistanceBits(bits, tks(872), tks(2616), tks(872))
	b.pulse(tks(872))
	return b
}

// rcmmFrame encodes symbol pairs: two bits per fixed pulse + coded pause.
func rcmmFrame(bits []uint8) *sig {
	b := &sig{}
	b.pulse(tks(416)).pause(tks(277))
	pauses := [4]int{tks(277), tks(444), tks(611), tks(777)}
	for i := 0; i+1 < len(bits); i += 2 {
		b.pulse(tks(166))
		b.pause(pauses[bits[i]<<1|bits[i+1]])
	}
	b.pulse(tks(166))
	return b
}

// fdcFrame starts with a pair that satisfies both the RC5 and the FDC start
// windows; the first data bit disambiguates.
func fdcFrame(bits []uint8) *sig {
	b := &sig{}
	b.pulse(tks(2085)).pause(tks(966))
	b.pulseDistanceBits(bits, tks(216), tks(760), tks(220))
	b.pulse(tks(216))
	return b
}
