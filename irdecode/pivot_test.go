package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNECShortFramePivotsToJVC(t *testing.T) {
	d := newTestDecoder(t)
	bits := lsbBits(0x5, 4)
	bits = append(bits, lsbBits(0x6A3, 12)...)
	b := &sig{}
	b.pulse(tks(9000)).pause(tks(4500))
	b.pulseDistanceBits(bits, tks(560), tks(1690), tks(560))
	b.pulse(tks(560))
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoJVC, frames[0].Protocol)
	assert.Equal(t, uint16(0x5), frames[0].Address)
	assert.Equal(t, uint32(0x6A3), frames[0].Command)
}

func TestNECPivotsToLGAir(t *testing.T) {
	d := newTestDecoder(t)
	addr, cmd := uint8(0x88), uint16(0x1234)
	sum := (cmd&0xF + cmd>>4&0xF + cmd>>8&0xF + cmd>>12&0xF) & 0xF
	bits := lsbBits(uint64(addr), 8)
	bits = append(bits, lsbBits(uint64(cmd), 16)...)
	bits = append(bits, lsbBits(uint64(sum), 4)...)
	b := &sig{}
	b.pulse(tks(9000)).pause(tks(4500))
	b.pulseDistanceBits(bits, tks(560), tks(1690), tks(560))
	b.pulse(tks(560))
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoLGAir, frames[0].Protocol)
	assert.Equal(t, uint16(0x88), frames[0].Address)
	assert.Equal(t, uint32(0x1234), frames[0].Command)
}

func TestNECSyncPausePivotsToNEC16(t *testing.T) {
	d := newTestDecoder(t)
	b := &sig{}
	b.pulse(tks(9000)).pause(tks(4500))
	b.pulseDistanceBits(lsbBits(0xA6, 8), tks(560), tks(1690), tks(560))
	b.pulse(tks(560)).pause(tks(4500)) // second sync
	b.pulseDistanceBits(lsbBits(0x3C, 8), tks(560), tks(1690), tks(560))
	b.pulse(tks(560))
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoNEC16, frames[0].Protocol)
	assert.Equal(t, uint16(0xA6), frames[0].Address)
	assert.Equal(t, uint32(0x3C), frames[0].Command)
}

func TestNEC42FullFrame(t *testing.T) {
	d := newTestDecoder(t)
	addr := uint32(0x15AA)
	cmd := uint32(0x5C)
	bits := lsbBits(uint64(addr), 13)
	bits = append(bits, lsbBits(uint64(^addr), 13)...)
	bits = append(bits, lsbBits(uint64(cmd), 8)...)
	bits = append(bits, lsbBits(uint64(^cmd), 8)...)
	b := &sig{}
	b.pulse(tks(9000)).pause(tks(4500))
	b.pulseDistanceBits(bits, tks(560), tks(1690), tks(560))
	b.pulse(tks(560))
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoNEC42, frames[0].Protocol)
	assert.Equal(t, uint16(addr), frames[0].Address)
	assert.Equal(t, cmd, frames[0].Command)
}

func TestNECComplementFailApple(t *testing.T) {
	d := newTestDecoder(t)
	bits := lsbBits(uint64(appleVendorAddr), 16)
	bits = append(bits, lsbBits(0x5E, 8)...)
	bits = append(bits, lsbBits(0xC1, 8)...) // not the complement
	b := necSamples(bits)
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoApple, frames[0].Protocol)
	assert.Equal(t, uint16(appleVendorAddr), frames[0].Address)
	assert.Equal(t, uint32(0x5E), frames[0].Command)
}

func TestNECComplementFailOnkyo(t *testing.T) {
	d := newTestDecoder(t)
	bits := lsbBits(0x3344, 16)
	bits = append(bits, lsbBits(0xBEEF&0xFFFF, 16)...)
	frames := run(d, necSamples(bits))
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoOnkyo, frames[0].Protocol)
	assert.Equal(t, uint16(0x3344), frames[0].Address)
	assert.Equal(t, uint32(0xBEEF), frames[0].Command)
}

func TestSamsung48Frame(t *testing.T) {
	cfg := Config{SampleRate: testRate, Command32: true}
	d, err := NewDecoder(cfg)
	require.NoError(t, err)
	payload := lsbBits(0xA55A0FF0, 32)
	frames := run(d, samsungFrame(0x0707, payload, false))
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoSamsung48, frames[0].Protocol)
	assert.Equal(t, uint16(0x0707), frames[0].Address)
	assert.Equal(t, uint32(0xA55A0FF0), frames[0].Command)
}

func TestSamsung48ShortSyncShrinksTo32(t *testing.T) {
	// A short sync pause first suggests the 48 bit variant; a frame that
	// stops after 16 payload bits is still SAMSG32.
	d := newTestDecoder(t)
	payload := lsbBits(0xFCE1, 16)
	frames := run(d, samsungFrame(0x0707, payload, false))
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoSamsung32, frames[0].Protocol)
	assert.Equal(t, uint32(0xFCE1), frames[0].Command)
}

func TestMatsushitaFullFrame(t *testing.T) {
	d := newTestDecoder(t)
	// 12 command bits then 12 address bits, LSB first.
	bits := lsbBits(0x321, 12)
	bits = append(bits, lsbBits(0xA5C, 12)...)
	frames := run(d, matsushitaFrame(bits))
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoMatsushita, frames[0].Protocol)
	assert.Equal(t, uint16(0xA5C), frames[0].Address)
	assert.Equal(t, uint32(0x321), frames[0].Command)
}

func TestMatsushitaPivotsToTechnics(t *testing.T) {
	d := newTestDecoder(t)
	half := uint32(0x2B5)
	bits := lsbBits(uint64(half), 11)
	bits = append(bits, lsbBits(uint64(^half&0x7FF), 11)...)
	frames := run(d, matsushitaFrame(bits))
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoTechnics, frames[0].Protocol)
	assert.Equal(t, half, frames[0].Command)
}

func TestRC6LongTogglePivotsToRC6A(t *testing.T) {
	d := newTestDecoder(t)
	b := &sig{}
	b.pulse(tks(2666)).pause(tks(889))
	bits := []uint8{1, 0, 0, 0, 1} // start, mode 000, long toggle
	bits = append(bits, msbBits(0x1234, 15)...)
	bits = append(bits, msbBits(0x9C, 8)...)
	bits = append(bits, msbBits(0x3D, 8)...)
	h := biphaseHalves(bits, true, func(i int) int {
		if i == 4 {
			return 3
		}
		return 1
	})
	b.renderHalves(h, 444.0*testRate/1e6)
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoRC6A, frames[0].Protocol)
	assert.Equal(t, uint16(0x9C), frames[0].Address)
	assert.Equal(t, uint32(0x3D), frames[0].Command)
}

func TestGrundigShortFramePivotsToIR60(t *testing.T) {
	d := newTestDecoder(t)
	b := &sig{}
	b.pulse(tks(528)).pause(tks(2639))
	bits := []uint8{1}
	bits = append(bits, msbBits(0x35, 6)...)
	b.renderHalves(biphaseHalves(bits, true, nil), 528.0*testRate/1e6)
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoIR60, frames[0].Protocol)
}

func TestGrundigLongFramePivotsToNokia(t *testing.T) {
	d := newTestDecoder(t)
	b := &sig{}
	b.pulse(tks(528)).pause(tks(2639))
	bits := []uint8{1}
	bits = append(bits, msbBits(0x6B, 8)...)  // command
	bits = append(bits, msbBits(0xC1, 8)...)  // address
	b.renderHalves(biphaseHalves(bits, true, nil), 528.0*testRate/1e6)
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoNokia, frames[0].Protocol)
	assert.Equal(t, uint16(0xC1), frames[0].Address)
	assert.Equal(t, uint32(0x6B), frames[0].Command)
}

func TestRCMMFrameLengths(t *testing.T) {
	var s ProtocolSet
	cfg := Config{SampleRate: testRate, Protocols: s.Set(ProtoRCMM32, ProtoRCMM24, ProtoRCMM12)}
	d, err := NewDecoder(cfg)
	require.NoError(t, err)

	cases := []struct {
		n    int
		tag  ProtocolTag
		addr uint16
		cmd  uint32
	}{
		{12, ProtoRCMM12, 0, 0xABC},
		{24, ProtoRCMM24, 0xABC, 0x123},
		{32, ProtoRCMM32, 0xABCD, 0x4321},
	}
	for _, tc := range cases {
		d.Reset()
		var bits []uint8
		switch tc.n {
		case 12:
			bits = msbBits(uint64(tc.cmd), 12)
		case 24:
			bits = append(msbBits(uint64(tc.addr), 12), msbBits(uint64(tc.cmd), 12)...)
		case 32:
			bits = append(msbBits(uint64(tc.addr), 16), msbBits(uint64(tc.cmd), 16)...)
		}
		frames := run(d, rcmmFrame(bits))
		require.Len(t, frames, 1, "length %d", tc.n)
		assert.Equal(t, tc.tag, frames[0].Protocol)
		assert.Equal(t, tc.addr, frames[0].Address)
		assert.Equal(t, tc.cmd, frames[0].Command)
	}
}

func TestRC5ShadowPromotesToFDC(t *testing.T) {
	var s ProtocolSet
	cfg := Config{SampleRate: testRate, Protocols: s.Set(ProtoRC5, ProtoFDC)}
	d, err := NewDecoder(cfg)
	require.NoError(t, err)

	addr, cmd := uint64(0x1234), uint64(0x6F5)
	bits := lsbBits(addr, 14)
	bits = append(bits, lsbBits(0, 6)...)
	bits = append(bits, lsbBits(cmd, 12)...)
	bits = append(bits, lsbBits(0, 8)...)
	frames := run(d, fdcFrame(bits))
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoFDC, frames[0].Protocol)
	assert.Equal(t, uint16(addr), frames[0].Address)
	assert.Equal(t, uint32(cmd), frames[0].Command)
}

func TestRuwidoExtendsToSiemens(t *testing.T) {
	var s ProtocolSet
	cfg := Config{SampleRate: testRate, Protocols: s.Set(ProtoRuwido, ProtoSiemens)}
	d, err := NewDecoder(cfg)
	require.NoError(t, err)

	b := &sig{}
	b.pulse(tks(595)).pause(tks(248))
	bits := []uint8{1}
	bits = append(bits, msbBits(0x4D3, 11)...)
	bits = append(bits, msbBits(0x2A9, 11)...)
	b.renderHalves(biphaseHalves(bits, true, nil), 275.0*testRate/1e6)
	frames := run(d, b)
	require.Len(t, frames, 1)
	assert.Equal(t, ProtoSiemens, frames[0].Protocol)
	assert.Equal(t, uint16(0x4D3), frames[0].Address)
	assert.Equal(t, uint32(0x2A9), frames[0].Command)
}
