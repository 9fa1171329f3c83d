package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolNameTable(t *testing.T) {
	// The numeric ordering is wire format; spot check the anchors.
	assert.Equal(t, "UNKNOWN", ProtocolName(ProtoUnknown))
	assert.Equal(t, "SIRCS", ProtocolName(ProtoSIRCS))
	assert.Equal(t, "NEC", ProtocolName(ProtoNEC))
	assert.Equal(t, "SAMSG32", ProtocolName(ProtoSamsung32))
	assert.Equal(t, "BANG OLU", ProtocolName(ProtoBangOlufsen))
	assert.Equal(t, "MITSU_HEAVY", ProtocolName(ProtoMitsuHeavy))
	assert.Equal(t, "RADIO1", ProtocolName(ProtoRadio1))
	assert.Equal(t, "UNKNOWN", ProtocolName(protocolCount))
	assert.Equal(t, 58, int(protocolCount))
}

func TestProtocolNamesUnique(t *testing.T) {
	seen := map[string]ProtocolTag{}
	for tag := ProtocolTag(0); tag < protocolCount; tag++ {
		name := ProtocolName(tag)
		assert.NotEmpty(t, name)
		prev, dup := seen[name]
		assert.False(t, dup, "%s used by %d and %d", name, prev, tag)
		seen[name] = tag
	}
}

func TestParseProtocol(t *testing.T) {
	tag, ok := ParseProtocol("KASEIKYO")
	assert.True(t, ok)
	assert.Equal(t, ProtoKaseikyo, tag)

	_, ok = ParseProtocol("kaseikyo")
	assert.False(t, ok)
}

func TestProtocolSet(t *testing.T) {
	var s ProtocolSet
	s = s.Set(ProtoNEC, ProtoRC5)
	assert.True(t, s.Has(ProtoNEC))
	assert.False(t, s.Has(ProtoRC6))
	s = s.Clear(ProtoNEC)
	assert.False(t, s.Has(ProtoNEC))
	assert.Equal(t, []ProtocolTag{ProtoRC5}, s.Tags())
}

func TestTimingTableComplete(t *testing.T) {
	for tag := ProtoSIRCS; tag < protocolCount; tag++ {
		spec := &timings[tag]
		assert.NotEqual(t, famNone, spec.family, "missing timing row for %s", tag)
		assert.NotZero(t, spec.completeLen, "missing frame length for %s", tag)
	}
}

func TestDescriptorLayoutInvariant(t *testing.T) {
	for tag := ProtoSIRCS; tag < protocolCount; tag++ {
		d := buildDescriptor(tag, 20000)
		assert.LessOrEqual(t, d.addrEnd, uint8(d.completeLen)+1, "addr range of %s", tag)
		assert.LessOrEqual(t, int(d.cmdOfs), int(d.cmdEnd), "cmd range of %s", tag)
	}
}
