package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{SampleRate: 15000}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultProtocols(), cfg.Protocols)
}

func TestConfigSampleRateBounds(t *testing.T) {
	for _, rate := range []uint32{0, 9999, 20001, 48000} {
		cfg := Config{SampleRate: rate}
		assert.Error(t, cfg.Validate(), "rate %d", rate)
	}
	for _, rate := range []uint32{10000, 15000, 20000} {
		cfg := Config{SampleRate: rate}
		assert.NoError(t, cfg.Validate(), "rate %d", rate)
	}
}

func TestConfigExclusivePairs(t *testing.T) {
	var s ProtocolSet
	cfg := Config{SampleRate: 15000, Protocols: s.Set(ProtoRC5, ProtoOrtek)}
	assert.Error(t, cfg.Validate())

	s = 0
	cfg = Config{SampleRate: 15000, Protocols: s.Set(ProtoKaseikyo, ProtoPanasonic)}
	assert.Error(t, cfg.Validate())
}

func TestConfigDependencies(t *testing.T) {
	var s ProtocolSet
	cfg := Config{SampleRate: 15000, Protocols: s.Set(ProtoJVC)}
	assert.Error(t, cfg.Validate())

	s = 0
	cfg = Config{SampleRate: 15000, Protocols: s.Set(ProtoSamsung48)}
	assert.Error(t, cfg.Validate())

	s = 0
	cfg = Config{SampleRate: 15000, Protocols: s.Set(ProtoJVC, ProtoNEC)}
	assert.NoError(t, cfg.Validate())
}

func TestConfigRateConstraints(t *testing.T) {
	var s ProtocolSet
	cfg := Config{SampleRate: 14000, Protocols: s.Set(ProtoSiemens)}
	assert.Error(t, cfg.Validate())

	s = 0
	cfg = Config{SampleRate: 15000, Protocols: s.Set(ProtoLego)}
	assert.Error(t, cfg.Validate())

	s = 0
	cfg = Config{SampleRate: 20000, Protocols: s.Set(ProtoPentax)}
	assert.Error(t, cfg.Validate())

	s = 0
	cfg = Config{SampleRate: 16000, Protocols: s.Set(ProtoPentax)}
	assert.NoError(t, cfg.Validate())
}

func TestConfigMerlinNeeds32Bit(t *testing.T) {
	var s ProtocolSet
	cfg := Config{SampleRate: 15000, Protocols: s.Set(ProtoMerlin)}
	assert.Error(t, cfg.Validate())

	cfg.Command32 = true
	assert.NoError(t, cfg.Validate())
}
