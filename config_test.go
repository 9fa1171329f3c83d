package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwsl/irmond/irdecode"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, ":8074", cfg.Server.Listen)
	assert.Equal(t, uint32(15000), cfg.Engine.SampleRate)
	assert.Equal(t, 256, cfg.Server.FrameRingSize)
	assert.Equal(t, "irmond", cfg.MQTT.TopicPrefix)
}

func TestLoadConfigEngineSection(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
engine:
  sample_rate: 20000
  protocols: [NEC, SAMSUNG, SAMSG32]
`))
	require.NoError(t, err)
	engineCfg, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, uint32(20000), engineCfg.SampleRate)
	assert.True(t, engineCfg.Protocols.Has(irdecode.ProtoNEC))
	assert.True(t, engineCfg.Protocols.Has(irdecode.ProtoSamsung32))
	assert.False(t, engineCfg.Protocols.Has(irdecode.ProtoRC5))
}

func TestLoadConfigRejectsUnknownProtocol(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
engine:
  protocols: [NEC, BOGUS]
`))
	assert.Error(t, err)
}

func TestLoadConfigRejectsExclusivePair(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
engine:
  protocols: [RC5, ORTEK]
`))
	assert.Error(t, err)
}

func TestLoadConfigMQTTNeedsBroker(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
mqtt:
  enabled: true
`))
	assert.Error(t, err)
}

func TestLoadConfigGPIONeedsPin(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
capture:
  gpio:
    enabled: true
`))
	assert.Error(t, err)
}
