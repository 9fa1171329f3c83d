package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwsl/irmond/irdecode"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Engine     EngineConfig     `yaml:"engine"`
	Capture    CaptureConfig    `yaml:"capture"`
	Prometheus PrometheusConfig `yaml:"prometheus"`
	MQTT       MQTTConfig       `yaml:"mqtt"`
	Logging    LoggingConfig    `yaml:"logging"`
	Admin      AdminConfig      `yaml:"admin"`
}

// ServerConfig contains web server settings
type ServerConfig struct {
	Listen         string `yaml:"listen"` // HTTP listen address (default ":8074")
	EnableCORS     bool   `yaml:"enable_cors"`
	MaxPushClients int    `yaml:"max_push_clients"` // Concurrent /ws/samples connections (0 = unlimited)
	FrameRingSize  int    `yaml:"frame_ring_size"`  // Frames kept for /api/frames (default 256)
}

// EngineConfig contains decoder engine settings
type EngineConfig struct {
	SampleRate uint32   `yaml:"sample_rate"` // Sampling rate in Hz, 10000..20000 (default 15000)
	Protocols  []string `yaml:"protocols"`   // Enabled protocol names; empty = engine defaults
	Command32  bool     `yaml:"command_32"`  // 32 bit command register (required for MERLIN)
}

// CaptureConfig selects the sample sources feeding the engine
type CaptureConfig struct {
	GPIO   GPIOConfig     `yaml:"gpio"`
	Replay []string       `yaml:"replay"` // Capture files played through the engine at startup
	Record RecorderConfig `yaml:"record"`
}

// GPIOConfig describes the receiver pin polled at the sample rate
type GPIOConfig struct {
	Enabled bool   `yaml:"enabled"`
	Pin     string `yaml:"pin"` // periph.io pin name, e.g. "GPIO17"
}

// RecorderConfig writes the live sample stream to disk for later analysis
type RecorderConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Directory string `yaml:"directory"` // default "data/captures"
	Compress  bool   `yaml:"compress"`  // zstd-compress capture files (suffix .zst)
}

// PrometheusConfig contains metrics settings
type PrometheusConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MQTTConfig contains MQTT publishing settings
type MQTTConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Broker          string        `yaml:"broker"` // e.g. "tcp://localhost:1883"
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	TopicPrefix     string        `yaml:"topic_prefix"`     // default "irmond"
	MetricsInterval int           `yaml:"metrics_interval"` // seconds between metric dumps (0 = disabled)
	TLS             MQTTTLSConfig `yaml:"tls"`
}

// MQTTTLSConfig contains TLS settings for the MQTT connection
type MQTTTLSConfig struct {
	Enabled    bool   `yaml:"enabled"`
	CACert     string `yaml:"ca_cert"`
	ClientCert string `yaml:"client_cert"`
	ClientKey  string `yaml:"client_key"`
	Insecure   bool   `yaml:"insecure"` // skip server certificate verification
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug  bool `yaml:"debug"`
	Frames bool `yaml:"frames"` // log every decoded frame
}

// AdminConfig contains instance metadata and the version checker switches
type AdminConfig struct {
	Name                 string `yaml:"name"`
	Location             string `yaml:"location"`
	VersionCheckEnabled  bool   `yaml:"version_check_enabled"`
	VersionCheckInterval int    `yaml:"version_check_interval"` // minutes (default: 60)
}

// LoadConfig reads and validates the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8074"
	}
	if c.Server.FrameRingSize == 0 {
		c.Server.FrameRingSize = 256
	}
	if c.Engine.SampleRate == 0 {
		c.Engine.SampleRate = 15000
	}
	if c.Capture.Record.Directory == "" {
		c.Capture.Record.Directory = "data/captures"
	}
	if c.MQTT.TopicPrefix == "" {
		c.MQTT.TopicPrefix = "irmond"
	}
	if c.Admin.VersionCheckInterval == 0 {
		c.Admin.VersionCheckInterval = 60
	}
}

func (c *Config) validate() error {
	if _, err := c.EngineConfig(); err != nil {
		return err
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt enabled but no broker configured")
	}
	if c.Capture.GPIO.Enabled && c.Capture.GPIO.Pin == "" {
		return fmt.Errorf("gpio capture enabled but no pin configured")
	}
	return nil
}

// EngineConfig resolves the yaml engine section into a decoder configuration.
func (c *Config) EngineConfig() (irdecode.Config, error) {
	cfg := irdecode.Config{
		SampleRate: c.Engine.SampleRate,
		Command32:  c.Engine.Command32,
	}
	for _, name := range c.Engine.Protocols {
		tag, ok := irdecode.ParseProtocol(name)
		if !ok {
			return cfg, fmt.Errorf("unknown protocol %q in engine.protocols", name)
		}
		cfg.Protocols = cfg.Protocols.Set(tag)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("engine configuration: %w", err)
	}
	return cfg, nil
}
