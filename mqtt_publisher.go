package main

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MQTTPublisher pushes decoded frames and periodic metric dumps to a broker
type MQTTPublisher struct {
	client  mqtt.Client
	config  *MQTTConfig
	bus     *FrameBus
	metrics *PrometheusMetrics
}

// MetricPayload represents a metric message for MQTT
type MetricPayload struct {
	Timestamp int64              `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
	Labels    map[string]string  `json:"labels,omitempty"`
}

// generateClientID creates a random client ID for MQTT connection
func generateClientID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "irmond_" + hex.EncodeToString(bytes)
}

// loadTLSConfig loads TLS configuration from files
func loadTLSConfig(tlsConfig MQTTTLSConfig) (*tls.Config, error) {
	if !tlsConfig.Enabled {
		return nil, nil
	}

	config := &tls.Config{InsecureSkipVerify: tlsConfig.Insecure}

	// Load CA certificate if provided
	if tlsConfig.CACert != "" {
		caCert, err := os.ReadFile(tlsConfig.CACert)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA certificate")
		}
		config.RootCAs = caCertPool
	}

	// Load client certificate and key if provided
	if tlsConfig.ClientCert != "" && tlsConfig.ClientKey != "" {
		cert, err := tls.LoadX509KeyPair(tlsConfig.ClientCert, tlsConfig.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}
		config.Certificates = []tls.Certificate{cert}
	}

	return config, nil
}

// NewMQTTPublisher creates a new MQTT publisher
func NewMQTTPublisher(config *MQTTConfig, bus *FrameBus, metrics *PrometheusMetrics) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(generateClientID())

	if config.Username != "" {
		opts.SetUsername(config.Username)
	}
	if config.Password != "" {
		opts.SetPassword(config.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(10 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	if config.TLS.Enabled {
		tlsConfig, err := loadTLSConfig(config.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS config: %w", err)
		}
		opts.SetTLSConfig(tlsConfig)
	}

	opts.OnConnect = func(c mqtt.Client) {
		log.Printf("[MQTT] Connected to broker %s", config.Broker)
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.Printf("[MQTT] Connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.WaitTimeout(10*time.Second) && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &MQTTPublisher{
		client:  client,
		config:  config,
		bus:     bus,
		metrics: metrics,
	}, nil
}

// Run subscribes to the frame bus and publishes until the context ends.
func (p *MQTTPublisher) Run(ctx context.Context) {
	sub := p.bus.Subscribe()
	defer p.bus.Unsubscribe(sub)

	var metricsTicker *time.Ticker
	var metricsC <-chan time.Time
	if p.config.MetricsInterval > 0 {
		metricsTicker = time.NewTicker(time.Duration(p.config.MetricsInterval) * time.Second)
		metricsC = metricsTicker.C
		defer metricsTicker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			p.client.Disconnect(250)
			return
		case f := <-sub:
			p.publishFrame(f)
		case <-metricsC:
			p.publishMetrics()
		}
	}
}

// publishFrame sends one decoded frame as JSON to <prefix>/frames/<protocol>.
func (p *MQTTPublisher) publishFrame(f DecodedFrame) {
	payload, err := json.Marshal(f)
	if err != nil {
		log.Printf("[MQTT] Failed to marshal frame: %v", err)
		return
	}
	topic := fmt.Sprintf("%s/frames/%s", p.config.TopicPrefix, topicSegment(f.Protocol))
	token := p.client.Publish(topic, 0, false, payload)
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		log.Printf("[MQTT] Failed to publish frame: %v", token.Error())
		if p.metrics != nil {
			p.metrics.mqttPublishErrors.Inc()
		}
		return
	}
	if p.metrics != nil {
		p.metrics.mqttPublishTotal.Inc()
	}
}

// topicSegment makes a protocol name safe for use inside an MQTT topic.
func topicSegment(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// publishMetrics gathers the Prometheus registry and dumps the irmond
// counters as a single JSON payload.
func (p *MQTTPublisher) publishMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Printf("[MQTT] Failed to gather metrics: %v", err)
		return
	}

	payload := MetricPayload{
		Timestamp: time.Now().Unix(),
		Metrics:   make(map[string]float64),
	}
	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, "irmond_") {
			continue
		}
		for _, m := range family.GetMetric() {
			key := name
			for _, label := range m.GetLabel() {
				key += "," + label.GetName() + "=" + label.GetValue()
			}
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				payload.Metrics[key] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				payload.Metrics[key] = m.GetGauge().GetValue()
			}
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[MQTT] Failed to marshal metrics: %v", err)
		return
	}
	topic := p.config.TopicPrefix + "/metrics"
	token := p.client.Publish(topic, 0, false, data)
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		log.Printf("[MQTT] Failed to publish metrics: %v", token.Error())
	}
}
