package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// PrometheusMetrics holds all Prometheus metric collectors for decoded
// frames, capture throughput and system metrics
type PrometheusMetrics struct {
	// Decode metrics (with 'protocol' label)
	framesTotal  *prometheus.CounterVec // Decoded frames by protocol
	repeatsTotal *prometheus.CounterVec // Frames flagged as key-held repetitions

	// Discard metrics (with 'reason' label: timing-miss, integrity-fail, ...)
	discardsTotal *prometheus.CounterVec

	// Capture metrics (with 'source' label: gpio, replay:<file>, push:<client>)
	samplesTotal *prometheus.CounterVec // Samples fed into the engines
	edgesTotal   *prometheus.CounterVec // Line level inversions observed

	// WebSocket metrics
	wsConnectionsTotal  *prometheus.CounterVec // Connections established (by type)
	wsActiveConnections *prometheus.GaugeVec   // Currently active connections (by type)

	// MQTT metrics
	mqttPublishTotal  prometheus.Counter
	mqttPublishErrors prometheus.Counter

	// System metrics
	processCPUPercent prometheus.Gauge
	processMemoryMB   prometheus.Gauge
	systemMemoryUsed  prometheus.Gauge
	goroutines        prometheus.Gauge
	uptimeSeconds     prometheus.Gauge
}

// NewPrometheusMetrics creates and registers all metric collectors
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		framesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irmond_frames_total",
				Help: "Decoded IR frames by protocol",
			},
			[]string{"protocol"},
		),
		repeatsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irmond_repeats_total",
				Help: "Decoded frames carrying the repetition flag",
			},
			[]string{"protocol"},
		),
		discardsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irmond_discards_total",
				Help: "Frames that ended without being reported, by reason",
			},
			[]string{"reason"},
		),
		samplesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irmond_samples_total",
				Help: "Line samples fed into the decoding engines",
			},
			[]string{"source"},
		),
		edgesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irmond_edges_total",
				Help: "Line level inversions observed by the edge detector",
			},
			[]string{"source"},
		),
		wsConnectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irmond_ws_connections_total",
				Help: "WebSocket connections established",
			},
			[]string{"type"},
		),
		wsActiveConnections: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "irmond_ws_active_connections",
				Help: "Currently active WebSocket connections",
			},
			[]string{"type"},
		),
		mqttPublishTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "irmond_mqtt_publish_total",
				Help: "MQTT messages published",
			},
		),
		mqttPublishErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "irmond_mqtt_publish_errors_total",
				Help: "MQTT publish failures",
			},
		),
		processCPUPercent: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "irmond_process_cpu_percent",
				Help: "Process CPU usage percentage",
			},
		),
		processMemoryMB: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "irmond_process_memory_mb",
				Help: "Process resident memory in MB",
			},
		),
		systemMemoryUsed: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "irmond_system_memory_used_percent",
				Help: "System memory usage percentage",
			},
		),
		goroutines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "irmond_goroutines",
				Help: "Number of goroutines",
			},
		),
		uptimeSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "irmond_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}
}

// CountFrame records one decoded frame.
func (pm *PrometheusMetrics) CountFrame(f DecodedFrame) {
	pm.framesTotal.WithLabelValues(f.Protocol).Inc()
	if f.Repeat {
		pm.repeatsTotal.WithLabelValues(f.Protocol).Inc()
	}
}

// collectSystemMetrics periodically updates the gopsutil backed gauges.
func (pm *PrometheusMetrics) collectSystemMetrics(ctx context.Context) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Printf("[Metrics] Failed to open own process handle: %v", err)
		return
	}

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pct, err := proc.CPUPercent(); err == nil {
				pm.processCPUPercent.Set(pct)
			}
			if mi, err := proc.MemoryInfo(); err == nil {
				pm.processMemoryMB.Set(float64(mi.RSS) / 1024 / 1024)
			}
			if vm, err := mem.VirtualMemory(); err == nil {
				pm.systemMemoryUsed.Set(vm.UsedPercent)
			}
			if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
				// Whole-system percentage only logged at debug level
				if DebugMode {
					log.Printf("[Metrics] System CPU %.1f%%", pcts[0])
				}
			}
			pm.goroutines.Set(float64(runtime.NumGoroutine()))
			pm.uptimeSeconds.Set(time.Since(StartTime).Seconds())
		}
	}
}
