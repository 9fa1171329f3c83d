package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwsl/irmond/irdecode"
)

// Global debug flag
var DebugMode bool

// Global start time for process uptime tracking
var StartTime time.Time

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	StartTime = time.Now()
	DebugMode = *debug

	config, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[Main] Failed to load configuration: %v", err)
	}
	if config.Logging.Debug {
		DebugMode = true
	}

	engineCfg, err := config.EngineConfig()
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	log.Printf("[Main] irmond %s starting, engine at %d Hz, %d protocols enabled",
		Version, engineCfg.SampleRate, len(engineCfg.Protocols.Tags()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var metrics *PrometheusMetrics
	if config.Prometheus.Enabled {
		metrics = NewPrometheusMetrics()
		go metrics.collectSystemMetrics(ctx)
	}

	bus := NewFrameBus(config.Server.FrameRingSize)

	// Replay capture files before going live so their frames land in the
	// ring and on MQTT like any other source.
	for _, path := range config.Capture.Replay {
		receiver, err := NewReceiver("replay:"+path, engineCfg, bus, metrics, config.Logging)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		n, err := ReplayCaptureFile(path, receiver)
		if err != nil {
			log.Printf("[Capture] Replay of %s failed: %v", path, err)
			continue
		}
		log.Printf("[Capture] Replayed %d samples from %s", n, path)
	}

	var recorder *CaptureRecorder
	if config.Capture.Record.Enabled {
		recorder, err = NewCaptureRecorder(config.Capture.Record)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		defer recorder.Close()
	}

	if config.Capture.GPIO.Enabled {
		receiver, err := NewReceiver("gpio", engineCfg, bus, metrics, config.Logging)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		capture, err := NewGPIOCapture(config.Capture.GPIO, receiver, recorder)
		if err != nil {
			log.Fatalf("[Main] Failed to set up GPIO capture: %v", err)
		}
		go capture.Run(ctx)
	}

	if config.MQTT.Enabled {
		publisher, err := NewMQTTPublisher(&config.MQTT, bus, metrics)
		if err != nil {
			log.Printf("[MQTT] Disabled: %v", err)
		} else {
			go publisher.Run(ctx)
		}
	}

	if config.Admin.VersionCheckEnabled {
		go runVersionChecker(ctx, config.Admin.VersionCheckInterval)
	}

	wsServer := NewWebSocketServer(config, bus, metrics)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/frames", wsServer.handleFrames)
	mux.HandleFunc("/ws/samples", wsServer.handleSamples)
	mux.HandleFunc("/api/frames", bus.handleFramesAPI)
	mux.HandleFunc("/api/status", statusHandler(config, engineCfg, bus))
	if config.Prometheus.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	var handler http.Handler = mux
	if config.Server.EnableCORS {
		handler = corsMiddleware(mux)
	}

	server := &http.Server{
		Addr:    config.Server.Listen,
		Handler: handler,
	}

	go func() {
		log.Printf("[Main] HTTP server listening on %s", config.Server.Listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Main] HTTP server failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Printf("[Main] Shutting down")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP shutdown: %v", err)
	}
}

// statusHandler reports instance metadata and engine configuration.
func statusHandler(config *Config, engineCfg irdecode.Config, bus *FrameBus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		protocols := make([]string, 0, len(engineCfg.Protocols.Tags()))
		for _, tag := range engineCfg.Protocols.Tags() {
			protocols = append(protocols, irdecode.ProtocolName(tag))
		}
		status := map[string]interface{}{
			"version":        Version,
			"latest_version": GetLatestVersion(),
			"name":           config.Admin.Name,
			"location":       config.Admin.Location,
			"sample_rate":    engineCfg.SampleRate,
			"protocols":      protocols,
			"frames_total":   bus.Total(),
			"uptime_seconds": int64(time.Since(StartTime).Seconds()),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Printf("[Main] Failed to encode status: %v", err)
		}
	}
}

// corsMiddleware adds permissive CORS headers for browser clients.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
