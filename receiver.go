package main

import (
	"fmt"
	"log"

	"github.com/cwsl/irmond/irdecode"
)

// Receiver binds one decoding engine instance to one sample source. Engines
// are single threaded; each receiver is fed from exactly one goroutine.
type Receiver struct {
	name      string
	dec       *irdecode.Decoder
	bus       *FrameBus
	metrics   *PrometheusMetrics
	logFrames bool
}

// NewReceiver builds an engine for the given source name.
func NewReceiver(name string, cfg irdecode.Config, bus *FrameBus, metrics *PrometheusMetrics, logging LoggingConfig) (*Receiver, error) {
	dec, err := irdecode.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder for %s: %w", name, err)
	}
	r := &Receiver{
		name:      name,
		dec:       dec,
		bus:       bus,
		metrics:   metrics,
		logFrames: logging.Frames,
	}
	if metrics != nil {
		dec.SetEdgeCallback(func(level uint8, sample uint64) {
			metrics.edgesTotal.WithLabelValues(name).Inc()
		})
		dec.SetTraceHook(func(ev irdecode.TraceEvent) {
			if ev.Kind == irdecode.TraceFinalize && ev.Outcome != irdecode.OutcomeFrame {
				metrics.discardsTotal.WithLabelValues(ev.Outcome.String()).Inc()
			}
		})
	}
	return r, nil
}

// Feed steps the engine over a sample chunk, publishing every decoded frame.
func (r *Receiver) Feed(samples []uint8) {
	for _, s := range samples {
		if !r.dec.Step(s) {
			continue
		}
		f, ok := r.dec.GetData()
		if !ok {
			continue
		}
		df := newDecodedFrame(f, r.name)
		if r.logFrames {
			log.Printf("[Decode] %s addr=0x%04X cmd=0x%X flags=0x%02X source=%s",
				df.Protocol, df.Address, df.Command, df.Flags, r.name)
		}
		if r.metrics != nil {
			r.metrics.CountFrame(df)
		}
		r.bus.Publish(df)
	}
	if r.metrics != nil {
		r.metrics.samplesTotal.WithLabelValues(r.name).Add(float64(len(samples)))
	}
}

// Reset returns the engine to idle, dropping any frame in flight.
func (r *Receiver) Reset() {
	r.dec.Reset()
}

// SampleRate returns the engine's configured rate in Hz.
func (r *Receiver) SampleRate() uint32 {
	return r.dec.SampleRate()
}
