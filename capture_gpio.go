package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIOCapture polls a demodulator output pin at the engine sample rate and
// feeds the receiver. The pin idles high; carrier pulls it low.
type GPIOCapture struct {
	pin      gpio.PinIn
	receiver *Receiver
	recorder *CaptureRecorder
}

// NewGPIOCapture initializes the periph.io host and resolves the pin.
func NewGPIOCapture(cfg GPIOConfig, receiver *Receiver, recorder *CaptureRecorder) (*GPIOCapture, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}
	pin := gpioreg.ByName(cfg.Pin)
	if pin == nil {
		return nil, fmt.Errorf("gpio pin %q not found", cfg.Pin)
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("failed to configure pin %s: %w", pin.Name(), err)
	}
	return &GPIOCapture{pin: pin, receiver: receiver, recorder: recorder}, nil
}

// Run samples the pin until the context is cancelled. Samples are batched so
// the engine and the recorder see chunks rather than single ticks.
func (g *GPIOCapture) Run(ctx context.Context) {
	rate := g.receiver.SampleRate()
	interval := time.Second / time.Duration(rate)
	log.Printf("[Capture] GPIO sampling %s at %d Hz", g.pin.Name(), rate)

	const chunkSize = 256
	chunk := make([]uint8, 0, chunkSize)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if len(chunk) > 0 {
				g.receiver.Feed(chunk)
			}
			return
		case <-ticker.C:
			level := uint8(1)
			if g.pin.Read() == gpio.Low {
				level = 0
			}
			chunk = append(chunk, level)
			if len(chunk) == chunkSize {
				g.receiver.Feed(chunk)
				if g.recorder != nil {
					g.recorder.Write(chunk)
				}
				chunk = chunk[:0]
			}
		}
	}
}
