package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cwsl/irmond/irdecode"
)

// DecodedFrame is the wire form of one decoded remote-control frame, shared
// by the websocket stream, the MQTT publisher and the /api/frames ring.
type DecodedFrame struct {
	Protocol    string `json:"protocol"`
	ProtocolID  uint8  `json:"protocol_id"`
	Address     uint16 `json:"address"`
	Command     uint32 `json:"command"`
	Flags       uint8  `json:"flags"`
	Repeat      bool   `json:"repeat"`
	Source      string `json:"source"`
	Timestamp   int64  `json:"timestamp"` // unix milliseconds
	StartSample uint64 `json:"start_sample"`
	EndSample   uint64 `json:"end_sample"`
}

// newDecodedFrame converts an engine frame for publication.
func newDecodedFrame(f irdecode.Frame, source string) DecodedFrame {
	return DecodedFrame{
		Protocol:    irdecode.ProtocolName(f.Protocol),
		ProtocolID:  uint8(f.Protocol),
		Address:     f.Address,
		Command:     f.Command,
		Flags:       f.Flags,
		Repeat:      f.Flags&irdecode.FlagRepetition != 0,
		Source:      source,
		Timestamp:   time.Now().UnixMilli(),
		StartSample: f.StartSample,
		EndSample:   f.EndSample,
	}
}

// FrameBus fans decoded frames out to subscribers and keeps a bounded ring
// of recent frames for the HTTP API.
type FrameBus struct {
	mu       sync.RWMutex
	subs     map[chan DecodedFrame]struct{}
	ring     []DecodedFrame
	ringSize int
	next     int
	total    uint64
}

// NewFrameBus creates a frame bus keeping ringSize recent frames.
func NewFrameBus(ringSize int) *FrameBus {
	return &FrameBus{
		subs:     make(map[chan DecodedFrame]struct{}),
		ring:     make([]DecodedFrame, 0, ringSize),
		ringSize: ringSize,
	}
}

// Publish delivers a frame to every subscriber. Slow subscribers drop
// frames rather than blocking the capture path.
func (fb *FrameBus) Publish(f DecodedFrame) {
	fb.mu.Lock()
	if len(fb.ring) < fb.ringSize {
		fb.ring = append(fb.ring, f)
	} else {
		fb.ring[fb.next] = f
	}
	fb.next = (fb.next + 1) % fb.ringSize
	fb.total++
	fb.mu.Unlock()

	fb.mu.RLock()
	defer fb.mu.RUnlock()
	for ch := range fb.subs {
		select {
		case ch <- f:
		default:
			// Subscriber backlogged, skip this frame
		}
	}
}

// Subscribe returns a channel receiving every published frame.
func (fb *FrameBus) Subscribe() chan DecodedFrame {
	ch := make(chan DecodedFrame, 64)
	fb.mu.Lock()
	fb.subs[ch] = struct{}{}
	fb.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber channel.
func (fb *FrameBus) Unsubscribe(ch chan DecodedFrame) {
	fb.mu.Lock()
	delete(fb.subs, ch)
	fb.mu.Unlock()
	close(ch)
}

// Recent returns the ring contents, oldest first.
func (fb *FrameBus) Recent() []DecodedFrame {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	out := make([]DecodedFrame, 0, len(fb.ring))
	if len(fb.ring) < fb.ringSize {
		return append(out, fb.ring...)
	}
	out = append(out, fb.ring[fb.next:]...)
	return append(out, fb.ring[:fb.next]...)
}

// Total returns the number of frames published since startup.
func (fb *FrameBus) Total() uint64 {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.total
}

// handleFramesAPI serves the recent-frames ring as JSON.
func (fb *FrameBus) handleFramesAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(fb.Recent()); err != nil {
		log.Printf("[Frames] Failed to encode frames response: %v", err)
	}
}
