package irdecode

import "math"

// window is a closed inclusive tick range [Min, Max] used by every timing
// comparator. Windows are built once at decoder construction and never
// recomputed at runtime.
type window struct {
	Min uint16
	Max uint16
}

// Tolerance classes. Which class applies is a per-edge, per-protocol property
// of the timing table: wide tolerances where the protocol is alone in its
// timing neighbourhood, tight ones where two protocols would otherwise
// swallow each other's start bits.
const (
	tolExact = 0.00
	tol5     = 0.05
	tol10    = 0.10
	tol20    = 0.20
	tol30    = 0.30
	tol40    = 0.40
	tol50    = 0.50
	tol60    = 0.60
	tol70    = 0.70
)

// newWindow converts a nominal duration in seconds to a tick window at the
// given sample rate, widened by the tolerance class plus one tick of slack on
// each side. Min never drops below 1: a zero-length pulse is not a pulse.
func newWindow(seconds float64, rate uint32, tol float64) window {
	ticks := seconds * float64(rate)
	lo := math.Floor(ticks*(1.0-tol)) - 1
	hi := math.Ceil(ticks*(1.0+tol)) + 1
	if lo < 1 {
		lo = 1
	}
	if hi > math.MaxUint16 {
		hi = math.MaxUint16
	}
	return window{Min: uint16(lo), Max: uint16(hi)}
}

// contains reports whether the measured tick count lies inside the window.
func (w window) contains(ticks uint16) bool {
	return ticks >= w.Min && ticks <= w.Max
}

// ticksFor rounds a duration in seconds to whole ticks.
func ticksFor(seconds float64, rate uint32) uint16 {
	t := math.Round(seconds * float64(rate))
	if t > math.MaxUint16 {
		t = math.MaxUint16
	}
	if t < 1 {
		t = 1
	}
	return uint16(t)
}

// ticks32For is ticksFor with a 32 bit result, for the windows (repeat
// detection, auto-repeat suppression, Denon pairing) that are compared
// against the 32 bit gap counter.
func ticks32For(seconds float64, rate uint32) uint32 {
	t := math.Round(seconds * float64(rate))
	if t < 1 {
		t = 1
	}
	return uint32(t)
}
