package scene

import (
	"fmt"
	"math"
)

// Default animation parameters
const (
	DefaultStep  = 0.05
	DefaultBound = 20.0

	// Per-step increments of the yaw-pitch-roll accumulators
	YawStep   = 0.06
	PitchStep = 0.02
)

// Oscillator ping-pongs an angle between 0 and a bound.
//
// The counter is kept as a whole number of steps so the angle never drifts:
// after 400 ticks of 0.05 it is exactly 20. Each tick compares the counter
// against the current target before moving, and only then swaps the target,
// so the turn-around happens one tick after the bound is reached. On the way
// down this lets the counter dip one step below zero before rising again.
// A float accumulator would bottom out at about zero instead, one tick later.
type Oscillator struct {
	step   float32
	bound  int // nominal target, in steps
	target int // current target, in steps
	steps  int // signed step counter
	ticks  uint64
}

// NewOscillator creates an oscillator that moves step per tick towards bound.
// bound is rounded to the nearest whole number of steps.
func NewOscillator(step, bound float32) (*Oscillator, error) {
	if step <= 0 || math.IsNaN(float64(step)) || math.IsInf(float64(step), 0) {
		return nil, fmt.Errorf("invalid oscillator step %v", step)
	}
	if bound <= 0 || math.IsNaN(float64(bound)) || math.IsInf(float64(bound), 0) {
		return nil, fmt.Errorf("invalid oscillator bound %v", bound)
	}

	n := int(math.Round(float64(bound) / float64(step)))
	if n < 1 {
		return nil, fmt.Errorf("oscillator bound %v is smaller than one step of %v", bound, step)
	}

	return &Oscillator{
		step:   step,
		bound:  n,
		target: n,
	}, nil
}

// NewDefaultOscillator returns the demo's 0.05 / 20.0 oscillator
func NewDefaultOscillator() *Oscillator {
	o, err := NewOscillator(DefaultStep, DefaultBound)
	if err != nil {
		panic(err)
	}
	return o
}

// Tick advances the oscillator by one frame
func (o *Oscillator) Tick() {
	if o.steps >= o.target {
		o.target = 0
		o.steps--
	} else {
		o.target = o.bound
		o.steps++
	}
	o.ticks++
}

// Angle returns the current yaw angle in radians
func (o *Oscillator) Angle() float32 {
	return float32(o.steps) * o.step
}

// Yaw returns the yaw accumulator of the yaw-pitch-roll rotation
func (o *Oscillator) Yaw() float32 {
	return float32(o.steps) * YawStep
}

// Pitch returns the pitch accumulator of the yaw-pitch-roll rotation
func (o *Oscillator) Pitch() float32 {
	return float32(o.steps) * PitchStep
}

// Increasing reports whether the next tick moves the angle up
func (o *Oscillator) Increasing() bool {
	return o.steps < o.target
}

// Ticks returns how many times Tick has been called
func (o *Oscillator) Ticks() uint64 {
	return o.ticks
}

// Steps returns the signed step counter
func (o *Oscillator) Steps() int {
	return o.steps
}
