package scene

import (
	"testing"
)

func tickN(o *Oscillator, n int) {
	for iter := 0; iter < n; iter++ {
		o.Tick()
	}
}

func TestOscillatorStartsAtZero(t *testing.T) {
	o := NewDefaultOscillator()
	if o.Angle() != 0 || o.Yaw() != 0 || o.Pitch() != 0 {
		t.Errorf("Expected zero angles, got angle=%v yaw=%v pitch=%v", o.Angle(), o.Yaw(), o.Pitch())
	}
	if !o.Increasing() {
		t.Error("Expected a fresh oscillator to be increasing")
	}
}

func TestOscillatorTurnsAtBound(t *testing.T) {
	o := NewDefaultOscillator()

	flips := 0
	prev := o.Angle()
	rising := true
	for tick := 1; tick <= 401; tick++ {
		o.Tick()
		a := o.Angle()
		if (a > prev) != rising {
			flips++
			rising = a > prev
			if tick != 401 {
				t.Errorf("Direction flipped at tick %d, expected 401", tick)
			}
		}
		prev = a

		if tick == 400 && a != 20.0 {
			t.Errorf("Expected angle 20.0 at tick 400, got %v", a)
		}
	}

	if flips != 1 {
		t.Errorf("Expected exactly one flip in 401 ticks, got %d", flips)
	}
	if o.Angle() != 19.95 {
		t.Errorf("Expected angle 19.95 at tick 401, got %v", o.Angle())
	}
}

func TestOscillatorSequence(t *testing.T) {
	tests := []struct {
		tick  int
		steps int
	}{
		{0, 0},
		{1, 1},
		{399, 399},
		{400, 400},
		{401, 399},
		{402, 398},
		{799, 1},
		{800, 0},
		{801, -1}, // one step below zero before turning
		{802, 0},
		{803, 1},
		{1202, 400},
		{1203, 399},
	}

	o := NewDefaultOscillator()
	done := 0
	for _, tt := range tests {
		tickN(o, tt.tick-done)
		done = tt.tick
		if o.Steps() != tt.steps {
			t.Errorf("Tick %d: expected %d steps, got %d", tt.tick, tt.steps, o.Steps())
		}
		if got, want := o.Angle(), float32(tt.steps)*DefaultStep; got != want {
			t.Errorf("Tick %d: expected angle %v, got %v", tt.tick, want, got)
		}
		if o.Ticks() != uint64(tt.tick) {
			t.Errorf("Tick %d: Ticks() = %d", tt.tick, o.Ticks())
		}
	}
}

func TestOscillatorYawPitchFollowSteps(t *testing.T) {
	o := NewDefaultOscillator()
	tickN(o, 50)

	if got, want := o.Yaw(), float32(50)*YawStep; got != want {
		t.Errorf("Expected yaw %v, got %v", want, got)
	}
	if got, want := o.Pitch(), float32(50)*PitchStep; got != want {
		t.Errorf("Expected pitch %v, got %v", want, got)
	}
}

func TestNewOscillatorRejectsBadInput(t *testing.T) {
	tests := []struct {
		name        string
		step, bound float32
	}{
		{"zero step", 0, 20},
		{"negative step", -0.05, 20},
		{"zero bound", 0.05, 0},
		{"bound below one step", 1, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewOscillator(tt.step, tt.bound); err == nil {
				t.Errorf("Expected an error for step=%v bound=%v", tt.step, tt.bound)
			}
		})
	}
}

func TestNewOscillatorRoundsBound(t *testing.T) {
	o, err := NewOscillator(0.5, 2.2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	tickN(o, 4)
	if o.Angle() != 2.0 {
		t.Errorf("Expected angle 2.0 after 4 ticks, got %v", o.Angle())
	}
	o.Tick()
	if o.Angle() != 1.5 {
		t.Errorf("Expected the oscillator to turn at 2.0, got %v", o.Angle())
	}
}
