package motion

import (
	"math"
	"time"
)

// Phase is the lifecycle position of an animated element
type Phase int

const (
	Hidden Phase = iota
	Animating
	Settled
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Reveal tracks one element through hidden, animating and settled.
// A Once reveal never returns to Hidden after its first trigger.
type Reveal struct {
	spec      Spec
	triggered bool
	at        time.Time
	count     int
}

// NewReveal creates a Reveal in the Hidden phase
func NewReveal(spec Spec) *Reveal {
	return &Reveal{spec: spec}
}

// Trigger starts the transition at t. It reports whether the call started
// a transition; re-triggering a running or settled reveal is a no-op.
func (r *Reveal) Trigger(t time.Time) bool {
	if r.triggered {
		return false
	}
	r.triggered = true
	r.at = t
	r.count++
	return true
}

// Leave is called when the element scrolls out of view. Only reveals that
// are not one-shot fall back to Hidden.
func (r *Reveal) Leave() {
	if r.spec.Once {
		return
	}
	r.triggered = false
}

// Triggers returns how many transitions have started
func (r *Reveal) Triggers() int {
	return r.count
}

// Phase returns the lifecycle phase at t
func (r *Reveal) Phase(t time.Time) Phase {
	if !r.triggered {
		return Hidden
	}
	elapsed := t.Sub(r.at)
	if elapsed >= r.spec.Delay+r.spec.Duration {
		return Settled
	}
	return Animating
}

// State returns the visual state at t
func (r *Reveal) State(t time.Time) State {
	if !r.triggered {
		return r.spec.Initial
	}
	elapsed := t.Sub(r.at) - r.spec.Delay
	if elapsed <= 0 {
		return r.spec.Initial
	}
	if r.spec.Duration <= 0 || elapsed >= r.spec.Duration {
		return r.spec.Target
	}
	p := easeOut(float64(elapsed) / float64(r.spec.Duration))
	return State{
		Opacity: lerp(r.spec.Initial.Opacity, r.spec.Target.Opacity, p),
		Y:       lerp(r.spec.Initial.Y, r.spec.Target.Y, p),
		Scale:   lerp(r.spec.Initial.Scale, r.spec.Target.Scale, p),
		RotateX: lerp(r.spec.Initial.RotateX, r.spec.Target.RotateX, p),
	}
}

func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
