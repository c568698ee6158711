package motion

import (
	"math"
	"time"
)

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Mount animates on first render, used for the hero copy
func Mount(delay float64) Spec {
	return Spec{
		Initial:  State{Opacity: 0, Y: 20, Scale: 1},
		Target:   Visible,
		Delay:    seconds(delay),
		Duration: seconds(0.7),
		Once:     true,
	}
}

// Heading fades a section heading up once it is 40% visible
func Heading() Spec {
	return FadeUp(10, 0)
}

// FadeUp rises an element by distance px once it is 40% visible
func FadeUp(distance, delay float64) Spec {
	return Spec{
		Initial:   State{Opacity: 0, Y: distance, Scale: 1},
		Target:    Visible,
		Threshold: 0.4,
		Delay:     seconds(delay),
		Duration:  seconds(0.6),
		Once:      true,
		InView:    true,
	}
}

// ServiceCard tilts a service card into place, staggered by its index
func ServiceCard(index int) Spec {
	s := FadeUp(20, 0)
	s.Initial.RotateX = -8
	return Stagger(s, index, 0.05)
}

// ProjectCard pops a project tile in once 30% of it is visible
func ProjectCard() Spec {
	return Spec{
		Initial:   State{Opacity: 0, Y: 12, Scale: 0.96},
		Target:    Visible,
		Threshold: 0.3,
		Duration:  seconds(0.45),
		Once:      true,
		InView:    true,
	}
}

// StatCard raises an About stat card, staggered by its index
func StatCard(index int) Spec {
	s := FadeUp(12, 0)
	s.Duration = seconds(0.5)
	return Stagger(s, index, 0.05)
}

// Stagger delays s proportionally to its position in a list
func Stagger(s Spec, index int, step float64) Spec {
	s.Delay += seconds(float64(index) * step)
	return s
}
