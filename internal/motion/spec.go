// Package motion describes entrance animations declaratively and models
// their one-shot reveal lifecycle.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// State is the visual state an animated element is drawn in
type State struct {
	Opacity float64
	Y       float64 // px
	Scale   float64
	RotateX float64 // deg
}

// Visible is the settled state of every entrance animation
var Visible = State{Opacity: 1, Scale: 1}

// Spec is the declarative animation attached to one rendered element
type Spec struct {
	Initial   State
	Target    State
	Threshold float64
	Delay     time.Duration
	Duration  time.Duration
	Once      bool
	// InView triggers on viewport intersection; otherwise on mount.
	InView bool
}

// Trigger names how the animation starts
func (s Spec) Trigger() string {
	if s.InView {
		return "in-view"
	}
	return "mount"
}

// CSS renders s as inline style declarations
func (s State) CSS() string {
	return fmt.Sprintf("opacity:%s;transform:translateY(%spx) scale(%s) rotateX(%sdeg)",
		formatFloat(s.Opacity), formatFloat(s.Y), formatFloat(s.Scale), formatFloat(s.RotateX))
}

// Encode renders s in the compact form carried by data attributes
func (s State) Encode() string {
	return fmt.Sprintf("opacity:%s;y:%s;scale:%s;rotateX:%s",
		formatFloat(s.Opacity), formatFloat(s.Y), formatFloat(s.Scale), formatFloat(s.RotateX))
}

// ParseState parses the output of State.Encode
func ParseState(raw string) (State, error) {
	st := State{Scale: 1}
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, ":")
		if !ok {
			return State{}, fmt.Errorf("malformed state component %q", part)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return State{}, fmt.Errorf("state component %q: %w", key, err)
		}
		switch strings.TrimSpace(key) {
		case "opacity":
			st.Opacity = f
		case "y":
			st.Y = f
		case "scale":
			st.Scale = f
		case "rotateX":
			st.RotateX = f
		default:
			return State{}, fmt.Errorf("unknown state component %q", key)
		}
	}
	return st, nil
}

// Attribute names carried by animated elements
const (
	AttrID        = "data-motion-id"
	AttrTrigger   = "data-motion"
	AttrFrom      = "data-motion-from"
	AttrTo        = "data-motion-to"
	AttrThreshold = "data-motion-threshold"
	AttrDelay     = "data-motion-delay"
	AttrDuration  = "data-motion-duration"
	AttrOnce      = "data-motion-once"
)

// Attr is one HTML attribute
type Attr struct {
	Name  string
	Value string
}

// Attrs returns the data attributes the browser runtime reads
func (s Spec) Attrs() []Attr {
	return []Attr{
		{AttrTrigger, s.Trigger()},
		{AttrFrom, s.Initial.Encode()},
		{AttrTo, s.Target.Encode()},
		{AttrThreshold, formatFloat(s.Threshold)},
		{AttrDelay, strconv.FormatInt(s.Delay.Milliseconds(), 10)},
		{AttrDuration, strconv.FormatInt(s.Duration.Milliseconds(), 10)},
		{AttrOnce, strconv.FormatBool(s.Once)},
	}
}

// ParseAttrs rebuilds a Spec from rendered attributes
func ParseAttrs(get func(name string) (string, bool)) (Spec, error) {
	var s Spec
	trigger, ok := get(AttrTrigger)
	if !ok {
		return s, fmt.Errorf("missing %s", AttrTrigger)
	}
	switch trigger {
	case "in-view":
		s.InView = true
	case "mount":
	default:
		return s, fmt.Errorf("unknown trigger %q", trigger)
	}

	var err error
	if raw, ok := get(AttrFrom); ok {
		if s.Initial, err = ParseState(raw); err != nil {
			return s, fmt.Errorf("%s: %w", AttrFrom, err)
		}
	}
	if raw, ok := get(AttrTo); ok {
		if s.Target, err = ParseState(raw); err != nil {
			return s, fmt.Errorf("%s: %w", AttrTo, err)
		}
	}
	if raw, ok := get(AttrThreshold); ok {
		if s.Threshold, err = strconv.ParseFloat(raw, 64); err != nil {
			return s, fmt.Errorf("%s: %w", AttrThreshold, err)
		}
	}
	if s.Delay, err = parseMillis(get, AttrDelay); err != nil {
		return s, err
	}
	if s.Duration, err = parseMillis(get, AttrDuration); err != nil {
		return s, err
	}
	if raw, ok := get(AttrOnce); ok {
		if s.Once, err = strconv.ParseBool(raw); err != nil {
			return s, fmt.Errorf("%s: %w", AttrOnce, err)
		}
	}
	return s, nil
}

func parseMillis(get func(string) (string, bool), name string) (time.Duration, error) {
	raw, ok := get(name)
	if !ok {
		return 0, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
