package motion

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealIsOneShot(t *testing.T) {
	t.Parallel()

	spec := ServiceCard(0)
	r := NewReveal(spec)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, Hidden, r.Phase(start))
	require.Equal(t, spec.Initial, r.State(start))

	require.True(t, r.Trigger(start))
	require.Equal(t, Animating, r.Phase(start.Add(100*time.Millisecond)))

	settled := start.Add(spec.Delay + spec.Duration)
	require.Equal(t, Settled, r.Phase(settled))
	require.Equal(t, State{Opacity: 1, Y: 0, Scale: 1, RotateX: 0}, r.State(settled))

	// scroll out and back in
	r.Leave()
	require.False(t, r.Trigger(settled.Add(time.Second)))
	require.Equal(t, Settled, r.Phase(settled.Add(2*time.Second)))
	require.Equal(t, 1, r.Triggers())
}

func TestRevealRepeatsWhenNotOnce(t *testing.T) {
	t.Parallel()

	spec := FadeUp(10, 0)
	spec.Once = false
	r := NewReveal(spec)
	now := time.Now()

	require.True(t, r.Trigger(now))
	r.Leave()
	require.Equal(t, Hidden, r.Phase(now))
	require.True(t, r.Trigger(now))
	require.Equal(t, 2, r.Triggers())
}

func TestRevealHonoursDelay(t *testing.T) {
	t.Parallel()

	spec := StatCard(2)
	require.Equal(t, 100*time.Millisecond, spec.Delay)

	r := NewReveal(spec)
	now := time.Now()
	r.Trigger(now)
	assert.Equal(t, spec.Initial, r.State(now.Add(50*time.Millisecond)))

	mid := r.State(now.Add(spec.Delay + spec.Duration/2))
	assert.Greater(t, mid.Opacity, 0.0)
	assert.Less(t, mid.Opacity, 1.0)
}

func TestObserverFiresOnceAndDetaches(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	var fired []string
	require.NoError(t, o.Register("card-1", 0.4, true, func(id string) {
		fired = append(fired, id)
	}))

	require.False(t, o.Intersect("card-1", 0.2), "below threshold")
	require.True(t, o.Intersect("card-1", 0.5))
	require.False(t, o.Intersect("card-1", 0), "scrolled out")
	require.False(t, o.Intersect("card-1", 1), "scrolled back in")

	require.Equal(t, []string{"card-1"}, fired)
	require.Empty(t, o.Pending())
}

func TestObserverRepeatingWatch(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	count := 0
	require.NoError(t, o.Register("banner", 0.5, false, func(string) { count++ }))

	o.Intersect("banner", 0.6)
	o.Intersect("banner", 0.9)
	o.Intersect("banner", 0.1)
	o.Intersect("banner", 0.7)

	require.Equal(t, 2, count)
	require.Equal(t, []string{"banner"}, o.Pending())
}

func TestObserverRejectsBadRegistrations(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	require.Error(t, o.Register("", 0.3, true, nil))
	require.Error(t, o.Register("x", 1.5, true, nil))
	require.NoError(t, o.Register("x", 0, true, nil))
	require.Error(t, o.Register("x", 0.3, true, nil))

	require.False(t, o.Intersect("unknown", 1))
	require.True(t, o.Intersect("x", 0.01), "zero threshold fires on any visibility")
}

func TestObserverConcurrentIntersections(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	var fired atomic.Int32
	require.NoError(t, o.Register("hero", 0.3, true, func(string) { fired.Add(1) }))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.Intersect("hero", 1)
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, fired.Load())
}

func TestSpecAttrsRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
	}{
		{"mount", Mount(0.15)},
		{"service card", ServiceCard(2)},
		{"project card", ProjectCard()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := map[string]string{}
			for _, a := range tt.spec.Attrs() {
				attrs[a.Name] = a.Value
			}
			got, err := ParseAttrs(func(name string) (string, bool) {
				v, ok := attrs[name]
				return v, ok
			})
			require.NoError(t, err)
			require.Equal(t, tt.spec, got)
		})
	}
}

func TestPresetTimings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 150*time.Millisecond, Mount(0.15).Delay)
	assert.Equal(t, 700*time.Millisecond, Mount(0).Duration)
	assert.False(t, Mount(0).InView)

	card := ServiceCard(1)
	assert.Equal(t, 50*time.Millisecond, card.Delay)
	assert.Equal(t, -8.0, card.Initial.RotateX)
	assert.Equal(t, 0.4, card.Threshold)

	tile := ProjectCard()
	assert.Equal(t, 0.3, tile.Threshold)
	assert.Equal(t, 0.96, tile.Initial.Scale)
	assert.Equal(t, 450*time.Millisecond, tile.Duration)
}

func TestParseStateErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseState("opacity")
	require.Error(t, err)
	_, err = ParseState("blur:2")
	require.Error(t, err)
	st, err := ParseState("opacity:0.5")
	require.NoError(t, err)
	require.Equal(t, State{Opacity: 0.5, Scale: 1}, st)
}

func TestStateCSS(t *testing.T) {
	t.Parallel()

	require.Equal(t, "opacity:0;transform:translateY(20px) scale(1) rotateX(-8deg)", ServiceCard(0).Initial.CSS())
}
