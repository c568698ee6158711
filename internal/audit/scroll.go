package audit

import (
	"math"

	"flames.blue/internal/motion"
)

// SimulateScroll lays the animated elements out one unit tall in document
// order and scrolls a viewport of the given height down, back up and down
// again in step increments. It returns how many times each element was
// revealed. Mount-triggered elements reveal once at load.
func SimulateScroll(elements []Element, viewport, step float64) map[string]int {
	fires := make(map[string]int, len(elements))
	obs := motion.NewObserver()
	for _, el := range elements {
		if !el.Spec.InView {
			fires[el.ID]++
			continue
		}
		// ids are unique per page; duplicates were reported already
		_ = obs.Register(el.ID, el.Spec.Threshold, el.Spec.Once, func(id string) {
			fires[id]++
		})
	}

	height := float64(len(elements))
	pass := func(from, to float64) {
		dir := step
		if to < from {
			dir = -step
		}
		for top := from; (dir > 0 && top <= to) || (dir < 0 && top >= to); top += dir {
			for i, el := range elements {
				if el.Spec.InView {
					obs.Intersect(el.ID, overlap(float64(i), top, viewport))
				}
			}
		}
	}
	start, end := -viewport, height
	pass(start, end)
	pass(end, start)
	pass(start, end)
	return fires
}

// overlap is the visible fraction of the unit element at pos
func overlap(pos, top, viewport float64) float64 {
	lo := math.Max(pos, top)
	hi := math.Min(pos+1, top+viewport)
	return math.Max(0, hi-lo)
}
