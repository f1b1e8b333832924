package game

import "time"

// frameTap records the last N frame durations into a ring buffer so the HUD
// can show a smoothed frame time.
type frameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	last      float64
	started   bool
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{
		buffer: make([]time.Duration, ringSize),
	}
}

// record takes the clock reading of the current frame.
func (t *frameTap) record(elapsed float64) {
	if !t.started {
		t.started = true
		t.last = elapsed
		return
	}
	d := time.Duration((elapsed - t.last) * float64(time.Second))
	t.last = elapsed

	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// average returns the mean of the recorded durations, or zero before two
// frames have been seen.
func (t *frameTap) average() time.Duration {
	if t.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.buffer[:t.filled] {
		sum += d
	}
	return sum / time.Duration(t.filled)
}
