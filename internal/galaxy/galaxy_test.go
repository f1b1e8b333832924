package galaxy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/galaxy-generator/internal/config"
)

// scripted replays values in order and wraps around.
type scripted struct {
	values []float64
	next   int
}

func (s *scripted) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestGenerateBufferLengths(t *testing.T) {
	for _, count := range []int{0, 1, 7, 1000} {
		p := config.Default()
		p.Count = count
		pc := Generate(p, NewSource(1))
		assert.Len(t, pc.Positions, count*3)
		assert.Len(t, pc.Colors, count*3)
		assert.Equal(t, count, pc.Len())
	}
}

func TestGenerateClampsInvalidInput(t *testing.T) {
	p := config.Default()
	p.Count = -5
	p.Branches = 0
	pc := Generate(p, NewSource(1))
	assert.Equal(t, 0, pc.Len())

	p.Count = 10
	pc = Generate(p, NewSource(1))
	assert.Equal(t, 10, pc.Len())
	// caller's record is left alone
	assert.Equal(t, 0, p.Branches)
}

func TestGeneratePinnedExample(t *testing.T) {
	p := config.Default()
	p.Count = 4
	p.Branches = 2
	p.Radius = 10
	p.Spin = 0
	p.RandomnessPower = 1

	// radius draw, then (magnitude, sign) for x, y and z
	src := &scripted{values: []float64{0.25, 0.5, 0.0, 0.5, 0.0, 0.5, 0.0}}
	pc := Generate(p, src)
	require.Equal(t, 4, pc.Len())

	want := [][3]float32{
		{3.0, 0.5, 0.5},
		{-2.0, 0.5, 0.5},
		{3.0, 0.5, 0.5},
		{-2.0, 0.5, 0.5},
	}
	for i, w := range want {
		assert.InDelta(t, w[0], pc.Positions[i*3], 1e-6, "x of point %d", i)
		assert.InDelta(t, w[1], pc.Positions[i*3+1], 1e-6, "y of point %d", i)
		assert.InDelta(t, w[2], pc.Positions[i*3+2], 1e-6, "z of point %d", i)
	}

	mid := p.InsideColor.BlendRgb(p.OutsideColor.Color, 0.25)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, mid.R, pc.Colors[i*3], 1e-6)
		assert.InDelta(t, mid.G, pc.Colors[i*3+1], 1e-6)
		assert.InDelta(t, mid.B, pc.Colors[i*3+2], 1e-6)
	}
}

func TestGenerateNegativeSign(t *testing.T) {
	p := config.Default()
	p.Count = 1
	p.Spin = 0
	p.RandomnessPower = 2

	src := &scripted{values: []float64{0, 0.5, 0.9, 0.5, 0.9, 0.5, 0.9}}
	pc := Generate(p, src)
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, -0.25, pc.Positions[axis], 1e-6)
	}
}

func TestGenerateZeroRadius(t *testing.T) {
	p := config.Default()
	p.Count = 500
	p.Radius = 0

	pc := Generate(p, NewSource(7))
	for i := 0; i < pc.Len(); i++ {
		assert.InDelta(t, p.InsideColor.R, pc.Colors[i*3], 1e-6)
		assert.InDelta(t, p.InsideColor.G, pc.Colors[i*3+1], 1e-6)
		assert.InDelta(t, p.InsideColor.B, pc.Colors[i*3+2], 1e-6)
		// only jitter remains
		assert.LessOrEqual(t, math.Abs(float64(pc.Positions[i*3])), 1.0)
		assert.LessOrEqual(t, math.Abs(float64(pc.Positions[i*3+2])), 1.0)
	}
}

func TestGenerateColorBlendMonotonic(t *testing.T) {
	const n = 50
	p := config.Default()
	p.Count = n
	p.Spin = 0

	values := make([]float64, 0, n*7)
	for i := 0; i < n; i++ {
		values = append(values, float64(i)/n, 0.5, 0.1, 0.5, 0.1, 0.5, 0.1)
	}
	pc := Generate(p, &scripted{values: values})

	inside := []float64{p.InsideColor.R, p.InsideColor.G, p.InsideColor.B}
	outside := []float64{p.OutsideColor.R, p.OutsideColor.G, p.OutsideColor.B}
	for ch := 0; ch < 3; ch++ {
		lo, hi := math.Min(inside[ch], outside[ch]), math.Max(inside[ch], outside[ch])
		prevDist := math.Inf(1)
		for i := 0; i < n; i++ {
			v := float64(pc.Colors[i*3+ch])
			assert.GreaterOrEqual(t, v, lo-1e-6)
			assert.LessOrEqual(t, v, hi+1e-6)

			dist := math.Abs(v - outside[ch])
			assert.LessOrEqual(t, dist, prevDist+1e-6, "channel %d point %d", ch, i)
			prevDist = dist
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := config.Default()
	p.Count = 2000

	a := Generate(p, NewSource(42))
	b := Generate(p, NewSource(42))
	assert.Equal(t, a, b)

	c := Generate(p, NewSource(43))
	assert.NotEqual(t, a.Positions, c.Positions)
}

func TestGenerateBranchAssignment(t *testing.T) {
	p := config.Default()
	p.Count = 6
	p.Branches = 3
	p.Spin = 0
	p.RandomnessPower = 1

	// zero jitter: magnitude 0 on every axis
	src := &scripted{values: []float64{0.5, 0, 0, 0, 0, 0, 0}}
	pc := Generate(p, src)

	r := 0.5 * p.Radius
	for i := 0; i < p.Count; i++ {
		angle := float64(i%3) / 3 * 2 * math.Pi
		assert.InDelta(t, math.Cos(angle)*r, pc.Positions[i*3], 1e-5)
		assert.InDelta(t, 0, pc.Positions[i*3+1], 1e-9)
		assert.InDelta(t, math.Sin(angle)*r, pc.Positions[i*3+2], 1e-5)
	}
}
