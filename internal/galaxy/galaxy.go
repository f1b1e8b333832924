// Package galaxy builds spiral galaxy point clouds from a parameter set.
package galaxy

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/galaxy-generator/internal/config"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PointCloud holds one xyz and one rgb triplet per point.
type PointCloud struct {
	Positions []float32
	Colors    []float32
}

// Len returns the number of points.
func (pc PointCloud) Len() int {
	return len(pc.Positions) / 3
}

// Generate lays out p.Count points along p.Branches spiral arms. Out-of-range
// parameters are clamped on a local copy; p itself is never modified.
func Generate(p config.Parameters, src Source) PointCloud {
	p = p.Clamped()

	pc := PointCloud{
		Positions: make([]float32, p.Count*3),
		Colors:    make([]float32, p.Count*3),
	}

	for i := 0; i < p.Count; i++ {
		i3 := i * 3

		radius := src.Float64() * p.Radius
		spinAngle := radius * p.Spin
		branchAngle := float64(i%p.Branches) / float64(p.Branches) * 2 * math.Pi

		randomX := jitter(src, p.RandomnessPower)
		randomY := jitter(src, p.RandomnessPower)
		randomZ := jitter(src, p.RandomnessPower)

		pc.Positions[i3] = float32(math.Cos(branchAngle+spinAngle)*radius + randomX)
		pc.Positions[i3+1] = float32(randomY)
		pc.Positions[i3+2] = float32(math.Sin(branchAngle+spinAngle)*radius + randomZ)

		t := 0.0
		if p.Radius > 0 {
			t = radius / p.Radius
		}
		c := p.InsideColor.BlendRgb(p.OutsideColor.Color, t)
		pc.Colors[i3] = float32(c.R)
		pc.Colors[i3+1] = float32(c.G)
		pc.Colors[i3+2] = float32(c.B)
	}

	return pc
}

// jitter returns a signed offset in (-1, 1) whose magnitude is pulled toward
// zero as power grows.
func jitter(src Source, power float64) float64 {
	mag := math.Pow(src.Float64(), power)
	if src.Float64() < 0.5 {
		return mag
	}
	return -mag
}
