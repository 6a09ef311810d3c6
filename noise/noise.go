// Package noise layers several octaves of opensimplex noise into one
// fractal value, used for shaping island outlines.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Noise sums octaves of normalized opensimplex noise. Every octave doubles
// the frequency and scales the amplitude by the persistence, so low octaves
// give the broad shape and high octaves the detail. Output stays in [0, 1].
type Noise struct {
	os         opensimplex.Noise
	amplitudes []float64
	total      float64
}

// New returns fractal noise for the given seed. The persistence (usually
// below 1) sets how fast the octave amplitudes decay.
func New(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		os: opensimplex.NewNormalized(seed),
	}
	for i := 0; i < octaves; i++ {
		a := math.Pow(persistence, float64(i))
		n.amplitudes = append(n.amplitudes, a)
		n.total += a
	}
	return n
}

// Eval2 returns the fractal noise value at (x, y).
func (n *Noise) Eval2(x, y float64) float64 {
	var sum float64
	for i, a := range n.amplitudes {
		f := float64(uint(1) << i)
		sum += a * n.os.Eval2(x*f, y*f)
	}
	return sum / n.total
}
