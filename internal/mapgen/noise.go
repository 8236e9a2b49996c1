package mapgen

import "github.com/ojrac/opensimplex-go"

// fbm is fractal Brownian motion over OpenSimplex noise. Values fall
// roughly in [-1, 1].
type fbm struct {
	noise      opensimplex.Noise
	octaves    int
	lacunarity float64
	gain       float64
}

func newFBM(seed int64) fbm {
	return fbm{
		noise:      opensimplex.New(seed),
		octaves:    4,
		lacunarity: 2.0,
		gain:       0.5,
	}
}

// At samples the field at (x, y).
func (f fbm) At(x, y float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		sum += amp * f.noise.Eval2(x*freq, y*freq)
		norm += amp
		amp *= f.gain
		freq *= f.lacunarity
	}
	return sum / norm
}
