package statespace

import "math"

// HankelSingularValue returns the scalar importance measure
// sigma = ||b||*||c|| / (4*omega*zeta) used to prune low-energy modes.
func HankelSingularValue(omega, zeta float64, b, c []float64) float64 {
	return 0.25 * norm(b) * norm(c) / (omega * zeta)
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
