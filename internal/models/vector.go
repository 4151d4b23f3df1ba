// ABOUTME: Mean-color feature vector used for poster similarity
// ABOUTME: Fixed channel order R, G, B at indices 0, 1, 2
package models

import "math"

// ColorVector is a 3-component mean-color feature: R, G, B channel averages
// in the 0-255 range. It is derived from a cover on demand and never stored.
type ColorVector [3]float64

// Dot returns the dot product of v and w.
func (v ColorVector) Dot(w ColorVector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the Euclidean norm of v.
func (v ColorVector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether v is the zero vector. A zero vector marks a missing
// cover (failed fetch or decode) and is excluded from ranking.
func (v ColorVector) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
