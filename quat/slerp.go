package quat

import "github.com/cwbudde/algo-enginemath/scalar"

// Slerp interpolates spherically from a to b along the shorter arc.
//
// When the quaternions are nearly parallel (cosine above 0.9995) it returns
// the normalized linear blend a + (b-a)*t instead. The result at t == 1 may
// be -b rather than b when the shorter arc required flipping b.
func Slerp(a, b Quaternion, t float32) Quaternion {
	dot := a.Dot(b)
	if dot < 0 {
		dot = -dot
		b = b.Scale(-1)
	}

	if dot > slerpLinearThreshold {
		return a.Add(b.Sub(a).Scale(t)).Normalized()
	}

	theta0 := float32(scalar.Acos(float64(dot)))
	theta := theta0 * t

	sinTheta := float32(scalar.Sin(float64(theta)))
	sinTheta0 := float32(scalar.Sin(float64(theta0)))

	s0 := float32(scalar.Cos(float64(theta))) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return a.Scale(s0).Add(b.Scale(s1)).Normalized()
}
