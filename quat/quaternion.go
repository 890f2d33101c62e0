// Package quat implements float32 quaternions for 3D rotations.
//
// A quaternion represents a rotation only while it has unit length. The type
// does not enforce that: Add, Scale and friends may leave it unnormalized, and
// callers normalize when they need a rotation again. Unlike the vector types,
// Normalize has no zero guard, so normalizing the zero quaternion yields NaN
// components.
package quat

import (
	"fmt"

	"github.com/cwbudde/algo-enginemath/scalar"
	"github.com/cwbudde/algo-enginemath/vec"
)

// slerpLinearThreshold is the cosine above which Slerp falls back to a
// normalized linear blend because Acos loses precision.
const slerpLinearThreshold float32 = 0.9995

// Quaternion is x*i + y*j + z*k + w.
type Quaternion struct {
	X, Y, Z, W float32
}

// Identity returns the no-op rotation (0, 0, 0, 1).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle returns the rotation of angle radians about axis, which must
// already be unit length.
func FromAxisAngle(axis vec.Vector3, angle float32) Quaternion {
	half := float64(angle * 0.5)
	s := float32(scalar.Sin(half))
	c := float32(scalar.Cos(half))
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// Mul returns the Hamilton product q*r: applying the result rotates by r
// first, then by q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Scale multiplies every component by s.
func (q Quaternion) Scale(s float32) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Add returns the component-wise sum q + r.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return Quaternion{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

// Sub returns the component-wise difference q - r.
func (q Quaternion) Sub(r Quaternion) Quaternion {
	return Quaternion{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W}
}

// Dot returns the 4D inner product of q and r.
func (q Quaternion) Dot(r Quaternion) float32 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// LengthSquare returns q.Dot(q).
func (q Quaternion) LengthSquare() float32 { return q.Dot(q) }

// Length returns the 4D norm of q.
func (q Quaternion) Length() float32 {
	return float32(scalar.Sqrt(float64(q.LengthSquare())))
}

// Normalize divides q by its length in place. There is no zero check.
func (q *Quaternion) Normalize() {
	mag := q.Length()
	q.X /= mag
	q.Y /= mag
	q.Z /= mag
	q.W /= mag
}

// Normalized returns q divided by its length. There is no zero check.
func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

// Conjugate returns (-x, -y, -z, w).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Rotate rotates v by q through the sandwich product q * (v, 0) * conj(q).
func (q Quaternion) Rotate(v vec.Vector3) vec.Vector3 {
	p := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Mul(p).Mul(q.Conjugate())
	return vec.Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// Equal reports whether every component is approximately equal. q and -q
// describe the same rotation but do not compare equal.
func (q Quaternion) Equal(r Quaternion) bool {
	return scalar.ApproxEqual(float64(q.X), float64(r.X)) &&
		scalar.ApproxEqual(float64(q.Y), float64(r.Y)) &&
		scalar.ApproxEqual(float64(q.Z), float64(r.Z)) &&
		scalar.ApproxEqual(float64(q.W), float64(r.W))
}

// String formats q as "Quaternion(x, y, z, w)".
func (q Quaternion) String() string {
	return fmt.Sprintf("Quaternion(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
