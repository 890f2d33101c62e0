package vec

import (
	"fmt"

	"github.com/cwbudde/algo-enginemath/scalar"
)

// Vector3 is a 3D vector.
type Vector3 struct {
	X, Y, Z float32
}

// Zero3 returns (0, 0, 0).
func Zero3() Vector3 { return Vector3{} }

// One3 returns (1, 1, 1).
func One3() Vector3 { return Vector3{1, 1, 1} }

// Lerp3 interpolates linearly from a to b. t is not clamped.
func Lerp3(a, b Vector3, t float32) Vector3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Distance3 returns the length of b-a.
func Distance3(a, b Vector3) float32 {
	return b.Sub(a).Length()
}

// Add returns the component-wise sum v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides every component by s. A zero s follows IEEE-754.
func (v Vector3) Div(s float32) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// AddInPlace adds o to v and returns v for chaining.
func (v *Vector3) AddInPlace(o Vector3) *Vector3 {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

// SubInPlace subtracts o from v and returns v.
func (v *Vector3) SubInPlace(o Vector3) *Vector3 {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

// ScaleInPlace multiplies v by s and returns v.
func (v *Vector3) ScaleInPlace(s float32) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// DivInPlace divides v by s and returns v.
func (v *Vector3) DivInPlace(s float32) *Vector3 {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// Equal reports whether every component is approximately equal.
func (v Vector3) Equal(o Vector3) bool {
	return scalar.ApproxEqual(float64(v.X), float64(o.X)) &&
		scalar.ApproxEqual(float64(v.Y), float64(o.Y)) &&
		scalar.ApproxEqual(float64(v.Z), float64(o.Z))
}

// Ref returns a pointer to component i: 0 is X, 1 is Y, any other index is Z.
func (v *Vector3) Ref(i int) *float32 {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	default:
		return &v.Z
	}
}

// At returns component i with the same index mapping as Ref.
func (v Vector3) At(i int) float32 { return *v.Ref(i) }

// LengthSquare returns the squared Euclidean length.
func (v Vector3) LengthSquare() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean length, computed with scalar.Sqrt.
func (v Vector3) Length() float32 {
	return float32(scalar.Sqrt(float64(v.LengthSquare())))
}

// Dot returns the inner product of v and o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Normalized returns v scaled to unit length, or the zero vector when v has
// zero length.
func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Div(l)
}

// Normalize scales v to unit length in place. A zero vector stays zero.
func (v *Vector3) Normalize() { *v = v.Normalized() }

// SetPosition overwrites v with p.
func (v *Vector3) SetPosition(p Vector3) { *v = p }

// Move translates v by offset.
func (v *Vector3) Move(offset Vector3) { v.AddInPlace(offset) }

// ScaleBy multiplies v component-wise by factors.
func (v *Vector3) ScaleBy(factors Vector3) {
	v.X *= factors.X
	v.Y *= factors.Y
	v.Z *= factors.Z
}

// String formats v as "Vector3(x, ...)".
func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", v.X, v.Y, v.Z)
}
