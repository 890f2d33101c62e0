package vec

import (
	"fmt"

	"github.com/cwbudde/algo-enginemath/scalar"
)

// Vector4 is a 4D vector. It has no cross product.
type Vector4 struct {
	X, Y, Z, W float32
}

// Zero4 returns (0, 0, 0, 0).
func Zero4() Vector4 { return Vector4{} }

// One4 returns (1, 1, 1, 1).
func One4() Vector4 { return Vector4{1, 1, 1, 1} }

// Lerp4 interpolates linearly from a to b. t is not clamped.
func Lerp4(a, b Vector4, t float32) Vector4 {
	return a.Add(b.Sub(a).Scale(t))
}

// Distance4 returns the length of b-a.
func Distance4(a, b Vector4) float32 {
	return b.Sub(a).Length()
}

// Add returns the component-wise sum v + o.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference v - o.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale multiplies every component by s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div divides every component by s. A zero s follows IEEE-754.
func (v Vector4) Div(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// AddInPlace adds o to v and returns v for chaining.
func (v *Vector4) AddInPlace(o Vector4) *Vector4 {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	v.W += o.W
	return v
}

// SubInPlace subtracts o from v and returns v.
func (v *Vector4) SubInPlace(o Vector4) *Vector4 {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	v.W -= o.W
	return v
}

// ScaleInPlace multiplies v by s and returns v.
func (v *Vector4) ScaleInPlace(s float32) *Vector4 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
	return v
}

// DivInPlace divides v by s and returns v.
func (v *Vector4) DivInPlace(s float32) *Vector4 {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
	return v
}

// Equal reports whether every component is approximately equal.
func (v Vector4) Equal(o Vector4) bool {
	return scalar.ApproxEqual(float64(v.X), float64(o.X)) &&
		scalar.ApproxEqual(float64(v.Y), float64(o.Y)) &&
		scalar.ApproxEqual(float64(v.Z), float64(o.Z)) &&
		scalar.ApproxEqual(float64(v.W), float64(o.W))
}

// Ref returns a pointer to component i: 0 to 2 select X, Y, Z and any other
// index selects W.
func (v *Vector4) Ref(i int) *float32 {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	default:
		return &v.W
	}
}

// At returns component i with the same index mapping as Ref.
func (v Vector4) At(i int) float32 { return *v.Ref(i) }

// LengthSquare returns the squared Euclidean length.
func (v Vector4) LengthSquare() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the Euclidean length, computed with scalar.Sqrt.
func (v Vector4) Length() float32 {
	return float32(scalar.Sqrt(float64(v.LengthSquare())))
}

// Dot returns the inner product of v and o.
func (v Vector4) Dot(o Vector4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Normalized returns v scaled to unit length, or the zero vector when v has
// zero length.
func (v Vector4) Normalized() Vector4 {
	l := v.Length()
	if l == 0 {
		return Vector4{}
	}
	return v.Div(l)
}

// Normalize scales v to unit length in place. A zero vector stays zero.
func (v *Vector4) Normalize() { *v = v.Normalized() }

// SetPosition overwrites v with p.
func (v *Vector4) SetPosition(p Vector4) { *v = p }

// Move translates v by offset.
func (v *Vector4) Move(offset Vector4) { v.AddInPlace(offset) }

// ScaleBy multiplies v component-wise by factors.
func (v *Vector4) ScaleBy(factors Vector4) {
	v.X *= factors.X
	v.Y *= factors.Y
	v.Z *= factors.Z
	v.W *= factors.W
}

// String formats v as "Vector4(x, ...)".
func (v Vector4) String() string {
	return fmt.Sprintf("Vector4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
