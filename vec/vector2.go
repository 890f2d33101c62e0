package vec

import (
	"fmt"

	"github.com/cwbudde/algo-enginemath/scalar"
)

// Vector2 is a 2D vector.
type Vector2 struct {
	X, Y float32
}

// Zero2 returns (0, 0).
func Zero2() Vector2 { return Vector2{} }

// One2 returns (1, 1).
func One2() Vector2 { return Vector2{1, 1} }

// Lerp2 interpolates linearly from a to b. t is not clamped.
func Lerp2(a, b Vector2, t float32) Vector2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Distance2 returns the length of b-a.
func Distance2(a, b Vector2) float32 {
	return b.Sub(a).Length()
}

// Add returns the component-wise sum v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies every component by s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Div divides every component by s. A zero s follows IEEE-754.
func (v Vector2) Div(s float32) Vector2 { return Vector2{v.X / s, v.Y / s} }

// AddInPlace adds o to v and returns v for chaining.
func (v *Vector2) AddInPlace(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// SubInPlace subtracts o from v and returns v.
func (v *Vector2) SubInPlace(o Vector2) *Vector2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// ScaleInPlace multiplies v by s and returns v.
func (v *Vector2) ScaleInPlace(s float32) *Vector2 {
	v.X *= s
	v.Y *= s
	return v
}

// DivInPlace divides v by s and returns v.
func (v *Vector2) DivInPlace(s float32) *Vector2 {
	v.X /= s
	v.Y /= s
	return v
}

// Equal reports whether every component is approximately equal.
func (v Vector2) Equal(o Vector2) bool {
	return scalar.ApproxEqual(float64(v.X), float64(o.X)) &&
		scalar.ApproxEqual(float64(v.Y), float64(o.Y))
}

// Ref returns a pointer to component i: 0 is X, any other index is Y.
func (v *Vector2) Ref(i int) *float32 {
	if i == 0 {
		return &v.X
	}
	return &v.Y
}

// At returns component i with the same index mapping as Ref.
func (v Vector2) At(i int) float32 { return *v.Ref(i) }

// LengthSquare returns the squared Euclidean length.
func (v Vector2) LengthSquare() float32 { return v.X*v.X + v.Y*v.Y }

// Length returns the Euclidean length, computed with scalar.Sqrt.
func (v Vector2) Length() float32 {
	return float32(scalar.Sqrt(float64(v.LengthSquare())))
}

// Dot returns the inner product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o,
// x1*y2 - y1*x2.
func (v Vector2) Cross(o Vector2) float32 { return v.X*o.Y - v.Y*o.X }

// Normalized returns v scaled to unit length, or the zero vector when v has
// zero length.
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.Div(l)
}

// Normalize scales v to unit length in place. A zero vector stays zero.
func (v *Vector2) Normalize() { *v = v.Normalized() }

// SetPosition overwrites v with p.
func (v *Vector2) SetPosition(p Vector2) { *v = p }

// Move translates v by offset.
func (v *Vector2) Move(offset Vector2) { v.AddInPlace(offset) }

// ScaleBy multiplies v component-wise by factors.
func (v *Vector2) ScaleBy(factors Vector2) {
	v.X *= factors.X
	v.Y *= factors.Y
}

// String formats v as "Vector2(x, ...)".
func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", v.X, v.Y)
}
