// Package vec provides 2, 3 and 4 component float32 vectors for engine code.
//
// Vectors are plain value types. Methods with a value receiver return a new
// vector and never alias an operand; the *InPlace methods mutate the receiver
// and return it so calls can be chained:
//
//	v := vec.Vector3{X: 1, Y: 2, Z: 3}
//	v.AddInPlace(vec.One3()).ScaleInPlace(0.5)
//
// Lengths use [scalar.Sqrt], and Equal compares components with
// [scalar.ApproxEqual] instead of bit equality.
//
// # Component indexing
//
// At and Ref take a component index. Indices 0 through N-2 select that
// component and every other index, including negative ones, selects the last
// component: for Vector2, 0 is X and anything else is Y.
package vec
