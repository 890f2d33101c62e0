// Package scalar provides transcendental and algebraic primitives over float64
// without relying on a platform math library.
//
// Every routine is a stateless pure function built from an iterative or series
// method:
//
//   - [Sqrt]:            Newton-Raphson, 20 fixed iterations
//   - [Exp]:             Taylor series
//   - [Ln], [Log10]:     atanh-style series in y = (x-1)/(x+1)
//   - [Sin], [Cos]:      range reduction modulo 2*Pi, then Taylor series
//   - [Asin], [Atan]:    Taylor series
//   - [Power]:           legacy approximation with a linear fractional part
//   - [PowExact]:        integer part by squaring, fractional part via Exp/Ln
//
// Series accumulate terms while the magnitude of the current term exceeds
// [Epsilon], and never past [MaxSeriesTerms] terms.
//
// # Domain errors
//
// Inputs outside a function's domain do not panic and do not return an error.
// They produce a non-finite sentinel instead: Sqrt, Ln, Asin and Factorial
// return -Inf, Acos returns +Inf and Tan returns +Inf where the cosine is
// exactly zero. Callers that prefer Go errors can use the *Checked variants,
// which report [ErrDomain].
package scalar
