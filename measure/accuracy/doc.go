// Package accuracy measures the scalar kernel against reference
// implementations.
//
// [Sweep] samples a function and a reference over an interval and reports
// absolute, RMS and relative errors. [Functions] lists every kernel routine
// with its stdlib reference, a fast approximation from algo-approx where one
// exists, and the interval it is evaluated on. [SineTHD] looks at the kernel
// sine from the spectral side: it measures how much harmonic distortion the
// series truncation leaves in a generated tone.
//
// The package logs through log/slog. It is silent until [SetLogger] is called.
package accuracy
