package scalar

import "testing"

var benchSink float64

func BenchmarkSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Sqrt(float64(i%1000) + 0.5)
	}
}

func BenchmarkSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Sin(float64(i%628) * 0.01)
	}
}

func BenchmarkExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Exp(float64(i%100)*0.05 - 2.5)
	}
}

func BenchmarkLn(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Ln(float64(i%1000) + 0.5)
	}
}

func BenchmarkAsinNearBoundary(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Asin(0.9995)
	}
}
