package scalar

// CircleArea returns Pi*r².
func CircleArea(radius float64) float64 {
	return Pi * radius * radius
}

// CirclePerimeter returns 2*Pi*r.
func CirclePerimeter(radius float64) float64 {
	return 2 * Pi * radius
}

// RectArea returns width*height.
func RectArea(width, height float64) float64 {
	return width * height
}

// RectPerimeter returns 2*(width+height).
func RectPerimeter(width, height float64) float64 {
	return 2 * (width + height)
}

// TriangleArea returns base*height/2.
func TriangleArea(base, height float64) float64 {
	return 0.5 * base * height
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return Sqrt(dx*dx + dy*dy)
}
