package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Fold applies f to each element of in, threading the accumulated value
// through, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// PolygonArea returns the area of the closed polygon whose vertices are pts,
// in order, using the shoelace formula. The last vertex connects back to the
// first; repeating the first point at the end is allowed. Either winding
// order gives the same result.
func PolygonArea(pts []Pt) int64 {
	var area int64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the closed polygon defined by
// the points, measured in manhattan distance.
func PolygonPerimeter(pts []Pt) int64 {
	var perimeter int64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		perimeter += int64(a.MDist(b))
	}
	return perimeter
}

// PolygonInterior returns the number of integer points strictly inside the
// polygon defined by the points.
func PolygonInterior(pts []Pt) int64 {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1

	  i = A - b/2 + 1
	*/
	return PolygonArea(pts) - PolygonPerimeter(pts)/2 + 1
}

// PolygonBoundedPoints returns the number of points with integer coordinates
// inside or on the polygon defined by the points.
func PolygonBoundedPoints(pts []Pt) int64 {
	return PolygonInterior(pts) + PolygonPerimeter(pts)
}
