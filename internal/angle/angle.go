// Package angle holds the degree/radian helpers shared by the triangle solvers.
// Every inverse trigonometric call goes through AcosDeg or AsinDeg so that the
// argument is clamped into [-1, 1] first.
package angle

import "math"

// Straight is the interior angle sum of a plane triangle, in degrees.
const Straight = 180.0

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ClampUnit clamps x into [-1, 1]. Floating point error in a law of cosines
// evaluation can land a few ULPs outside the domain of acos/asin.
func ClampUnit(x float64) float64 {
	return math.Min(1, math.Max(-1, x))
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(deg float64) float64 {
	return math.Sin(ToRadians(deg))
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float64) float64 {
	return math.Cos(ToRadians(deg))
}

// AcosDeg returns acos(x) in degrees after clamping x.
func AcosDeg(x float64) float64 {
	return ToDegrees(math.Acos(ClampUnit(x)))
}

// AsinDeg returns asin(x) in degrees after clamping x.
func AsinDeg(x float64) float64 {
	return ToDegrees(math.Asin(ClampUnit(x)))
}
