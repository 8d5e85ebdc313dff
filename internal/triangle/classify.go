package triangle

import "math"

// Classification tolerances: sides are compared in absolute length units,
// angles in degrees.
const (
	SideTolerance       = 0.01
	RightAngleTolerance = 0.01
)

// SidesType classifies a triangle by how many sides are equal.
type SidesType string

const (
	Equilateral SidesType = "equilateral"
	Isosceles   SidesType = "isosceles"
	Scalene     SidesType = "scalene"
)

// AnglesType classifies a triangle by its largest angle.
type AnglesType string

const (
	Right  AnglesType = "right"
	Obtuse AnglesType = "obtuse"
	Acute  AnglesType = "acute"
)

// Classification is the pair of types derived from a solved triangle.
type Classification struct {
	Sides  SidesType  `json:"sidesType" yaml:"sidesType"`
	Angles AnglesType `json:"anglesType" yaml:"anglesType"`
}

// Classify derives both types from t. It is total: any Solved yields a value.
func Classify(t Solved) Classification {
	return Classification{Sides: classifySides(t), Angles: classifyAngles(t)}
}

func classifySides(t Solved) SidesType {
	ab := near(t.A, t.B, SideTolerance)
	bc := near(t.B, t.C, SideTolerance)
	ac := near(t.A, t.C, SideTolerance)
	switch {
	case ab && bc:
		return Equilateral
	case ab || bc || ac:
		return Isosceles
	default:
		return Scalene
	}
}

func classifyAngles(t Solved) AnglesType {
	angles := [3]float64{t.Alpha, t.Beta, t.Gamma}
	// Right wins even if float noise pushed another angle past 90°.
	for _, a := range angles {
		if near(a, 90, RightAngleTolerance) {
			return Right
		}
	}
	for _, a := range angles {
		if a > 90 {
			return Obtuse
		}
	}
	return Acute
}

func near(x, y, tol float64) bool {
	return math.Abs(x-y) < tol
}
