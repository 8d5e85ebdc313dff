// Package triangle is the triangle-solving engine. A Spec names a congruence
// schema and carries the three measurements that schema needs; Solve checks the
// input against the schema, computes the missing sides and angles, verifies the
// result and classifies it.
//
// The package is pure: no logging, no I/O, no shared mutable state. Every
// exported function is safe to call from multiple goroutines.
package triangle

import (
	"math"
	"strings"

	"trisolve/internal/angle"
)

// Schema is the congruence schema a Spec is presented in.
type Schema string

const (
	SWS Schema = "SWS" // two sides and the included angle
	WSW Schema = "WSW" // two angles and the included side
	SSS Schema = "SSS" // three sides
	SSW Schema = "SSW" // two sides and a non-included angle (ambiguous case)
)

// Schemas lists the supported schemas in presentation order.
var Schemas = []Schema{SWS, WSW, SSS, SSW}

// ParseSchema resolves a schema tag case-insensitively.
func ParseSchema(s string) (Schema, error) {
	tag := Schema(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := solvers[tag]; !ok {
		return "", newError(KindUnknownSchema, tag, "invalid schema %q", s)
	}
	return tag, nil
}

func (s Schema) String() string { return string(s) }

// Field names one of the six measurements of a triangle.
type Field int

const (
	FieldA Field = iota
	FieldB
	FieldC
	FieldAlpha
	FieldBeta
	FieldGamma
)

// SideFields and AngleFields list the fields by kind, in letter order.
var (
	SideFields  = [3]Field{FieldA, FieldB, FieldC}
	AngleFields = [3]Field{FieldAlpha, FieldBeta, FieldGamma}
)

var fieldNames = [...]string{"a", "b", "c", "alpha", "beta", "gamma"}

func (f Field) String() string {
	if f < FieldA || f > FieldGamma {
		return "unknown"
	}
	return fieldNames[f]
}

// IsSide reports whether f is a side length.
func (f Field) IsSide() bool { return f <= FieldC }

// Opposite maps a side to the angle facing it and back: a <-> alpha.
func (f Field) Opposite() Field {
	if f.IsSide() {
		return f + 3
	}
	return f - 3
}

// Adjacent returns the two fields of the other kind that touch f. For an angle
// these are the sides enclosing it; for a side, the angles at its ends.
func (f Field) Adjacent() [2]Field {
	skip := f.Opposite()
	base := FieldA
	if f.IsSide() {
		base = FieldAlpha
	}
	var out [2]Field
	n := 0
	for g := base; g < base+3; g++ {
		if g != skip {
			out[n] = g
			n++
		}
	}
	return out
}

// Spec is the caller's partial description of a triangle. A measurement counts
// as supplied only when it is finite and strictly positive; zero, negative and
// NaN values all mean "not given".
type Spec struct {
	Schema Schema  `json:"schema" yaml:"schema"`
	A      float64 `json:"a,omitempty" yaml:"a,omitempty"`
	B      float64 `json:"b,omitempty" yaml:"b,omitempty"`
	C      float64 `json:"c,omitempty" yaml:"c,omitempty"`
	Alpha  float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta   float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
	Gamma  float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`
}

// Value returns the raw value stored for f.
func (s Spec) Value(f Field) float64 {
	switch f {
	case FieldA:
		return s.A
	case FieldB:
		return s.B
	case FieldC:
		return s.C
	case FieldAlpha:
		return s.Alpha
	case FieldBeta:
		return s.Beta
	case FieldGamma:
		return s.Gamma
	}
	return 0
}

// With returns a copy of s with f set to v.
func (s Spec) With(f Field, v float64) Spec {
	switch f {
	case FieldA:
		s.A = v
	case FieldB:
		s.B = v
	case FieldC:
		s.C = v
	case FieldAlpha:
		s.Alpha = v
	case FieldBeta:
		s.Beta = v
	case FieldGamma:
		s.Gamma = v
	}
	return s
}

// Supplied reports whether f carries a usable value.
func (s Spec) Supplied(f Field) bool {
	return isSupplied(s.Value(f))
}

func isSupplied(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// supplied splits the given fields into sides and angles, in letter order.
func (s Spec) supplied() (sides, angles []Field) {
	for _, f := range SideFields {
		if s.Supplied(f) {
			sides = append(sides, f)
		}
	}
	for _, f := range AngleFields {
		if s.Supplied(f) {
			angles = append(angles, f)
		}
	}
	return sides, angles
}

// Solved is a fully determined triangle: three side lengths and three angles in
// degrees.
type Solved struct {
	A     float64 `json:"a" yaml:"a"`
	B     float64 `json:"b" yaml:"b"`
	C     float64 `json:"c" yaml:"c"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
	Beta  float64 `json:"beta" yaml:"beta"`
	Gamma float64 `json:"gamma" yaml:"gamma"`
}

// Value returns the measurement stored for f.
func (t Solved) Value(f Field) float64 {
	return Spec{A: t.A, B: t.B, C: t.C, Alpha: t.Alpha, Beta: t.Beta, Gamma: t.Gamma}.Value(f)
}

func (t *Solved) set(f Field, v float64) {
	switch f {
	case FieldA:
		t.A = v
	case FieldB:
		t.B = v
	case FieldC:
		t.C = v
	case FieldAlpha:
		t.Alpha = v
	case FieldBeta:
		t.Beta = v
	case FieldGamma:
		t.Gamma = v
	}
}

// Present builds a Spec in the given schema carrying only the listed fields of t.
// It is how a solved triangle is re-expressed in another schema.
func (t Solved) Present(schema Schema, fields ...Field) Spec {
	spec := Spec{Schema: schema}
	for _, f := range fields {
		spec = spec.With(f, t.Value(f))
	}
	return spec
}

// Perimeter returns a + b + c.
func (t Solved) Perimeter() float64 {
	return t.A + t.B + t.C
}

// Area returns the enclosed area, ½·b·c·sin(alpha).
func (t Solved) Area() float64 {
	return 0.5 * t.B * t.C * angle.SinDeg(t.Alpha)
}
