package triangle

import (
	"errors"
	"fmt"
)

// Kind classifies why a solve was rejected.
type Kind int

const (
	KindUnknown Kind = iota
	// KindUnknownSchema: the schema tag is not one of SWS, WSW, SSS, SSW.
	KindUnknownSchema
	// KindSchemaCardinalityMismatch: wrong count or position of supplied fields.
	KindSchemaCardinalityMismatch
	// KindSchemaCrossoverRejected: SSW input whose angle lies between the two sides.
	KindSchemaCrossoverRejected
	// KindAngleNotOppositeGivenSides: SSW input whose angle faces neither side.
	KindAngleNotOppositeGivenSides
	// KindTriangleInequalityViolated: SSS sides that cannot close.
	KindTriangleInequalityViolated
	// KindNoGeometricSolution: the measurements describe no triangle.
	KindNoGeometricSolution
	// KindAngleSumOutOfTolerance: solved angles failed the post-solve check.
	KindAngleSumOutOfTolerance
	// KindInvalidSolvedSides: solved sides failed the post-solve check.
	KindInvalidSolvedSides
)

var kindNames = map[Kind]string{
	KindUnknown:                    "Unknown",
	KindUnknownSchema:              "UnknownSchema",
	KindSchemaCardinalityMismatch:  "SchemaCardinalityMismatch",
	KindSchemaCrossoverRejected:    "SchemaCrossoverRejected",
	KindAngleNotOppositeGivenSides: "AngleNotOppositeGivenSides",
	KindTriangleInequalityViolated: "TriangleInequalityViolated",
	KindNoGeometricSolution:        "NoGeometricSolution",
	KindAngleSumOutOfTolerance:     "AngleSumOutOfTolerance",
	KindInvalidSolvedSides:         "InvalidSolvedSides",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the single error type returned by the engine. Msg is meant for the
// person who typed the input.
type Error struct {
	Kind   Kind
	Schema Schema
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrUnknownSchema              = &Error{Kind: KindUnknownSchema, Msg: "invalid schema"}
	ErrSchemaCardinalityMismatch  = &Error{Kind: KindSchemaCardinalityMismatch, Msg: "invalid input for schema"}
	ErrSchemaCrossoverRejected    = &Error{Kind: KindSchemaCrossoverRejected, Msg: "angle lies between the given sides"}
	ErrAngleNotOppositeGivenSides = &Error{Kind: KindAngleNotOppositeGivenSides, Msg: "angle is opposite neither given side"}
	ErrTriangleInequalityViolated = &Error{Kind: KindTriangleInequalityViolated, Msg: "sides violate the triangle inequality"}
	ErrNoGeometricSolution        = &Error{Kind: KindNoGeometricSolution, Msg: "no triangle exists for the input"}
	ErrAngleSumOutOfTolerance     = &Error{Kind: KindAngleSumOutOfTolerance, Msg: "invalid angles in solved triangle"}
	ErrInvalidSolvedSides         = &Error{Kind: KindInvalidSolvedSides, Msg: "invalid sides in solved triangle"}
)

func newError(kind Kind, schema Schema, format string, args ...any) *Error {
	return &Error{Kind: kind, Schema: schema, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, or KindUnknown if err did not come from
// this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
