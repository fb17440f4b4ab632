// Package trig provides two angle types, DegreeAngle and RadianAngle, which
// carry their unit in the type so that degrees and radians can't be mixed up
// by accident.
//
// Arithmetic between the two units always resolves to the unit of the right
// hand operand. The left operand is converted first:
//
//	Degrees(90.0).AddRadians(Radians(math.Pi))  // RadianAngle
//	Radians(math.Pi).AddDegrees(Degrees(90.0))  // DegreeAngle
package trig

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of numeric types an angle can be stored as.
type Float interface {
	constraints.Float
}

// Pi at each supported precision, for building angles like 0.5*Pi32.
const (
	Pi32 float32 = math.Pi
	Pi64 float64 = math.Pi
)

// Unit identifies which unit an angle is stored in.
type Unit int

const (
	UnitDegrees Unit = iota
	UnitRadians
)

func (u Unit) String() string {
	switch u {
	case UnitDegrees:
		return "degrees"
	case UnitRadians:
		return "radians"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Angle is implemented by DegreeAngle and RadianAngle.
type Angle[T Float] interface {
	Value() T
	Unit() Unit
	IntoRadians() T
	IntoDegrees() T
	String() string
}

// DegreeAngle is an angle in degrees. It is never normalized, so -90 and 450
// are both valid and are kept as they are.
type DegreeAngle[T Float] struct {
	v T
}

// RadianAngle is an angle in radians. Like DegreeAngle, it is not normalized.
type RadianAngle[T Float] struct {
	v T
}

// Degrees returns a new DegreeAngle.
func Degrees[T Float](v T) DegreeAngle[T] {
	return DegreeAngle[T]{v}
}

// Radians returns a new RadianAngle.
func Radians[T Float](v T) RadianAngle[T] {
	return RadianAngle[T]{v}
}

// Rad converts degrees to radians.
func Rad[T Float](degrees T) T {
	// The explicit conversion keeps the product from being fused into a
	// subsequent add.
	return T(degrees * T(math.Pi/180))
}

// Deg converts radians to degrees.
func Deg[T Float](radians T) T {
	return T(radians * T(180/math.Pi))
}

func (d DegreeAngle[T]) Value() T {
	return d.v
}

func (d DegreeAngle[T]) Unit() Unit {
	return UnitDegrees
}

// IntoRadians returns the angle converted to radians.
func (d DegreeAngle[T]) IntoRadians() T {
	return Rad(d.v)
}

// IntoDegrees returns the stored value unchanged.
func (d DegreeAngle[T]) IntoDegrees() T {
	return d.v
}

// ToRadians returns a new RadianAngle equivalent to this one.
func (d DegreeAngle[T]) ToRadians() RadianAngle[T] {
	return RadianAngle[T]{d.IntoRadians()}
}

func (d DegreeAngle[T]) ToDegrees() DegreeAngle[T] {
	return d
}

func (d DegreeAngle[T]) String() string {
	return fmt.Sprintf("%+.2f°", d.v)
}

func (r RadianAngle[T]) Value() T {
	return r.v
}

func (r RadianAngle[T]) Unit() Unit {
	return UnitRadians
}

// IntoRadians returns the stored value unchanged.
func (r RadianAngle[T]) IntoRadians() T {
	return r.v
}

// IntoDegrees returns the angle converted to degrees.
func (r RadianAngle[T]) IntoDegrees() T {
	return Deg(r.v)
}

func (r RadianAngle[T]) ToRadians() RadianAngle[T] {
	return r
}

// ToDegrees returns a new DegreeAngle equivalent to this one.
func (r RadianAngle[T]) ToDegrees() DegreeAngle[T] {
	return DegreeAngle[T]{r.IntoDegrees()}
}

func (r RadianAngle[T]) String() string {
	return fmt.Sprintf("%+.4f rad", r.v)
}
