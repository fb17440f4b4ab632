package trig

import (
	"fmt"
)

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// Apply returns lhs <op> rhs, for callers which only know the units of their
// operands at runtime. The result has the same unit as rhs, exactly as if the
// matching method had been called.
//
// Apply panics if op is unknown, or if either operand is not a DegreeAngle or
// RadianAngle.
func Apply[T Float](op Operator, lhs, rhs Angle[T]) Angle[T] {
	switch l := lhs.(type) {
	case DegreeAngle[T]:
		switch r := rhs.(type) {
		case DegreeAngle[T]:
			return degDeg(op, l, r)
		case RadianAngle[T]:
			return degRad(op, l, r)
		}

	case RadianAngle[T]:
		switch r := rhs.(type) {
		case DegreeAngle[T]:
			return radDeg(op, l, r)
		case RadianAngle[T]:
			return radRad(op, l, r)
		}
	}

	panic(fmt.Sprintf("trig: can't apply %s to %T and %T", op, lhs, rhs))
}

func degDeg[T Float](op Operator, l, r DegreeAngle[T]) DegreeAngle[T] {
	switch op {
	case OpAdd:
		return l.Add(r)
	case OpSub:
		return l.Sub(r)
	case OpMul:
		return l.Mul(r)
	case OpDiv:
		return l.Div(r)
	}
	panic("invalid operator: " + op.String())
}

func degRad[T Float](op Operator, l DegreeAngle[T], r RadianAngle[T]) RadianAngle[T] {
	switch op {
	case OpAdd:
		return l.AddRadians(r)
	case OpSub:
		return l.SubRadians(r)
	case OpMul:
		return l.MulRadians(r)
	case OpDiv:
		return l.DivRadians(r)
	}
	panic("invalid operator: " + op.String())
}

func radDeg[T Float](op Operator, l RadianAngle[T], r DegreeAngle[T]) DegreeAngle[T] {
	switch op {
	case OpAdd:
		return l.AddDegrees(r)
	case OpSub:
		return l.SubDegrees(r)
	case OpMul:
		return l.MulDegrees(r)
	case OpDiv:
		return l.DivDegrees(r)
	}
	panic("invalid operator: " + op.String())
}

func radRad[T Float](op Operator, l, r RadianAngle[T]) RadianAngle[T] {
	switch op {
	case OpAdd:
		return l.Add(r)
	case OpSub:
		return l.Sub(r)
	case OpMul:
		return l.Mul(r)
	case OpDiv:
		return l.Div(r)
	}
	panic("invalid operator: " + op.String())
}
