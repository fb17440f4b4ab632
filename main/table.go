package main

import (
	"fmt"
	"math"

	"github.com/ohsayan/mathlib/trig"
)

// row is one step around the circle. Deg and Rad are computed independently
// (as a fraction of 360 and of 2π), so Exact shows whether converting Deg
// lands on exactly the same float as Rad.
type row[T trig.Float] struct {
	Step  int
	Deg   trig.DegreeAngle[T]
	Rad   trig.RadianAngle[T]
	Exact bool

	// The step plus a quarter turn, in both operand orders. The result always
	// takes the unit of the right operand.
	DegPlusQuarter trig.RadianAngle[T]
	RadPlusQuarter trig.DegreeAngle[T]
}

func (r row[T]) String() string {
	return fmt.Sprintf("%3d  %10s  %12s  %-5v  %12s  %10s",
		r.Step, r.Deg, r.Rad, r.Exact, r.DegPlusQuarter, r.RadPlusQuarter)
}

// table splits a full turn into the given number of steps, and returns one
// row for each boundary, including both 0 and the full turn.
func table[T trig.Float](steps int) []row[T] {
	full := T(2 * math.Pi)
	quarterDeg := trig.Degrees[T](90)
	quarterRad := trig.Radians(T(0.5 * math.Pi))

	rows := make([]row[T], 0, steps+1)
	for i := 0; i <= steps; i++ {
		d := trig.Degrees(T(360) * T(i) / T(steps))
		r := trig.Radians(T(full*T(i)) / T(steps))

		rows = append(rows, row[T]{
			Step:           i,
			Deg:            d,
			Rad:            r,
			Exact:          r.EqualDegrees(d),
			DegPlusQuarter: d.AddRadians(quarterRad),
			RadPlusQuarter: r.AddDegrees(quarterDeg),
		})
	}

	return rows
}

func validate(steps, precision int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	if precision != 32 && precision != 64 {
		return fmt.Errorf("precision must be 32 or 64, got %d", precision)
	}

	return nil
}
