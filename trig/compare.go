package trig

// Equal returns true if both angles store the same value. As with any float
// comparison, NaN is never equal to anything.
func (d DegreeAngle[T]) Equal(dd DegreeAngle[T]) bool {
	return d.v == dd.v
}

// EqualRadians returns true if this angle, converted to radians, is equal to r.
func (d DegreeAngle[T]) EqualRadians(r RadianAngle[T]) bool {
	return r.EqualDegrees(d)
}

// Equal returns true if both angles store the same value.
func (r RadianAngle[T]) Equal(rr RadianAngle[T]) bool {
	return r.v == rr.v
}

// EqualDegrees returns true if d, converted to radians, is equal to this
// angle. Cross-unit comparisons always convert the degree side, whichever
// side it is on.
func (r RadianAngle[T]) EqualDegrees(d DegreeAngle[T]) bool {
	return d.IntoRadians() == r.v
}

// Equal compares two angles of any unit.
func Equal[T Float](a, b Angle[T]) bool {
	switch a := a.(type) {
	case DegreeAngle[T]:
		switch b := b.(type) {
		case DegreeAngle[T]:
			return a.Equal(b)
		case RadianAngle[T]:
			return a.EqualRadians(b)
		}

	case RadianAngle[T]:
		switch b := b.(type) {
		case DegreeAngle[T]:
			return a.EqualDegrees(b)
		case RadianAngle[T]:
			return a.Equal(b)
		}
	}

	// Some other implementation. Fall back to comparing in radians, the same
	// way the cross-unit methods do.
	return a.IntoRadians() == b.IntoRadians()
}
