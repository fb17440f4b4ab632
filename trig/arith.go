package trig

// Arithmetic between two angles of the same unit is applied directly to the
// stored values. Between mixed units, the left operand is converted into the
// unit of the right operand, which is also the unit of the result. So
// deg.AddRadians(rad) is a RadianAngle and rad.AddDegrees(deg) is a
// DegreeAngle, and the two are not generally equal.

// Add returns d + dd.
func (d DegreeAngle[T]) Add(dd DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{d.v + dd.v}
}

// Sub returns d - dd.
func (d DegreeAngle[T]) Sub(dd DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{d.v - dd.v}
}

// Mul returns d * dd.
func (d DegreeAngle[T]) Mul(dd DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{d.v * dd.v}
}

// Div returns d / dd.
func (d DegreeAngle[T]) Div(dd DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{d.v / dd.v}
}

// AddRadians converts d to radians and adds r.
func (d DegreeAngle[T]) AddRadians(r RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{d.IntoRadians() + r.v}
}

// SubRadians converts d to radians and subtracts r.
func (d DegreeAngle[T]) SubRadians(r RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{d.IntoRadians() - r.v}
}

// MulRadians converts d to radians and multiplies it by r.
func (d DegreeAngle[T]) MulRadians(r RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{d.IntoRadians() * r.v}
}

// DivRadians converts d to radians and divides it by r.
func (d DegreeAngle[T]) DivRadians(r RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{d.IntoRadians() / r.v}
}

// Add returns r + rr.
func (r RadianAngle[T]) Add(rr RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{r.v + rr.v}
}

// Sub returns r - rr.
func (r RadianAngle[T]) Sub(rr RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{r.v - rr.v}
}

// Mul returns r * rr.
func (r RadianAngle[T]) Mul(rr RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{r.v * rr.v}
}

// Div returns r / rr.
func (r RadianAngle[T]) Div(rr RadianAngle[T]) RadianAngle[T] {
	return RadianAngle[T]{r.v / rr.v}
}

// AddDegrees converts r to degrees and adds d.
func (r RadianAngle[T]) AddDegrees(d DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{r.IntoDegrees() + d.v}
}

// SubDegrees converts r to degrees and subtracts d.
func (r RadianAngle[T]) SubDegrees(d DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{r.IntoDegrees() - d.v}
}

// MulDegrees converts r to degrees and multiplies it by d.
func (r RadianAngle[T]) MulDegrees(d DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{r.IntoDegrees() * d.v}
}

// DivDegrees converts r to degrees and divides it by d.
func (r RadianAngle[T]) DivDegrees(d DegreeAngle[T]) DegreeAngle[T] {
	return DegreeAngle[T]{r.IntoDegrees() / d.v}
}
