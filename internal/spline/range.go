package spline

// Range is a closed interval [Min, Max] on the spline's x or y axis.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether x lies in [Min, Max].
func (r Range) Contains(x float64) bool {
	return r.Min <= x && x <= r.Max
}

// Clamp limits x to [Min, Max]. NaN clamps to Min.
func (r Range) Clamp(x float64) float64 {
	if !(x >= r.Min) {
		return r.Min
	}
	if x > r.Max {
		return r.Max
	}
	return x
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Valid reports whether Min <= Max (false for NaN bounds).
func (r Range) Valid() bool {
	return r.Min <= r.Max
}
