// internal/utils/math.go
package utils

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Approach moves from toward to by at most step.
func Approach(from, to, step float64) float64 {
	d := to - from
	if d > step {
		return from + step
	}
	if d < -step {
		return from - step
	}
	return to
}
