package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. When lo > hi the upper bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// MoveToward moves current toward target by at most maxDelta without overshooting.
func MoveToward(current, target, maxDelta float64) float64 {
	if current > target {
		current -= maxDelta
		if current < target {
			current = target
		}
	} else if current < target {
		current += maxDelta
		if current > target {
			current = target
		}
	}
	return current
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
