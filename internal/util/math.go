package util

// Coerce returns the given value, limited to the range [min, max]
func Coerce(value float64, min float64, max float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// CoerceInt returns the given value, limited to the range [min, max]
func CoerceInt(value int, min int, max int) int {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// Ratio calculates the ratio that target has in comparison to rangeMin and rangeMax
// Make sure that:
// rangeMin <= target <= rangeMax
// rangeMax - rangeMin != 0
func Ratio(target float64, rangeMin float64, rangeMax float64) float64 {
	return (target - rangeMin) / (rangeMax - rangeMin)
}
