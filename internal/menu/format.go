package menu

import "strconv"

// FormatValue is the default numeric formatter: shortest representation that
// round-trips.
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// FormatFixed returns a formatter with a fixed number of decimals.
func FormatFixed(precision int) FormatValueFunc {
	return func(value float64) string {
		return strconv.FormatFloat(value, 'f', precision, 64)
	}
}

// FormatUnit returns a fixed-precision formatter with a unit suffix.
func FormatUnit(precision int, unit string) FormatValueFunc {
	fixed := FormatFixed(precision)
	return func(value float64) string {
		return fixed(value) + unit
	}
}
