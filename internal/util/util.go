// Package util holds small formatting helpers shared by the API and the CLI.
package util

import "strconv"

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n with a 1024-based unit and one decimal, so the
// default upload limit reads "10.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + byteUnits[unit]
}
