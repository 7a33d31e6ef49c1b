// Package utils provides small conversion helpers shared across handlers.
package utils

import "strconv"

// ConvertToInt parses s as an int, returning 0 when it is not a number.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToFloat parses s as a float64, returning 0 when it is not a number.
func ConvertToFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
