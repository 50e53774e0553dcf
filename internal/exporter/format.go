package exporter

import (
	"fmt"
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// formatNullInt renders a nullable integer cell, empty when null.
func formatNullInt(v null.Int) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

// formatNullFloat renders a nullable float cell with exactly 2 decimal
// places, empty when null. Matches the loader's rounding contract.
func formatNullFloat(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return fmt.Sprintf("%.2f", v.Float64)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}
