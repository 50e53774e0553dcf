package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// nullToken is the spreadsheet division-by-zero error marker. It is treated
// as a null cell for every column, whatever the target type.
const nullToken = "#DIV/0!"

// coerceInt parses a raw cell as an integer, non-strict: an empty cell, the
// error token or any unparseable value yields null rather than an error.
func coerceInt(raw string) null.Int {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == nullToken {
		return null.Int{}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return null.Int{}
	}
	return null.IntFrom(v)
}

// coerceFloat parses a raw cell as a float, normalizing the comma decimal
// separator used by the source locale. Non-strict like coerceInt.
func coerceFloat(raw string) null.Float {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == nullToken {
		return null.Float{}
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

// round2 rounds to 2 decimal places. Applied to every float column after
// coercion, so values leave the loader already display-ready.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round2Null(f null.Float) null.Float {
	if !f.Valid {
		return f
	}
	return null.FloatFrom(round2(f.Float64))
}
