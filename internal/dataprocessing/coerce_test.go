package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int64
		valid bool
	}{
		{"plain integer", "7", 7, true},
		{"negative integer", "-2", -2, true},
		{"surrounding whitespace", "  12 ", 12, true},
		{"empty cell", "", 0, false},
		{"division error token", "#DIV/0!", 0, false},
		{"garbage text", "n/a", 0, false},
		{"float-looking cell", "3.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceInt(tt.raw)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Int64)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		valid bool
	}{
		{"plain float", "0.75", 0.75, true},
		{"comma decimal separator", "3,50", 3.50, true},
		{"integer-valued cell", "4", 4.0, true},
		{"surrounding whitespace", " 0,5 ", 0.5, true},
		{"empty cell", "", 0, false},
		{"division error token", "#DIV/0!", 0, false},
		{"garbage text", "abc", 0, false},
		{"multiple comma separators", "1,2,3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceFloat(tt.raw)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.InDelta(t, tt.want, got.Float64, 1e-9)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.67, round2(2.0/3.0))
	assert.Equal(t, 1.5, round2(1.499999999))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, -0.33, round2(-1.0/3.0))
}
