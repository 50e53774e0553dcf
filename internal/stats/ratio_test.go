package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"
)

func TestYellowCardRatio(t *testing.T) {
	tests := []struct {
		name    string
		yellows null.Int
		matches null.Int
		want    float64
	}{
		{"zero cards over zero matches", null.IntFrom(0), null.IntFrom(0), 0},
		{"two cards over four matches", null.IntFrom(2), null.IntFrom(4), 0.5},
		{"zero cards over five matches", null.IntFrom(0), null.IntFrom(5), 0},
		{"null cards", null.Int{}, null.IntFrom(5), 0},
		{"null matches", null.IntFrom(3), null.Int{}, 0},
		{"three cards over two matches", null.IntFrom(3), null.IntFrom(2), 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YellowCardRatio(tt.yellows, tt.matches))
		})
	}
}
