package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"uppercase with comma", "SANCHEZ LAYA, PAU", "sanchez-laya-pau"},
		{"catalan accents", "Assistències i Gràfics", "assistencies-i-grafics"},
		{"cedilla", "Barça", "barca"},
		{"whitespace runs", "  doble   espai  ", "doble-espai"},
		{"underscores become hyphens", "nom_compost_llarg", "nom-compost-llarg"},
		{"existing hyphens collapse", "ja--separat", "ja-separat"},
		{"punctuation dropped", "O'BRIEN (JR.)", "obrien-jr"},
		{"digits kept", "Equip B 2026", "equip-b-2026"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIsStable(t *testing.T) {
	in := "GISBERT PEREZ, ORIOL"
	assert.Equal(t, Make(in), Make(Make(in)), "slugging a slug is a no-op")
}
