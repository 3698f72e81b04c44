package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSKU(t *testing.T) {
	tests := []struct {
		category string
		color    string
		size     string
		want     string
	}{
		{"Camisetas", "Azul", "M", "CAM-AZU-M"},
		{"Calcas", "Preto", "42", "CAL-PRE-42"},
		{"Bermudas", "Verde Escuro", "GG", "BER-VER-GG"},
		{"T-Shirts", "Off White", "P", "TSH-OFF-P"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, makeSKU(tt.category, tt.color, tt.size))
	}
}

func TestPrefix_ShorterThanN(t *testing.T) {
	assert.Equal(t, "PP", prefix("pp", 3))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "VERDEAGUA", normalize("Verde Agua"))
	assert.Equal(t, "42", normalize(" 42 "))
}

func TestMakeBarcode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := makeBarcode()
		assert.Len(t, code, 13)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
		seen[code] = true
	}
	// Random codes should not collide in a small sample.
	assert.Greater(t, len(seen), 90)
}
