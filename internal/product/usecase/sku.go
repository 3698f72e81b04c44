package usecase

import (
	"encoding/binary"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// makeSKU derives a variant SKU from its category, color and size labels,
// e.g. ("Camisetas", "Azul", "M") -> "CAM-AZU-M". Uniqueness across the
// tenant is checked at insert time, with a numeric suffix appended on clash.
func makeSKU(category, color, size string) string {
	return prefix(category, 3) + "-" + prefix(color, 3) + "-" + normalize(size)
}

func prefix(s string, n int) string {
	norm := normalize(s)
	if len(norm) > n {
		return norm[:n]
	}
	return norm
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// makeBarcode generates a 13-digit numeric code for variants created without
// a scanned one.
func makeBarcode() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8]) % 10_000_000_000_000
	digits := make([]byte, 13)
	for i := 12; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}
