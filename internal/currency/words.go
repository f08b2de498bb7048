package currency

import (
	"fmt"
	"strings"

	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
)

var unitWords = [20]string{
	"", "Satu", "Dua", "Tiga", "Empat", "Lima", "Enam", "Tujuh", "Delapan", "Sembilan",
	"Sepuluh", "Sebelas", "Dua Belas", "Tiga Belas", "Empat Belas", "Lima Belas",
	"Enam Belas", "Tujuh Belas", "Delapan Belas", "Sembilan Belas",
}

var tensWords = [10]string{
	"", "Sepuluh", "Dua Puluh", "Tiga Puluh", "Empat Puluh", "Lima Puluh",
	"Enam Puluh", "Tujuh Puluh", "Delapan Puluh", "Sembilan Puluh",
}

var scaleWords = []string{"", "Ribu", "Juta", "Miliar", "Triliun", "Kuadriliun"}

const hundredWord = "Ratus"

// MaxCountable is the largest value CountableNumber accepts.
const MaxCountable int64 = 999_999_999_999_999_999

// CountableNumber spells n in Indonesian, one capitalised word per token:
//
//	CountableNumber(1234567)
//	// "Satu Juta Dua Ratus Tiga Puluh Empat Ribu Lima Ratus Enam Puluh Tujuh"
//
// Zero spells as "". Negative values and values above MaxCountable
// return ErrInvalidInput.
func CountableNumber(n int64) (string, error) {
	if n < 0 || n > MaxCountable {
		return "", fmt.Errorf("countable number %d: %w", n, perrors.ErrInvalidInput)
	}

	// Chunks are collected least significant first and emitted in reverse.
	var chunks []string
	for scale := 0; n > 0; scale++ {
		chunk := int(n % 1000)
		n /= 1000
		if chunk == 0 {
			continue
		}
		words := spellChunk(chunk)
		if scaleWords[scale] != "" {
			words += " " + scaleWords[scale]
		}
		chunks = append(chunks, words)
	}

	var b strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(chunks[i])
	}
	return strings.TrimSpace(b.String()), nil
}

// spellChunk spells a value in 1..999.
func spellChunk(n int) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, unitWords[h], hundredWord)
	}
	switch r := n % 100; {
	case r == 0:
	case r < 20:
		parts = append(parts, unitWords[r])
	default:
		parts = append(parts, tensWords[r/10])
		if r%10 > 0 {
			parts = append(parts, unitWords[r%10])
		}
	}
	return strings.Join(parts, " ")
}
