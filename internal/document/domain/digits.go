package domain

import (
	"strings"
)

// ExtractDigits removes every character that is not an ASCII decimal digit,
// preserving the order of the remaining ones. It is idempotent.
func ExtractDigits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CountDigits returns how many digits ExtractDigits would keep.
func CountDigits(input string) int {
	n := 0
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}
