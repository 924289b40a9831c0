package domain

import (
	"strings"
)

// pattern describes a fixed punctuation skeleton as digit groups joined by separators.
// open is written before the first digit once the first separator is reached.
type pattern struct {
	open       string
	groups     []int
	separators []string
}

var (
	cpfPattern = pattern{
		groups:     []int{3, 3, 3, 2},
		separators: []string{".", ".", "-"},
	}
	cnpjPattern = pattern{
		groups:     []int{2, 3, 3, 4, 2},
		separators: []string{".", ".", "/", "-"},
	}
	fixedLinePattern = pattern{
		open:       "(",
		groups:     []int{2, 4, 4},
		separators: []string{") ", "-"},
	}
	mobilePattern = pattern{
		open:       "(",
		groups:     []int{2, 5, 4},
		separators: []string{") ", "-"},
	}
)

// capacity returns the number of digits the pattern holds.
func (p pattern) capacity() int {
	n := 0
	for _, g := range p.groups {
		n += g
	}
	return n
}

// apply overlays the pattern on digits. A separator is written only when at least
// one digit follows it, and digits beyond the pattern capacity are dropped.
func (p pattern) apply(digits string) string {
	if len(digits) > p.capacity() {
		digits = digits[:p.capacity()]
	}
	if digits == "" {
		return ""
	}

	var b strings.Builder
	if len(digits) > p.groups[0] {
		b.WriteString(p.open)
	}

	pos := 0
	for i, size := range p.groups {
		if pos >= len(digits) {
			break
		}
		if i > 0 {
			b.WriteString(p.separators[i-1])
		}
		end := min(pos+size, len(digits))
		b.WriteString(digits[pos:end])
		pos = end
	}

	return b.String()
}

// ApplyMask strips non-digits from value and renders the remaining digits with the
// mask of the given kind: DDD.DDD.DDD-DD for individuals and DD.DDD.DDD/DDDD-DD
// for organizations. Partial input is punctuated progressively and extra digits
// are dropped. Unknown kinds are rendered with the individual mask.
func ApplyMask(kind Kind, value string) string {
	digits := ExtractDigits(value)
	if kind == KindOrganization {
		return cnpjPattern.apply(digits)
	}
	return cpfPattern.apply(digits)
}
