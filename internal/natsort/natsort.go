// Package natsort orders mixed alphanumeric identifiers the way a human
// would: digit runs compare by numeric value, so "2/x" sorts before
// "10/y" instead of after it.
package natsort

import (
	"sort"
	"strings"
)

// Sort sorts keys in place in natural order. The sort is stable, so
// keys that compare equal keep their input order.
func Sort(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		return Less(keys[i], keys[j])
	})
}

// Less reports whether a orders before b. Both strings are split into
// alternating runs of digits and non-digits; digit runs compare
// numerically, everything else byte-wise.
func Less(a, b string) bool {
	ca, cb := chunks(a), chunks(b)

	for i := 0; i < len(ca) && i < len(cb); i++ {
		x, y := ca[i], cb[i]
		if x == y {
			continue
		}
		if isDigits(x) && isDigits(y) {
			if c := compareNumeric(x, y); c != 0 {
				return c < 0
			}
			// same value, different spelling ("01" vs "1"):
			// keep scanning, tie broken below
			continue
		}
		return x < y
	}

	if len(ca) != len(cb) {
		return len(ca) < len(cb)
	}
	return a < b
}

// chunks splits s into maximal runs of digits and non-digits.
func chunks(s string) []string {
	var out []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[i-1]) {
			out = append(out, s[start:i])
			start = i
		}
	}
	return out
}

// compareNumeric compares two digit runs by value without converting
// to int, so arbitrarily long runs cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
