package autofill

import (
	"regexp"
	"unicode"
)

var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// Split separates s into a prefix and the trailing token the sequence is
// inferred from. The token is the last run of word characters; a decimal
// fraction and a leading minus sign are included when the run is numeric.
// Text without a trailing word run has an empty suffix.
func Split(s string) (prefix, suffix string) {
	r := []rune(s)
	i := len(r)
	for i > 0 && isWord(r[i-1]) {
		i--
	}
	if i == len(r) {
		return s, ""
	}

	if allDigits(r[i:]) {
		// 12.5: extend over the integer part when it is a standalone number
		if i >= 2 && r[i-1] == '.' && unicode.IsDigit(r[i-2]) {
			j := i - 1
			for j > 0 && unicode.IsDigit(r[j-1]) {
				j--
			}
			if j == 0 || !isWord(r[j-1]) {
				i = j
			}
		}
		if i >= 1 && r[i-1] == '-' && (i == 1 || unicode.IsSpace(r[i-2])) {
			i--
		}
	}
	return string(r[:i]), string(r[i:])
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func allDigits(r []rune) bool {
	for _, c := range r {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return len(r) > 0
}
