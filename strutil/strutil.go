// Package strutil holds single-string transforms that compose with fp.Map and
// fp.Pipe. Every transform is total over all strings, including invalid
// UTF-8, which is processed rune by rune like the rest of the standard
// library.
package strutil

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// Transform maps one string to another.
type Transform func(string) string

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ToLower returns s with all letters mapped to lower case.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper returns s with all letters mapped to upper case.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// InvertCase swaps the case of every cased letter in s.
func InvertCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// RandomizeCase upper- or lower-cases every letter of s at random.
func RandomizeCase(s string) string {
	return randomizeCase(rand.IntN, s)
}

// RandomizeCaseWith returns a RandomizeCase transform drawing from r, for
// reproducible output.
func RandomizeCaseWith(r *rand.Rand) Transform {
	return func(s string) string {
		return randomizeCase(r.IntN, s)
	}
}

func randomizeCase(intN func(int) int, s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			return r
		}
		if intN(2) == 0 {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}
