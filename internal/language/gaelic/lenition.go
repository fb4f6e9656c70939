package gaelic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Note: whether sn can lenite is dialect dependent.
var (
	lenitableInitials = "bcdfgmpst"
	unlenitableOnsets = []string{"sg", "sm", "sn", "sp", "st"}
	vowels            = "aeiouàèìòùáéíóú"
)

// CanLenite reports whether word can take lenition in writing.
func CanLenite(word string) bool {
	lower := strings.ToLower(word)
	first, size := utf8.DecodeRuneInString(lower)
	if first == utf8.RuneError || !strings.ContainsRune(lenitableInitials, first) {
		return false
	}
	// already lenited
	if second, _ := utf8.DecodeRuneInString(lower[size:]); second == 'h' {
		return false
	}
	for _, onset := range unlenitableOnsets {
		if strings.HasPrefix(lower, onset) {
			return false
		}
	}
	return true
}

// Lenite inserts the h after the first letter of word if it can lenite.
func Lenite(word string) string {
	if !CanLenite(word) {
		return word
	}
	_, size := utf8.DecodeRuneInString(word)
	h := "h"
	if isAllUpper(word) {
		h = "H"
	}
	return word[:size] + h + word[size:]
}

// StartsWithVowelSound reports whether word is pronounced with a vowel
// onset, which includes lenited f ("fhuair").
func StartsWithVowelSound(word string) bool {
	lower := strings.ToLower(word)
	if strings.HasPrefix(lower, "fh") {
		lower = lower[2:]
		if lower == "" {
			return false
		}
		// "fhl", "fhr" keep a consonant onset
		r, _ := utf8.DecodeRuneInString(lower)
		return strings.ContainsRune(vowels, r)
	}
	r, _ := utf8.DecodeRuneInString(lower)
	return r != utf8.RuneError && strings.ContainsRune(vowels, r)
}

func startsWithLabial(word string) bool {
	r, _ := utf8.DecodeRuneInString(strings.ToLower(word))
	return strings.ContainsRune("bfmp", r)
}

func isAllUpper(word string) bool {
	letters := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters++
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return letters > 1
}
