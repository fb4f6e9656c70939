// Package gaelic implements the Scottish Gaelic grammar used by the
// narrator: pronouns, noun phrase forms, prepositional pronouns, lenition and
// possessive constructions.
package gaelic

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PersonGenderNumber is a combination of person, gender and number that is
// meaningfully distinct in Gaelic.
type PersonGenderNumber string

const (
	FirstSingular  PersonGenderNumber = "I"
	FirstPlural    PersonGenderNumber = "we"
	SecondSingular PersonGenderNumber = "you (s)"
	SecondPlural   PersonGenderNumber = "you (pl)"
	ThirdMasculine PersonGenderNumber = "he"
	ThirdFeminine  PersonGenderNumber = "she"
	ThirdPlural    PersonGenderNumber = "they"
)

var tag = language.MustParse("gd")

var pronouns = map[PersonGenderNumber]string{
	FirstSingular:  "mi",
	FirstPlural:    "sinn",
	SecondSingular: "thu",
	SecondPlural:   "sibh",
	ThirdMasculine: "e",
	ThirdFeminine:  "i",
	ThirdPlural:    "iad",
}

// Valid reports whether p is one of the known combinations.
func (p PersonGenderNumber) Valid() bool {
	_, ok := pronouns[p]
	return ok
}

// PersonalPronoun returns the personal pronoun for p. After a relative, future or
// conditional verb form the second person singular is "tu" rather than "thu".
func PersonalPronoun(p PersonGenderNumber, afterRelativeFutureConditional bool) string {
	if p == SecondSingular && afterRelativeFutureConditional {
		return "tu"
	}
	return pronouns[p]
}

var relativeFutureConditionalEndings = []string{"idh", "eadh", "adh", "eas", "as"}

// IsRelativeFutureConditional reports whether verb carries one of the regular
// future, conditional or relative endings. Irregular futures like "thèid" and
// "nì" do not, and keep "thu".
func IsRelativeFutureConditional(verb string) bool {
	verb = strings.ToLower(verb)
	for _, ending := range relativeFutureConditionalEndings {
		if strings.HasSuffix(verb, ending) {
			return true
		}
	}
	return false
}

// SubjectAfter is the form of np used as the subject directly after verb.
func SubjectAfter(verb string, np NounPhrase) string {
	return Definite(np, IsRelativeFutureConditional(verb))
}

// Capitalize upper-cases the first letter of s. Leading apostrophes are
// skipped so that "'s e" becomes "'S e".
func Capitalize(s string) string {
	rest := strings.TrimLeft(s, "'")
	prefix := s[:len(s)-len(rest)]
	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError {
		return s
	}
	return prefix + cases.Upper(tag).String(string(r)) + rest[size:]
}
