// Package english holds the small amount of English grammar the narrator
// needs: pronoun tables, noun phrase forms, possessives and verb agreement.
package english

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PersonGenderNumber is a combination of person, gender and number that is
// meaningfully distinct in English.
type PersonGenderNumber string

const (
	FirstSingular  PersonGenderNumber = "I"
	FirstPlural    PersonGenderNumber = "we"
	Second         PersonGenderNumber = "you"
	ThirdMasculine PersonGenderNumber = "he"
	ThirdFeminine  PersonGenderNumber = "she"
	ThirdNeuter    PersonGenderNumber = "it"
	ThirdPlural    PersonGenderNumber = "they"
)

type pronounForms struct {
	subject    string
	object     string
	possessive string
}

var pronouns = map[PersonGenderNumber]pronounForms{
	FirstSingular:  {"I", "me", "my"},
	FirstPlural:    {"we", "us", "our"},
	Second:         {"you", "you", "your"},
	ThirdMasculine: {"he", "him", "his"},
	ThirdFeminine:  {"she", "her", "her"},
	ThirdNeuter:    {"it", "it", "its"},
	ThirdPlural:    {"they", "them", "their"},
}

// Valid reports whether p is one of the known combinations.
func (p PersonGenderNumber) Valid() bool {
	_, ok := pronouns[p]
	return ok
}

// IsThirdSingular reports whether p takes the -s form of a present tense verb.
func (p PersonGenderNumber) IsThirdSingular() bool {
	return p == ThirdMasculine || p == ThirdFeminine || p == ThirdNeuter
}

func SubjectPronoun(p PersonGenderNumber) string { return pronouns[p].subject }
func ObjectPronoun(p PersonGenderNumber) string { return pronouns[p].object }
func PossessiveDeterminer(p PersonGenderNumber) string { return pronouns[p].possessive }

// irregularThirdSingular covers the verbs whose -s form is not regular.
var irregularThirdSingular = map[string]string{
	"be":   "is",
	"have": "has",
	"do":   "does",
	"go":   "goes",
}

// Conjugate returns the simple present form of verb agreeing with p.
func Conjugate(verb string, p PersonGenderNumber) string {
	if verb == "be" {
		switch p {
		case FirstSingular:
			return "am"
		case FirstPlural, Second, ThirdPlural:
			return "are"
		}
	}
	if !p.IsThirdSingular() {
		return verb
	}
	if irregular, ok := irregularThirdSingular[verb]; ok {
		return irregular
	}
	switch {
	case strings.HasSuffix(verb, "s"), strings.HasSuffix(verb, "sh"), strings.HasSuffix(verb, "ch"),
		strings.HasSuffix(verb, "x"), strings.HasSuffix(verb, "z"), strings.HasSuffix(verb, "o"):
		return verb + "es"
	case len(verb) > 1 && strings.HasSuffix(verb, "y") && !strings.ContainsAny(verb[len(verb)-2:len(verb)-1], "aeiou"):
		return verb[:len(verb)-1] + "ies"
	}
	return verb + "s"
}

// Capitalize upper-cases the first letter of s and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.English).String(string(r)) + s[size:]
}
