package gaelic

// Noun holds the authored forms of a common noun. Definite and Dative
// include the article ("an claidheamh", "a' chlaidheamh").
type Noun struct {
	Definite   string
	Indefinite string
	Dative     string
	PGN        PersonGenderNumber
}

// NounPhrase is one of Pronoun, ProperName or BareNoun.
type NounPhrase interface {
	PersonGenderNumber() PersonGenderNumber
	isNounPhrase()
}

type Pronoun struct {
	PGN PersonGenderNumber
}

type ProperName struct {
	Base     string
	Vocative string
	PGN      PersonGenderNumber
}

type BareNoun struct {
	Noun Noun
}

func (p Pronoun) PersonGenderNumber() PersonGenderNumber { return p.PGN }
func (p ProperName) PersonGenderNumber() PersonGenderNumber { return p.PGN }
func (b BareNoun) PersonGenderNumber() PersonGenderNumber { return b.Noun.PGN }

func (Pronoun) isNounPhrase() {}
func (ProperName) isNounPhrase() {}
func (BareNoun) isNounPhrase() {}

// Indefinite is the form used when introducing an entity.
func Indefinite(np NounPhrase, afterRelativeFutureConditional bool) string {
	switch np := np.(type) {
	case Pronoun:
		return PersonalPronoun(np.PGN, afterRelativeFutureConditional)
	case ProperName:
		return np.Base
	case BareNoun:
		return np.Noun.Indefinite
	}
	return ""
}

// Definite is the form used for a known entity in subject or object position.
func Definite(np NounPhrase, afterRelativeFutureConditional bool) string {
	switch np := np.(type) {
	case Pronoun:
		return PersonalPronoun(np.PGN, afterRelativeFutureConditional)
	case ProperName:
		return np.Base
	case BareNoun:
		return np.Noun.Definite
	}
	return ""
}

// Dative is the form used after a simple preposition.
func Dative(np NounPhrase) string {
	switch np := np.(type) {
	case Pronoun:
		return PersonalPronoun(np.PGN, false)
	case ProperName:
		return np.Base
	case BareNoun:
		if np.Noun.Dative == "" {
			return np.Noun.Definite
		}
		return np.Noun.Dative
	}
	return ""
}

// SurfaceForms lists every distinct way np may be written, used when matching
// player input against names.
func SurfaceForms(np NounPhrase) []string {
	candidates := []string{Definite(np, false), Indefinite(np, false), Dative(np)}
	if name, ok := np.(ProperName); ok {
		candidates = append(candidates, name.Vocative)
	}
	var forms []string
	seen := map[string]bool{}
	for _, f := range candidates {
		if f != "" && !seen[f] {
			seen[f] = true
			forms = append(forms, f)
		}
	}
	return forms
}
