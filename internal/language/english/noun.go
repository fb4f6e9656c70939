package english

// NounPhrase is one of Pronoun, ProperName or CommonNoun.
type NounPhrase interface {
	PersonGenderNumber() PersonGenderNumber
	isNounPhrase()
}

// Pronoun refers to an entity only by its person, gender and number, like
// the player character ("you").
type Pronoun struct {
	PGN PersonGenderNumber
}

// ProperName never takes an article ("Morag").
type ProperName struct {
	Name string
	PGN  PersonGenderNumber
}

// CommonNoun carries its article-bearing forms as authored ("the sword",
// "a sword").
type CommonNoun struct {
	Base       string
	Definite   string
	Indefinite string
	PGN        PersonGenderNumber
}

func (p Pronoun) PersonGenderNumber() PersonGenderNumber { return p.PGN }
func (p ProperName) PersonGenderNumber() PersonGenderNumber { return p.PGN }
func (c CommonNoun) PersonGenderNumber() PersonGenderNumber {
	if c.PGN == "" {
		return ThirdNeuter
	}
	return c.PGN
}

func (Pronoun) isNounPhrase() {}
func (ProperName) isNounPhrase() {}
func (CommonNoun) isNounPhrase() {}

// Base is the bare form with no article.
func Base(np NounPhrase) string {
	switch np := np.(type) {
	case Pronoun:
		return SubjectPronoun(np.PGN)
	case ProperName:
		return np.Name
	case CommonNoun:
		return np.Base
	}
	return ""
}

// Definite is the form used in subject position for a known entity.
func Definite(np NounPhrase) string {
	switch np := np.(type) {
	case Pronoun:
		return SubjectPronoun(np.PGN)
	case ProperName:
		return np.Name
	case CommonNoun:
		return np.Definite
	}
	return ""
}

// Indefinite is the form used when introducing an entity.
func Indefinite(np NounPhrase) string {
	switch np := np.(type) {
	case Pronoun:
		return SubjectPronoun(np.PGN)
	case ProperName:
		return np.Name
	case CommonNoun:
		return np.Indefinite
	}
	return ""
}

// Object is the form used as a direct or prepositional object.
func Object(np NounPhrase) string {
	if p, ok := np.(Pronoun); ok {
		return ObjectPronoun(p.PGN)
	}
	return Definite(np)
}

// SurfaceForms lists every distinct way np may be written, used when matching
// player input against names.
func SurfaceForms(np NounPhrase) []string {
	var forms []string
	seen := map[string]bool{}
	for _, f := range []string{Base(np), Definite(np), Indefinite(np), Object(np)} {
		if f != "" && !seen[f] {
			seen[f] = true
			forms = append(forms, f)
		}
	}
	return forms
}

// Possessive builds "your sword" style phrases: the determiner for owner and
// the bare noun. The noun part is returned separately so callers can tag it.
func Possessive(np NounPhrase, owner PersonGenderNumber) (determiner, noun string) {
	return PossessiveDeterminer(owner), Base(np)
}
