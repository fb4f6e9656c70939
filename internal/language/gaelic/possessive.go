package gaelic

// possessiveRule describes how a possessive pronoun combines with the noun
// that follows it.
type possessiveRule struct {
	particle string
	// beforeVowel replaces particle when the (possibly lenited) noun starts
	// with a vowel sound.
	beforeVowel string
	lenites     bool
	// vowelPrefix is attached to the noun when it starts with a vowel
	// ("a h-athair", "ar n-athair").
	vowelPrefix string
	// beforeLabial replaces particle before b, f, m and p ("am bàta").
	beforeLabial string
}

var possessiveRules = map[PersonGenderNumber]possessiveRule{
	FirstSingular:  {particle: "mo", beforeVowel: "m'", lenites: true},
	SecondSingular: {particle: "do", beforeVowel: "d'", lenites: true},
	ThirdMasculine: {particle: "a", beforeVowel: "a", lenites: true},
	ThirdFeminine:  {particle: "a", beforeVowel: "a", vowelPrefix: "h-"},
	FirstPlural:    {particle: "ar", beforeVowel: "ar", vowelPrefix: "n-"},
	SecondPlural:   {particle: "ur", beforeVowel: "ur", vowelPrefix: "n-"},
	ThirdPlural:    {particle: "an", beforeVowel: "an", beforeLabial: "am"},
}

// LenitesAfterPossessive reports whether the possessive pronoun of owner
// lenites the noun it precedes.
func LenitesAfterPossessive(owner PersonGenderNumber) bool {
	return possessiveRules[owner].lenites
}

// PronominalPossessive builds a possessive with a possessive pronoun
// ("do chlaidheamh", "a h-iuchair"). Proper names and pronouns cannot be
// possessed this way and are returned in their definite form.
func PronominalPossessive(np NounPhrase, owner PersonGenderNumber) Phrase {
	bare, ok := np.(BareNoun)
	if !ok {
		return Phrase{Head: Definite(np, false)}
	}
	rule := possessiveRules[owner]
	word := bare.Noun.Indefinite
	if rule.lenites {
		word = Lenite(word)
	}
	particle := rule.particle
	switch {
	case StartsWithVowelSound(word):
		particle = rule.beforeVowel
		word = rule.vowelPrefix + word
	case rule.beforeLabial != "" && startsWithLabial(word):
		particle = rule.beforeLabial
	}
	return Phrase{Lead: particle + " ", Head: word}
}

// PossessiveWithAig builds a possessive with the preposition aig
// ("an claidheamh agad").
func PossessiveWithAig(np NounPhrase, owner PersonGenderNumber) Phrase {
	return Phrase{Head: Definite(np, false), Tail: " " + Aig.Form(owner)}
}

// ObliquePossessiveWithAig is PossessiveWithAig after a preposition
// ("leis a' chlaidheamh agad").
func ObliquePossessiveWithAig(prep Preposition, np NounPhrase, owner PersonGenderNumber) Phrase {
	phrase := PrepositionalPhrase(prep, np)
	phrase.Tail = " " + Aig.Form(owner)
	return phrase
}
