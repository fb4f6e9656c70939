package gaelic

// Preposition is a simple preposition together with its conjugated
// ("prepositional pronoun") forms.
type Preposition struct {
	Base string
	// WithArticle is the form used before the definite article, e.g. "leis"
	// for "le".
	WithArticle string
	Pronominal  map[PersonGenderNumber]string
}

var Aig = Preposition{
	Base:        "aig",
	WithArticle: "aig",
	Pronominal: map[PersonGenderNumber]string{
		FirstSingular:  "agam",
		FirstPlural:    "againn",
		SecondSingular: "agad",
		SecondPlural:   "agaibh",
		ThirdMasculine: "aige",
		ThirdFeminine:  "aice",
		ThirdPlural:    "aca",
	},
}

var Air = Preposition{
	Base:        "air",
	WithArticle: "air",
	Pronominal: map[PersonGenderNumber]string{
		FirstSingular:  "orm",
		FirstPlural:    "oirnn",
		SecondSingular: "ort",
		SecondPlural:   "oirbh",
		ThirdMasculine: "air",
		ThirdFeminine:  "oirre",
		ThirdPlural:    "orra",
	},
}

var Le = Preposition{
	Base:        "le",
	WithArticle: "leis",
	Pronominal: map[PersonGenderNumber]string{
		FirstSingular:  "leam",
		FirstPlural:    "leinn",
		SecondSingular: "leat",
		SecondPlural:   "leibh",
		ThirdMasculine: "leis",
		ThirdFeminine:  "leatha",
		ThirdPlural:    "leotha",
	},
}

// Form returns the conjugated form of the preposition for p.
func (p Preposition) Form(pgn PersonGenderNumber) string {
	return p.Pronominal[pgn]
}

// Phrase is a piece of text split around the word that names an entity, so
// the caller can style the head separately.
type Phrase struct {
	Lead string
	Head string
	Tail string
}

func (p Phrase) String() string {
	return p.Lead + p.Head + p.Tail
}

// PrepositionalPhrase puts np in the oblique position after prep. Pronouns
// fuse with the preposition ("ort"); bare nouns take the dative with the
// article form of the preposition ("leis a' chlaidheamh").
func PrepositionalPhrase(prep Preposition, np NounPhrase) Phrase {
	switch np := np.(type) {
	case Pronoun:
		return Phrase{Head: prep.Form(np.PGN)}
	case ProperName:
		return Phrase{Lead: prep.Base + " ", Head: np.Base}
	case BareNoun:
		return Phrase{Lead: prep.WithArticle + " ", Head: Dative(np)}
	}
	return Phrase{}
}
