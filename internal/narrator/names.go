package narrator

import (
	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

var (
	text = story.Text
	ref  = story.Ref
)

func frags(f ...story.Fragment) []story.Fragment { return f }

// sentence pairs the two renderings of a sentence and capitalises the start
// of each.
func sentence(l1, l2 []story.Fragment) story.Bilingual {
	if len(l1) > 0 {
		l1[0].Text = english.Capitalize(l1[0].Text)
	}
	if len(l2) > 0 {
		l2[0].Text = gaelic.Capitalize(l2[0].Text)
	}
	return story.Bilingual{L1: l1, L2: l2}
}

// kindOf tags a character relative to the player.
func kindOf(state models.State, characterID string) story.EntityKind {
	if characterID == state.Player {
		return story.KindOther
	}
	player := state.PlayerCharacter()
	c := state.Characters[characterID]
	if models.SameFaction(player, c) || c.PartyLeader == player.ID {
		return story.KindCompanion
	}
	return story.KindEnemy
}

// subject is a character as the subject of verb, which comes first in
// Gaelic: "the rat ..." / "... an radan".
func subject(state models.State, characterID, verb string) story.Named {
	c := state.Characters[characterID]
	return story.Named{
		Kind: kindOf(state, characterID),
		Name: models.BilingualText{
			L1: english.Definite(c.Name.English),
			L2: gaelic.SubjectAfter(verb, c.Name.Gaelic),
		},
	}
}

// object is a character as the direct object: "... the rat" / "... an radan".
func object(state models.State, characterID string) story.Named {
	c := state.Characters[characterID]
	return story.Named{
		Kind: kindOf(state, characterID),
		Name: models.BilingualText{
			L1: english.Object(c.Name.English),
			L2: gaelic.Definite(c.Name.Gaelic, false),
		},
	}
}

// group names several characters as one subject. The English verb agrees
// with the returned person.
func group(state models.State, ids []string, name func(id string) story.Named) (story.Bilingual, english.PersonGenderNumber) {
	names := make([]story.Named, 0, len(ids))
	for _, id := range ids {
		names = append(names, name(id))
	}
	pgn := english.ThirdPlural
	if len(ids) == 1 {
		pgn = state.Characters[ids[0]].Name.English.PersonGenderNumber()
	}
	return story.JoinNames(names, story.And), pgn
}

func named(n story.Named) (l1, l2 story.Fragment) {
	return ref(n.Kind, n.Name.L1), ref(n.Kind, n.Name.L2)
}

// dies is "It dies!" for whoever characterID is.
func dies(state models.State, characterID string) story.Bilingual {
	c := state.Characters[characterID]
	enPGN := c.Name.English.PersonGenderNumber()
	gdPGN := c.Name.Gaelic.PersonGenderNumber()
	return sentence(
		frags(text(english.SubjectPronoun(enPGN)+" "+english.Conjugate("die", enPGN)+"!")),
		frags(text("Bàsaichidh "+gaelic.PersonalPronoun(gdPGN, true)+"!")),
	)
}

// weaponClause is " with your dagger" / " leis a' bhiodaig agad".
func (n *Narrator) weaponClause(state models.State, ownerID, weaponID string) (l1, l2 []story.Fragment) {
	item, ok := state.Items[weaponID]
	if !ok {
		return nil, nil
	}
	owner := state.Characters[ownerID]

	determiner, noun := english.Possessive(item.Name.English, owner.Name.English.PersonGenderNumber())
	l1 = frags(text(" with "+determiner+" "), ref(story.KindItem, noun))

	ownerPGN := owner.Name.Gaelic.PersonGenderNumber()
	var phrase gaelic.Phrase
	lead := " "
	switch n.possessiveStyle {
	case PronominalPossessive:
		lead = " " + gaelic.Le.Base + " "
		phrase = gaelic.PronominalPossessive(item.Name.Gaelic, ownerPGN)
	default:
		phrase = gaelic.ObliquePossessiveWithAig(gaelic.Le, item.Name.Gaelic, ownerPGN)
	}
	l2 = frags(text(lead+phrase.Lead), ref(story.KindItem, phrase.Head))
	if phrase.Tail != "" {
		l2 = append(l2, text(phrase.Tail))
	}
	return l1, l2
}
