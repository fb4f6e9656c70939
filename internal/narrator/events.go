package narrator

import (
	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

var gameIsOver = models.BilingualText{L1: "The game is over.", L2: "Tha an geama seachad."}

func (n *Narrator) narrateMove(ev event.Move, before, after models.State) story.Story {
	exit, _ := before.Rooms[ev.SourceRoom].FindExit(ev.SourceExit)
	direction := func(d models.BilingualText) (l1, l2 story.Fragment) {
		return ref(story.KindDirection, d.L1), ref(story.KindDirection, d.L2)
	}

	// The player leaves, with any followers.
	if ev.Actor == after.Player {
		you := subject(after, ev.Actor, "Thèid")
		youL1, youL2 := named(you)
		dirL1, dirL2 := direction(exit.Direction)
		pgn := after.Characters[ev.Actor].Name.English.PersonGenderNumber()
		p := story.NewParagraph(sentence(
			frags(youL1, text(" "+english.Conjugate("go", pgn)+" "), dirL1, text("...")),
			frags(text("Thèid "), youL2, text(" "), dirL2, text("...")),
		))
		if len(ev.Followers) > 0 {
			p.Elements = append(p.Elements, followSentence(ev, after))
		}
		return story.Story{story.Heading{Text: after.Rooms[ev.DestinationRoom].Name}, p}
	}

	playerRoom := after.PlayerCharacter().Room
	movers := append([]string{ev.Actor}, ev.Followers...)

	switch playerRoom {
	case ev.SourceRoom:
		names, pgn := group(after, movers, func(id string) story.Named { return subject(after, id, "Falbhaidh") })
		dirL1, dirL2 := direction(exit.Direction)
		return story.Story{story.NewParagraph(sentence(
			append(names.L1, text(" "+english.Conjugate("head", pgn)+" "), dirL1, text(".")),
			append(append(frags(text("Falbhaidh ")), names.L2...), text(" "), dirL2, text(".")),
		))}
	case ev.DestinationRoom:
		names, pgn := group(after, movers, func(id string) story.Named { return arrival(after, id) })
		dirL1, dirL2 := direction(exit.DirectionReverse)
		return story.Story{story.NewParagraph(sentence(
			append(names.L1, text(" "+english.Conjugate("arrive", pgn)+" "), dirL1, text(".")),
			append(append(frags(text("Thig ")), names.L2...), text(" a-steach "), dirL2, text(".")),
		))}
	}
	return nil
}

// arrival introduces a character: "a rat ..." / "... radan".
func arrival(state models.State, characterID string) story.Named {
	c := state.Characters[characterID]
	return story.Named{
		Kind: kindOf(state, characterID),
		Name: models.BilingualText{
			L1: english.Indefinite(c.Name.English),
			L2: gaelic.Indefinite(c.Name.Gaelic, false),
		},
	}
}

// followSentence is "Morag follows you." / "Leanaidh Mòrag thu."
func followSentence(ev event.Move, state models.State) story.Bilingual {
	names, pgn := group(state, ev.Followers, func(id string) story.Named { return subject(state, id, "Leanaidh") })
	leaderL1, leaderL2 := named(object(state, ev.Actor))
	return sentence(
		append(names.L1, text(" "+english.Conjugate("follow", pgn)+" "), leaderL1, text(".")),
		append(append(frags(text("Leanaidh ")), names.L2...), text(" "), leaderL2, text(".")),
	)
}

// visible reports whether characterID is where the player can see it.
func visible(state models.State, characterID string) bool {
	return characterID == state.Player || state.Characters[characterID].Room == state.PlayerCharacter().Room
}

func (n *Narrator) narrateTakeItem(ev event.TakeItem, state models.State) story.Story {
	if !visible(state, ev.Actor) {
		return nil
	}
	item := state.Items[ev.Item]
	actorL1, actorL2 := named(subject(state, ev.Actor, "Gabhaidh"))
	pgn := state.Characters[ev.Actor].Name.English.PersonGenderNumber()
	return story.Story{story.NewParagraph(sentence(
		frags(actorL1, text(" "+english.Conjugate("take", pgn)+" "), ref(story.KindItem, english.Definite(item.Name.English)), text(".")),
		frags(text("Gabhaidh "), actorL2, text(" "), ref(story.KindItem, gaelic.Definite(item.Name.Gaelic, false)), text(".")),
	))}
}

func (n *Narrator) narrateAttack(ev event.Attack, state models.State) story.Story {
	if !visible(state, ev.Attacker) && !visible(state, ev.Defender) {
		return nil
	}
	attackerL1, attackerL2 := named(subject(state, ev.Attacker, "Sabaidichidh"))
	defenderL1, defenderL2 := named(object(state, ev.Defender))
	weaponL1, weaponL2 := n.weaponClause(state, ev.Attacker, ev.Weapon)
	pgn := state.Characters[ev.Attacker].Name.English.PersonGenderNumber()

	l1 := frags(attackerL1, text(" "+english.Conjugate("attack", pgn)+" "), defenderL1)
	l1 = append(append(l1, weaponL1...), text("!"))
	l2 := frags(text("Sabaidichidh "), attackerL2, text(" "), defenderL2)
	l2 = append(append(l2, weaponL2...), text("!"))

	p := story.Paragraph{Elements: []story.ParagraphElement{sentence(l1, l2)}, Style: story.StyleCombat}
	if ev.IsFatal {
		p.Elements = append(p.Elements, dies(state, ev.Defender))
	}
	return story.Story{p}
}

// narrateTrapDamage also shows traps hitting a character on its way out of
// the player's room.
func (n *Narrator) narrateTrapDamage(ev event.TrapDamage, before, state models.State) story.Story {
	if !visible(state, ev.Defender) && !visible(before, ev.Defender) {
		return nil
	}
	defender := state.Characters[ev.Defender]
	target := gaelic.PrepositionalPhrase(gaelic.Air, defender.Name.Gaelic)
	kind := kindOf(state, ev.Defender)

	p := story.Paragraph{
		Elements: []story.ParagraphElement{sentence(
			frags(text("A trap damages "), ref(kind, english.Object(defender.Name.English)), text("!")),
			frags(text("Nì trap cron "+target.Lead), ref(kind, target.Head), text(target.Tail+"!")),
		)},
		Style: story.StyleCombat,
	}
	if ev.IsFatal {
		p.Elements = append(p.Elements, dies(state, ev.Defender))
	}
	return story.Story{p}
}

func narrateNarration(ev event.Narration, before, after models.State) story.Story {
	if ev.Room != "" && before.PlayerCharacter().Room != ev.Room && after.PlayerCharacter().Room != ev.Room {
		return nil
	}
	return ev.Story
}

func (n *Narrator) narrateWait(ev event.Wait, state models.State) story.Story {
	if ev.Actor != state.Player {
		return nil
	}
	youL1, youL2 := named(subject(state, ev.Actor, "Fuirichidh"))
	pgn := state.Characters[ev.Actor].Name.English.PersonGenderNumber()
	return story.Story{story.NewParagraph(sentence(
		frags(youL1, text(" "+english.Conjugate("wait", pgn)+"...")),
		frags(text("Fuirichidh "), youL2, text("...")),
	))}
}

func (n *Narrator) narrateGameOver(ev event.GameOver, state models.State) story.Story {
	var outcome story.Bilingual
	switch c := ev.Condition.(type) {
	case models.CharacterDeath:
		if c.Character == state.Player {
			outcome = story.FromText(models.BilingualText{L1: "You have been defeated.", L2: "Chaidh a' chùis ort."})
			break
		}
		fallen := state.Characters[c.Character]
		target := gaelic.PrepositionalPhrase(gaelic.Air, fallen.Name.Gaelic)
		kind := kindOf(state, c.Character)
		outcome = sentence(
			frags(text("You have defeated "), ref(kind, english.Object(fallen.Name.English)), text("!")),
			frags(text("Rinn thu a' chùis "+target.Lead), ref(kind, target.Head), text(target.Tail+"!")),
		)
	default:
		outcome = story.FromText(models.BilingualText{L1: "The end has come.", L2: "Tha a' chrìoch air tighinn."})
	}
	return story.Story{story.NewParagraph(outcome, story.FromText(gameIsOver))}
}
