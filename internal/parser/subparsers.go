package parser

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

// keywordOnly parses commands that take no argument. Anything after the
// keyword is ignored.
type keywordOnly struct {
	keyword models.BilingualText
	help    models.BilingualText
	build   func(state models.State) command.Command
}

func (p keywordOnly) Keyword() models.BilingualText { return p.keyword }
func (p keywordOnly) Help() models.BilingualText { return p.help }

func (p keywordOnly) Parse(_ string, state models.State) (command.Command, error) {
	return p.build(state), nil
}

func (p keywordOnly) ValidInputs(models.State) (l1, l2 []string) {
	return []string{p.keyword.L1}, []string{p.keyword.L2}
}

func (p keywordOnly) Previews(state models.State) []Preview {
	return []Preview{completePreview(p.keyword, p.keyword, p.build(state))}
}

func Help(keyword models.BilingualText) SubParser {
	return keywordOnly{
		keyword: keyword,
		help:    models.BilingualText{L1: "Get help", L2: "Faigh " + keyword.L2},
		build:   func(models.State) command.Command { return command.Help{} },
	}
}

func Look(keyword models.BilingualText) SubParser {
	return keywordOnly{
		keyword: keyword,
		help:    models.BilingualText{L1: "Look around", L2: "Seall mun cuairt"},
		build:   func(models.State) command.Command { return command.Look{} },
	}
}

func Inventory(keyword models.BilingualText) SubParser {
	return keywordOnly{
		keyword: keyword,
		help:    models.BilingualText{L1: "List what you are carrying", L2: "Seall na tha agad"},
		build:   func(models.State) command.Command { return command.Inventory{} },
	}
}

func Wait(keyword models.BilingualText) SubParser {
	return keywordOnly{
		keyword: keyword,
		help:    models.BilingualText{L1: "Wait for one turn", L2: "Fuirich airson aon tionndadh"},
		build: func(state models.State) command.Command {
			return command.Wait{Actor: state.Player}
		},
	}
}

type moveParser struct {
	keyword models.BilingualText
}

// Move parses "go <direction>" where direction is one of the exits of the
// player's room.
func Move(keyword models.BilingualText) SubParser {
	return moveParser{keyword: keyword}
}

func (p moveParser) Keyword() models.BilingualText { return p.keyword }

func (p moveParser) Help() models.BilingualText {
	return models.BilingualText{L1: "Go in a direction", L2: "Rach ann an rathad"}
}

func (p moveParser) Parse(rest string, state models.State) (command.Command, error) {
	if rest == "" {
		return nil, invalid(
			fmt.Sprintf("Type %q and then the direction you would like to go.", p.keyword.L1),
			fmt.Sprintf("Sgrìobh %q agus an uair sin an rathad far a bheil thu airson a dhol.", p.keyword.L2),
		)
	}
	for _, exit := range playerRoom(state).Exits {
		if rest == norm.NFC.String(exit.Direction.L1) || rest == norm.NFC.String(exit.Direction.L2) {
			return command.Move{Actor: state.Player, Exit: exit.ID}, nil
		}
	}
	return nil, invalid(
		fmt.Sprintf("You cannot go %q.", rest),
		fmt.Sprintf("Chan urrainn dhut a dhol %q.", rest),
	)
}

func (p moveParser) ValidInputs(state models.State) (l1, l2 []string) {
	for _, exit := range playerRoom(state).Exits {
		l1 = append(l1, p.keyword.L1+" "+exit.Direction.L1)
		l2 = append(l2, p.keyword.L2+" "+exit.Direction.L2)
	}
	return l1, l2
}

func (p moveParser) Previews(state models.State) []Preview {
	var followUps []Preview
	for _, exit := range playerRoom(state).Exits {
		followUps = append(followUps, completePreview(
			exit.Direction,
			join(p.keyword, exit.Direction),
			command.Move{Actor: state.Player, Exit: exit.ID},
		))
	}
	return []Preview{partialPreview(p.keyword, followUps)}
}

type takeParser struct {
	keyword models.BilingualText
}

// Take parses "take <item>" for items lying in the player's room.
func Take(keyword models.BilingualText) SubParser {
	return takeParser{keyword: keyword}
}

func (p takeParser) Keyword() models.BilingualText { return p.keyword }

func (p takeParser) Help() models.BilingualText {
	return models.BilingualText{L1: "Take something", L2: "Gabh rudeigin"}
}

func (p takeParser) Parse(rest string, state models.State) (command.Command, error) {
	if rest == "" {
		return nil, invalid(
			fmt.Sprintf("Type %q and then the name of something here.", p.keyword.L1),
			fmt.Sprintf("Sgrìobh %q agus an uair sin ainm rud a tha an seo.", p.keyword.L2),
		)
	}
	for _, id := range playerRoom(state).Items {
		if matchesName(rest, state.Items[id].Name) {
			return command.TakeItem{Actor: state.Player, Item: id}, nil
		}
	}
	return nil, invalid("There is nothing like that here.", "Chan eil dad mar sin an seo.")
}

func (p takeParser) ValidInputs(state models.State) (l1, l2 []string) {
	for _, id := range playerRoom(state).Items {
		name := displayName(state.Items[id].Name)
		l1 = append(l1, p.keyword.L1+" "+name.L1)
		l2 = append(l2, p.keyword.L2+" "+name.L2)
	}
	return l1, l2
}

func (p takeParser) Previews(state models.State) []Preview {
	var followUps []Preview
	for _, id := range playerRoom(state).Items {
		name := displayName(state.Items[id].Name)
		followUps = append(followUps, completePreview(
			name,
			join(p.keyword, name),
			command.TakeItem{Actor: state.Player, Item: id},
		))
	}
	return []Preview{partialPreview(p.keyword, followUps)}
}

type attackParser struct {
	keyword models.BilingualText
}

// Attack parses "fight <character>" for living characters sharing the
// player's room.
func Attack(keyword models.BilingualText) SubParser {
	return attackParser{keyword: keyword}
}

func (p attackParser) Keyword() models.BilingualText { return p.keyword }

func (p attackParser) Help() models.BilingualText {
	return models.BilingualText{L1: "Fight against an enemy", L2: "Sabaid an aghaidh nàmhaid"}
}

func (p attackParser) Parse(rest string, state models.State) (command.Command, error) {
	if rest == "" {
		return nil, invalid(
			fmt.Sprintf("Type %q and then the name of who you want to fight.", p.keyword.L1),
			fmt.Sprintf("Sgrìobh %q agus an uair sin ainm an nàmhaid.", p.keyword.L2),
		)
	}
	for _, c := range state.LivingOthers(state.Player) {
		if matchesName(rest, c.Name) {
			return command.Attack{Attacker: state.Player, Defender: c.ID}, nil
		}
	}
	return nil, invalid(
		fmt.Sprintf("There is no one here called %q.", rest),
		fmt.Sprintf("Chan eil duine an seo air a bheil %q.", rest),
	)
}

func (p attackParser) ValidInputs(state models.State) (l1, l2 []string) {
	for _, c := range state.LivingOthers(state.Player) {
		name := displayName(c.Name)
		l1 = append(l1, p.keyword.L1+" "+name.L1)
		l2 = append(l2, p.keyword.L2+" "+name.L2)
	}
	return l1, l2
}

func (p attackParser) Previews(state models.State) []Preview {
	var followUps []Preview
	for _, c := range state.LivingOthers(state.Player) {
		name := displayName(c.Name)
		followUps = append(followUps, completePreview(
			name,
			join(p.keyword, name),
			command.Attack{Attacker: state.Player, Defender: c.ID},
		))
	}
	return []Preview{partialPreview(p.keyword, followUps)}
}

func playerRoom(state models.State) models.Room {
	room, _ := state.RoomOf(state.Player)
	return room
}

// displayName is the form of name offered to the player in suggestions.
func displayName(name models.Name) models.BilingualText {
	return models.BilingualText{
		L1: english.Base(name.English),
		L2: gaelic.Indefinite(name.Gaelic, false),
	}
}

func surfaceForms(name models.Name) []string {
	return append(english.SurfaceForms(name.English), gaelic.SurfaceForms(name.Gaelic)...)
}
