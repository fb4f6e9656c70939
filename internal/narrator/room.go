package narrator

import (
	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

var (
	youSee    = models.BilingualText{L1: "You see:", L2: "Chì thu:"}
	youCanGo  = models.BilingualText{L1: "You can go:", L2: "Faodaidh tu a dhol:"}
	youHave   = models.BilingualText{L1: "You have:", L2: "Tha agad:"}
	youLook   = models.BilingualText{L1: "You look around...", L2: "Seallaidh tu mun cuairt..."}
	emptyHand = models.BilingualText{L1: "You don't have anything.", L2: "Chan eil dad agad."}
)

// DescribeRoom describes the player's room: its name, description, the items
// lying there, the ways out and who else is there.
func (n *Narrator) DescribeRoom(state models.State) story.Story {
	room, ok := state.RoomOf(state.Player)
	if !ok {
		return nil
	}
	return append(story.Story{story.Heading{Text: room.Name}}, describeRoomBody(room, state)...)
}

func describeRoomBody(room models.Room, state models.State) story.Story {
	var s story.Story

	if len(room.Description) > 0 {
		var description story.Paragraph
		for _, line := range room.Description {
			description.Elements = append(description.Elements, story.FromText(line))
		}
		s = append(s, description)
	}

	if len(room.Items) > 0 {
		s = append(s, listParagraph(youSee, itemNames(room.Items, state), story.And))
	}

	if len(room.Exits) > 0 {
		var exits []story.Named
		for _, exit := range room.Exits {
			exits = append(exits, story.Named{Kind: story.KindDirection, Name: exit.Direction})
		}
		s = append(s, listParagraph(youCanGo, exits, story.Or))
	}

	if others := state.LivingOthers(state.Player); len(others) > 0 {
		var characters []story.Named
		for _, c := range others {
			characters = append(characters, story.Named{
				Kind: kindOf(state, c.ID),
				Name: models.BilingualText{
					L1: english.Indefinite(c.Name.English),
					L2: gaelic.Indefinite(c.Name.Gaelic, false),
				},
			})
		}
		s = append(s, listParagraph(youSee, characters, story.And))
	}

	return s
}

func listParagraph(intro models.BilingualText, names []story.Named, conjunction models.BilingualText) story.Paragraph {
	elements := append([]story.ParagraphElement{story.FromText(intro)}, story.OxfordList(names, conjunction)...)
	return story.NewParagraph(elements...)
}

func itemNames(ids []string, state models.State) []story.Named {
	names := make([]story.Named, 0, len(ids))
	for _, id := range ids {
		item := state.Items[id]
		names = append(names, story.Named{
			Kind: story.KindItem,
			Name: models.BilingualText{
				L1: english.Indefinite(item.Name.English),
				L2: gaelic.Indefinite(item.Name.Gaelic, false),
			},
		})
	}
	return names
}

func (n *Narrator) narrateLook(ev event.Look, state models.State) story.Story {
	room, ok := state.RoomOf(state.Player)
	if !ok {
		return nil
	}
	if !ev.IsPlayerInitiated {
		// The move that brought the player here already named the room.
		return describeRoomBody(room, state)
	}
	return append(story.Story{story.NewParagraph(story.FromText(youLook))}, n.DescribeRoom(state)...)
}

func (n *Narrator) narrateHelp() story.Story {
	s := make(story.Story, 0, len(n.help))
	for _, entry := range n.help {
		s = append(s, story.NewParagraph(
			story.FromText(entry.Keyword),
			story.StaticText{Text: ":"},
			story.FromText(entry.Text),
		))
	}
	return s
}

func (n *Narrator) narrateInventory(state models.State) story.Story {
	player := state.PlayerCharacter()
	if len(player.Items) == 0 {
		return story.Story{story.NewParagraph(story.FromText(emptyHand))}
	}
	return story.Story{listParagraph(youHave, itemNames(player.Items, state), story.And)}
}
