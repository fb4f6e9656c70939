package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
)

const twoRoomWorld = `
player: hero
turn_order: [hero, rat]
end_of_game_conditions:
  - character_death: rat
items:
  - id: key
    name:
      english: {base: key}
      gaelic: {indefinite: iuchair, definite: an iuchair, pgn: she}
characters:
  - id: hero
    name:
      english: {pronoun: "you"}
      gaelic: {pronoun: "you (s)"}
    room: hall
    health: 3
  - id: rat
    name:
      english: {base: rat}
      gaelic: {indefinite: radan, definite: an radan, pgn: he}
    room: yard
    health: 2
    current_health: 1
rooms:
  - id: hall
    name: {l1: Hall, l2: Talla}
    description:
      - {l1: A hall., l2: Talla.}
    items: [key]
    exits:
      - id: hall-out
        direction: {l1: out, l2: a-mach}
        direction_reverse: {l1: from inside, l2: bhon taobh a-staigh}
        room: yard
    triggers:
      - take_item: key
        damage: 2
  - id: yard
    name: {l1: Yard, l2: Gàrradh}
    description:
      - {l1: A yard., l2: Gàrradh.}
`

func TestParseWorld(t *testing.T) {
	s, err := ParseWorld([]byte(twoRoomWorld))
	require.NoError(t, err)

	assert.Equal(t, "hero", s.CharacterWithTurn)
	assert.Equal(t, []string{"hero"}, s.Rooms["hall"].Characters)
	assert.Equal(t, 1, s.Characters["rat"].CurrentHealth)
	assert.Equal(t, 2, s.Characters["rat"].MaxHealth)
	assert.Equal(t, []Trigger{TakeItemTrigger{Item: "key", Action: DamageAction{Amount: 2}}}, s.Rooms["hall"].Triggers)

	key := s.Items["key"].Name
	assert.Equal(t, english.CommonNoun{Base: "key", Definite: "the key", Indefinite: "a key"}, key.English)
	assert.Equal(t, "an iuchair", gaelic.Definite(key.Gaelic, false))
}

func TestParseWorldRejectsBrokenReferences(t *testing.T) {
	broken := `
player: ghost
turn_order: [hero]
characters:
  - id: hero
    name:
      english: {pronoun: "you"}
      gaelic: {pronoun: "you (s)"}
    room: nowhere
    health: 3
    current_health: 4
rooms:
  - id: hall
    name: {l1: Hall, l2: Talla}
    exits:
      - id: hall-out
        direction: {l1: out, l2: a-mach}
        room: void
`
	_, err := ParseWorld([]byte(broken))
	require.ErrorIs(t, err, ErrInvalidWorld)
	for _, want := range []string{
		`player "ghost" is not a character`,
		`player "ghost" is not in the turn order`,
		`character "hero" is in unknown room "nowhere"`,
		`character "hero" has health 4 outside [0, 3]`,
		`exit "hall-out" of room "hall" leads to unknown room "void"`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateItemHasOneOwner(t *testing.T) {
	s, err := ParseWorld([]byte(twoRoomWorld))
	require.NoError(t, err)

	yard := s.Rooms["yard"]
	yard.Items = []string{"key"}
	err = Validate(s.WithRoom(yard))
	require.ErrorIs(t, err, ErrInvalidWorld)
	assert.Contains(t, err.Error(), `item "key" is in more than one place: room hall, room yard`)

	hero := s.Characters["hero"]
	hero.Items = []string{"key"}
	err = Validate(s.WithCharacter(hero))
	require.ErrorIs(t, err, ErrInvalidWorld)
	assert.Contains(t, err.Error(), `item "key" is in more than one place: character hero, room hall`)
}

func TestTriggerFile(t *testing.T) {
	_, err := TriggerFile{TakeItem: "key"}.Trigger()
	assert.Error(t, err)
	_, err = TriggerFile{Damage: 1}.Trigger()
	assert.Error(t, err)
	_, err = TriggerFile{TakeItem: "key", Move: "out", Damage: 1}.Trigger()
	assert.Error(t, err)

	trigger, err := TriggerFile{Move: "out", Narrate: []BilingualText{{L1: "Boo!", L2: "Bù!"}}}.Trigger()
	require.NoError(t, err)
	assert.Equal(t, MoveTrigger{Exit: "out", Action: NarrateAction{Paragraphs: []BilingualText{{L1: "Boo!", L2: "Bù!"}}}}, trigger)
}

func TestCopyOnWriteKeepsOldSnapshots(t *testing.T) {
	before, err := ParseWorld([]byte(twoRoomWorld))
	require.NoError(t, err)

	hero := before.Characters["hero"]
	hero.CurrentHealth = 0
	after := before.WithCharacter(hero).WithGameOver()

	assert.Equal(t, 3, before.Characters["hero"].CurrentHealth)
	assert.False(t, before.GameOver)
	assert.Equal(t, 0, after.Characters["hero"].CurrentHealth)
	assert.True(t, after.GameOver)

	hall := after.Rooms["hall"]
	hall.Items = nil
	after = after.WithRoom(hall)
	assert.Equal(t, []string{"key"}, before.Rooms["hall"].Items)
}

func TestFactionsAndFollowers(t *testing.T) {
	s := State{
		Rooms: map[string]Room{"r": {ID: "r", Characters: []string{"a", "b", "c", "d"}}},
		Characters: map[string]Character{
			"a": {ID: "a", Room: "r", CurrentHealth: 1, Faction: "x"},
			"b": {ID: "b", Room: "r", CurrentHealth: 1, Faction: "x", PartyLeader: "a"},
			"c": {ID: "c", Room: "r", CurrentHealth: 1},
			"d": {ID: "d", Room: "r", CurrentHealth: 0, PartyLeader: "a"},
		},
	}
	var ids []string
	for _, c := range s.LivingEnemies("a") {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c"}, ids)
	assert.Len(t, s.LivingEnemies("c"), 2)
	assert.Equal(t, []string{"b"}, s.Followers("a", "r"))
}
