// Package models holds the immutable world snapshot and the entity records
// it is made of. Entities refer to each other by id only.
package models

import (
	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
)

// BilingualText is a piece of text authored in both languages.
type BilingualText struct {
	// L1 is the player's first language (English).
	L1 string `yaml:"l1"`
	// L2 is the language being learned (Gaelic).
	L2 string `yaml:"l2"`
}

// Name carries the grammatical metadata the narrator needs in each language.
type Name struct {
	English english.NounPhrase
	Gaelic  gaelic.NounPhrase
}

// Item is something that can be picked up.
type Item struct {
	ID   string
	Name Name
}

// Character is the player character, an enemy, a companion or any other NPC.
type Character struct {
	ID             string
	Name           Name
	Room           string
	Items          []string
	EquippedWeapon string
	MaxHealth      int
	CurrentHealth  int
	// Faction groups characters that do not fight each other.
	Faction string
	// PartyLeader is set on followers and names the character they follow.
	PartyLeader string
}

// IsAlive reports whether the character still has health left. Dead
// characters stay in the world so they can still be narrated.
func (c Character) IsAlive() bool {
	return c.CurrentHealth > 0
}

// Exit leads from one room to another. Exits are authored in pairs so that
// the reverse wording of one matches the direction of the other.
type Exit struct {
	ID               string
	Direction        BilingualText
	DirectionReverse BilingualText
	Room             string
}

// Room is a location in the world.
type Room struct {
	ID          string
	Name        BilingualText
	Description []BilingualText
	Characters  []string
	Items       []string
	Exits       []Exit
	Triggers    []Trigger
}

// Trigger is either a TakeItemTrigger or a MoveTrigger.
type Trigger interface {
	TriggerAction() TriggerAction
	isTrigger()
}

// TakeItemTrigger fires whenever Item is taken inside the room.
type TakeItemTrigger struct {
	Item   string
	Action TriggerAction
}

// MoveTrigger fires whenever a character leaves the room through Exit.
type MoveTrigger struct {
	Exit   string
	Action TriggerAction
}

func (t TakeItemTrigger) TriggerAction() TriggerAction { return t.Action }
func (t MoveTrigger) TriggerAction() TriggerAction { return t.Action }

func (TakeItemTrigger) isTrigger() {}
func (MoveTrigger) isTrigger() {}

// TriggerAction describes the command a trigger synthesizes. It is either a
// DamageAction or a NarrateAction.
type TriggerAction interface {
	isTriggerAction()
}

// DamageAction deals Amount trap damage to the triggering character.
type DamageAction struct {
	Amount int
}

// NarrateAction splices canned paragraphs into the story.
type NarrateAction struct {
	Paragraphs []BilingualText
}

func (DamageAction) isTriggerAction() {}
func (NarrateAction) isTriggerAction() {}

// EndOfGameCondition is checked after every transition. CharacterDeath is
// currently the only kind.
type EndOfGameCondition interface {
	isEndOfGameCondition()
}

// CharacterDeath ends the game when Character's health reaches zero.
type CharacterDeath struct {
	Character string
}

func (CharacterDeath) isEndOfGameCondition() {}

// State is a snapshot of the whole game. It is treated as immutable: every
// change produces a new State and older snapshots stay valid.
type State struct {
	// GameOver is set once an end of game condition holds. No more commands
	// may be executed afterwards.
	GameOver bool
	// EndOfGameConditions are the authored conditions. The player's death is
	// always checked first and is not listed here.
	EndOfGameConditions []EndOfGameCondition
	Rooms               map[string]Room
	Characters          map[string]Character
	Items               map[string]Item
	Player              string
	// TurnOrder lists character ids in the order they take their turns.
	TurnOrder         []string
	CharacterWithTurn string
}
