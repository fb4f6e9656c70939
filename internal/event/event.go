// Package event defines the closed set of events a transition can emit.
package event

import (
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

// Event is one of CommandValidation, Move, TakeItem, Attack, TrapDamage,
// Narration, Wait, Look, Help, Inventory or GameOver.
type Event interface {
	isEvent()
}

// CommandValidation tells the player why a command was rejected.
type CommandValidation struct {
	Message models.BilingualText
}

// Move records a character, and the followers that went with it, moving
// between rooms.
type Move struct {
	Actor           string
	Followers       []string
	SourceRoom      string
	DestinationRoom string
	// SourceExit is the exit that was used.
	SourceExit string
	// DestinationExit leads back to the source room, if there is one.
	DestinationExit string
}

type TakeItem struct {
	Actor string
	Item  string
}

type Attack struct {
	Attacker string
	Defender string
	// Weapon is the attacker's equipped weapon, or empty.
	Weapon  string
	IsFatal bool
}

type TrapDamage struct {
	Defender string
	Damage   int
	IsFatal  bool
}

// Narration splices a canned story into the output. Room is the room it
// happens in, or empty when it is meant for the player wherever they are.
type Narration struct {
	Story story.Story
	Room  string
}

type Wait struct {
	Actor string
}

// Look describes the player's room. IsPlayerInitiated is false when the look
// follows the player moving.
type Look struct {
	IsPlayerInitiated bool
}

type Help struct{}

type Inventory struct{}

// GameOver ends the game. Condition is the condition that was satisfied.
type GameOver struct {
	Condition models.EndOfGameCondition
}

func (CommandValidation) isEvent() {}
func (Move) isEvent() {}
func (TakeItem) isEvent() {}
func (Attack) isEvent() {}
func (TrapDamage) isEvent() {}
func (Narration) isEvent() {}
func (Wait) isEvent() {}
func (Look) isEvent() {}
func (Help) isEvent() {}
func (Inventory) isEvent() {}
func (GameOver) isEvent() {}

// Name returns a short identifier for the kind of e, used in logs.
func Name(e Event) string {
	switch e.(type) {
	case CommandValidation:
		return "commandValidation"
	case Move:
		return "move"
	case TakeItem:
		return "takeItem"
	case Attack:
		return "attack"
	case TrapDamage:
		return "trapDamage"
	case Narration:
		return "narration"
	case Wait:
		return "wait"
	case Look:
		return "look"
	case Help:
		return "help"
	case Inventory:
		return "inventory"
	case GameOver:
		return "gameOver"
	}
	return "unknown"
}
