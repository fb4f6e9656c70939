// Package command defines the closed set of commands the engine executes.
package command

import "github.com/tatianab/bilingual-text-game/internal/story"

// Command is one of Wait, Move, TakeItem, Attack, TrapDamage, Narrate, Look,
// Help or Inventory. Consumers switch over the concrete types.
type Command interface {
	isCommand()
}

// Wait passes the actor's turn.
type Wait struct {
	Actor string
}

// Move sends the actor, and its followers, through Exit.
type Move struct {
	Actor string
	Exit  string
}

// TakeItem moves Item from the actor's room into its inventory.
type TakeItem struct {
	Actor string
	Item  string
}

// Attack deals one point of damage to Defender.
type Attack struct {
	Attacker string
	Defender string
}

// TrapDamage deals Damage to Defender. It is only ever built by triggers.
type TrapDamage struct {
	Defender string
	Damage   int
}

// Narrate replays a precomputed story. When Room is set the story is only
// told to a player who is there.
type Narrate struct {
	Story story.Story
	Room  string
}

type Look struct{}

type Help struct{}

type Inventory struct{}

func (Wait) isCommand() {}
func (Move) isCommand() {}
func (TakeItem) isCommand() {}
func (Attack) isCommand() {}
func (TrapDamage) isCommand() {}
func (Narrate) isCommand() {}
func (Look) isCommand() {}
func (Help) isCommand() {}
func (Inventory) isCommand() {}
