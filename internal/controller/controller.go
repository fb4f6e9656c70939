// Package controller decides what non-player characters do on their turn.
package controller

import (
	"math/rand/v2"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

// Source picks random numbers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a seeded Source so that runs can be replayed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Module is one behaviour. Act is only called when Applies returned true for
// the same character and state.
type Module struct {
	Name    string
	Applies func(characterID string, state models.State) bool
	Act     func(characterID string, state models.State) command.Command
}

// Controller tries its modules in priority order.
type Controller struct {
	modules []Module
}

func New(modules ...Module) *Controller {
	return &Controller{modules: modules}
}

// Default attacks nearby enemies first and otherwise wanders.
func Default(src Source) *Controller {
	return New(AttackNearbyEnemy(src), MoveRandomly(src))
}

// Command returns what characterID does in state. Characters with no
// applicable module wait.
func (c *Controller) Command(characterID string, state models.State) command.Command {
	for _, m := range c.modules {
		if m.Applies(characterID, state) {
			return m.Act(characterID, state)
		}
	}
	return command.Wait{Actor: characterID}
}

// AttackNearbyEnemy attacks a random living character in the same room that
// is not in the actor's faction.
func AttackNearbyEnemy(src Source) Module {
	return Module{
		Name: "attack nearby enemy",
		Applies: func(characterID string, state models.State) bool {
			return len(state.LivingEnemies(characterID)) > 0
		},
		Act: func(characterID string, state models.State) command.Command {
			enemies := state.LivingEnemies(characterID)
			return command.Attack{
				Attacker: characterID,
				Defender: enemies[src.IntN(len(enemies))].ID,
			}
		},
	}
}

// MoveRandomly leaves through a random exit. Followers never wander off on
// their own; they move with their leader.
func MoveRandomly(src Source) Module {
	return Module{
		Name: "move randomly",
		Applies: func(characterID string, state models.State) bool {
			c, ok := state.Characters[characterID]
			if !ok || c.PartyLeader != "" {
				return false
			}
			room, ok := state.RoomOf(characterID)
			return ok && len(room.Exits) > 0
		},
		Act: func(characterID string, state models.State) command.Command {
			room, _ := state.RoomOf(characterID)
			return command.Move{
				Actor: characterID,
				Exit:  room.Exits[src.IntN(len(room.Exits))].ID,
			}
		},
	}
}
