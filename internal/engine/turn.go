package engine

import (
	"fmt"
	"slices"

	"github.com/tatianab/bilingual-text-game/internal/models"
)

// NextTurn returns the character who acts after the current turn holder. The
// turn order is scanned cyclically and dead characters are skipped. If every
// character is dead the holder is returned unchanged.
func NextTurn(state models.State) (string, error) {
	start := slices.Index(state.TurnOrder, state.CharacterWithTurn)
	if start < 0 {
		return "", fmt.Errorf("%w: turn holder %q is not in the turn order", ErrInvariant, state.CharacterWithTurn)
	}
	n := len(state.TurnOrder)
	for offset := 1; offset <= n; offset++ {
		id := state.TurnOrder[(start+offset)%n]
		c, ok := state.Characters[id]
		if !ok {
			return "", fmt.Errorf("%w: turn order names unknown character %q", ErrInvariant, id)
		}
		if c.IsAlive() {
			return id, nil
		}
	}
	return state.CharacterWithTurn, nil
}
