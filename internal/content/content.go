// Package content ships the worlds that are built into the game.
package content

import (
	_ "embed"
	"fmt"

	"github.com/tatianab/bilingual-text-game/internal/models"
)

//go:embed worlds/cave.yaml
var caveWorld []byte

// DefaultWorldYAML returns the authored form of the default world. It also
// serves as the schema example given to the world generator.
func DefaultWorldYAML() []byte {
	return caveWorld
}

// Default returns the initial snapshot of the default world.
func Default() (models.State, error) {
	s, err := models.ParseWorld(caveWorld)
	if err != nil {
		return models.State{}, fmt.Errorf("default world: %w", err)
	}
	return s, nil
}
