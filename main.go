// Command bilingual-text-game plays the built-in world with no
// configuration. See cmd/game for the configurable entry point.
package main

import (
	"fmt"
	"os"

	"github.com/tatianab/bilingual-text-game/internal/content"
	"github.com/tatianab/bilingual-text-game/internal/game"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/tui"
)

func main() {
	err := tui.Run(tui.Options{
		World: content.Default,
		NewGame: func(s models.State) (*game.Game, error) {
			return game.New(s, game.Options{})
		},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
