package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/tatianab/bilingual-text-game/internal/config"
	"github.com/tatianab/bilingual-text-game/internal/content"
	"github.com/tatianab/bilingual-text-game/internal/controller"
	"github.com/tatianab/bilingual-text-game/internal/game"
	"github.com/tatianab/bilingual-text-game/internal/generator"
	"github.com/tatianab/bilingual-text-game/internal/logger"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

const (
	maxTurns = 30
	theme    = "a flooded crypt beneath a ruined abbey"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: "console", OutputPath: "stderr"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	// 1. Pick the world
	fmt.Println("--- Step 1: Loading world ---")
	world, err := loadWorld(ctx, cfg, zl)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = 1
	}
	fmt.Printf("Seed: %d\n\n", seed)

	// The same controller plays every character, the player included.
	ai := controller.Default(controller.NewSource(seed))
	g, err := game.New(world, game.Options{Controller: ai, Logger: zl})
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	intro, err := g.Intro()
	if err != nil {
		log.Fatalf("Intro failed: %v", err)
	}
	printStory(intro)

	// 2. Play the game
	for turn := 1; turn <= maxTurns && !g.IsOver(); turn++ {
		fmt.Printf("--- Turn %d ---\n", turn)

		s := g.State()
		out, err := g.SubmitCommand(ai.Command(s.Player, s))
		if err != nil {
			log.Fatalf("Turn %d failed: %v", turn, err)
		}
		printStory(out)

		player := g.State().PlayerCharacter()
		fmt.Printf("Health=%d/%d Room=%s Items=%v\n\n", player.CurrentHealth, player.MaxHealth, player.Room, player.Items)
	}

	if g.IsOver() {
		fmt.Println("Game ended.")
	} else {
		fmt.Printf("Stopped after %d turns.\n", maxTurns)
	}
}

func loadWorld(ctx context.Context, cfg *config.Config, zl *zap.Logger) (models.State, error) {
	switch {
	case cfg.WorldFile != "":
		return models.LoadWorld(cfg.WorldFile)
	case cfg.GeneratorEnabled():
		gen, err := generator.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, zl)
		if err != nil {
			return models.State{}, err
		}
		defer gen.Close()
		fmt.Printf("Generating a world for %q\n", theme)
		return gen.GenerateWorld(ctx, theme)
	}
	return content.Default()
}

func printStory(s story.Story) {
	if len(s) == 0 {
		return
	}
	fmt.Println(s.Text(story.L2))
	fmt.Println(s.Text(story.L1))
	fmt.Println()
}
