package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tatianab/bilingual-text-game/internal/config"
	"github.com/tatianab/bilingual-text-game/internal/content"
	"github.com/tatianab/bilingual-text-game/internal/controller"
	"github.com/tatianab/bilingual-text-game/internal/engine"
	"github.com/tatianab/bilingual-text-game/internal/game"
	"github.com/tatianab/bilingual-text-game/internal/generator"
	"github.com/tatianab/bilingual-text-game/internal/logger"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding, OutputPath: cfg.LogFile})
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting", zap.Uint64("seed", seed), zap.Bool("generator", cfg.GeneratorEnabled()), zap.String("world_file", cfg.WorldFile))

	eng := engine.New(log, engine.WithMaxTriggerDepth(cfg.MaxTriggerDepth))
	src := controller.NewSource(seed)

	opts := tui.Options{
		World: content.Default,
		NewGame: func(s models.State) (*game.Game, error) {
			return game.New(s, game.Options{
				Engine:     eng,
				Controller: controller.Default(src),
				Logger:     log,
			})
		},
		Logger: log,
	}
	if cfg.WorldFile != "" {
		opts.World = func() (models.State, error) { return models.LoadWorld(cfg.WorldFile) }
	}

	if cfg.GeneratorEnabled() {
		gen, err := generator.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			fmt.Printf("Error creating world generator: %v\n", err)
			os.Exit(1)
		}
		defer gen.Close()
		opts.Generator = gen
	}

	if err := tui.Run(opts); err != nil {
		log.Error("tui failed", zap.Error(err))
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
