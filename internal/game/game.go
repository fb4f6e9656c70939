// Package game runs a single play session: it feeds player input and the
// decisions of non-player characters through the engine and narrates the
// results.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/controller"
	"github.com/tatianab/bilingual-text-game/internal/engine"
	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/narrator"
	"github.com/tatianab/bilingual-text-game/internal/parser"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

// ErrGameOver is returned for input received after the game ended.
var ErrGameOver = errors.New("game is over")

// Options configures a Game. Nil fields get the defaults.
type Options struct {
	Parser     *parser.Parser
	Engine     *engine.Engine
	Controller *controller.Controller
	Narrator   *narrator.Narrator
	Logger     *zap.Logger
}

type Game struct {
	id         uuid.UUID
	state      models.State
	parser     *parser.Parser
	engine     *engine.Engine
	controller *controller.Controller
	narrator   *narrator.Narrator
	logger     *zap.Logger
}

// New starts a session in state, which must be a valid world.
func New(state models.State, opts Options) (*Game, error) {
	if err := models.Validate(state); err != nil {
		return nil, err
	}

	g := &Game{
		id:         uuid.New(),
		state:      state,
		parser:     opts.Parser,
		engine:     opts.Engine,
		controller: opts.Controller,
		narrator:   opts.Narrator,
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	g.logger = logger.With(zap.String("session", g.id.String()))

	if g.parser == nil {
		g.parser = parser.Default(parser.DefaultKeywords())
	}
	if g.engine == nil {
		g.engine = engine.New(g.logger)
	}
	if g.controller == nil {
		g.controller = controller.Default(controller.NewSource(uint64(time.Now().UnixNano())))
	}
	if g.narrator == nil {
		g.narrator = narrator.New(g.parser.HelpEntries())
	}

	g.logger.Info("game started",
		zap.String("player", state.Player),
		zap.Int("rooms", len(state.Rooms)),
		zap.Int("characters", len(state.Characters)),
	)
	return g, nil
}

func (g *Game) ID() string {
	return g.id.String()
}

// State returns the current snapshot.
func (g *Game) State() models.State {
	return g.state
}

func (g *Game) IsOver() bool {
	return g.state.GameOver
}

func (g *Game) ValidInputs() []string {
	return g.parser.ValidInputs(g.state)
}

func (g *Game) Previews() []parser.Preview {
	return g.parser.Previews(g.state)
}

// Intro welcomes the player, describes the starting room and plays any
// turns that come before the player's first one.
func (g *Game) Intro() (story.Story, error) {
	welcome := models.BilingualText{L1: "Welcome!", L2: "Fàilte!"}
	if entries := g.parser.HelpEntries(); len(entries) > 0 {
		k := entries[0].Keyword
		welcome.L1 += fmt.Sprintf(" Type %q to see what you can do.", k.L1)
		welcome.L2 += fmt.Sprintf(" Sgrìobh %q airson na as urrainn dhut a dhèanamh fhaicinn.", k.L2)
	}

	s := story.Story{story.NewParagraph(story.FromText(welcome))}
	s = append(s, g.narrator.DescribeRoom(g.state)...)

	npc, err := g.playOtherTurns()
	return append(s, npc...), err
}

// Submit handles a line typed by the player. Input that does not parse is
// answered with an explanation and leaves the game untouched.
func (g *Game) Submit(input string) (story.Story, error) {
	if g.state.GameOver {
		return nil, ErrGameOver
	}
	s := story.Story{story.UserInput{Input: input}}

	cmd, err := g.parser.Parse(input, g.state)
	var verr *parser.ValidationError
	if errors.As(err, &verr) {
		g.logger.Info("input rejected", zap.String("input", input), zap.String("reason", verr.Message.L1))
		out, err := g.narrator.Narrate(event.CommandValidation{Message: verr.Message}, g.state, g.state)
		return append(s, out...), err
	}
	if err != nil {
		return s, err
	}

	out, err := g.SubmitCommand(cmd)
	return append(s, out...), err
}

// SubmitCommand executes a command built for the player, for example from a
// preview, and then lets the other characters act until it is the player's
// turn again.
func (g *Game) SubmitCommand(cmd command.Command) (story.Story, error) {
	if g.state.GameOver {
		return nil, ErrGameOver
	}

	s, _, err := g.step(cmd)
	if err != nil {
		return s, err
	}

	npc, err := g.playOtherTurns()
	return append(s, npc...), err
}

// step executes cmd and narrates its events. rejected reports whether the
// engine refused the command.
func (g *Game) step(cmd command.Command) (s story.Story, rejected bool, err error) {
	before := g.state
	t, err := g.engine.Execute(cmd, before)
	if err != nil {
		g.logger.Error("command failed", zap.String("command", fmt.Sprintf("%T", cmd)), zap.Error(err))
		return nil, false, fmt.Errorf("execute %T: %w", cmd, err)
	}
	g.state = t.State

	if len(t.Events) == 1 {
		_, rejected = t.Events[0].(event.CommandValidation)
	}

	s, err = g.narrator.NarrateAll(t.Events, before, t.State)
	if err != nil {
		return nil, rejected, err
	}

	if g.state.GameOver {
		g.logger.Info("game over")
	}
	return s, rejected, nil
}

// playOtherTurns lets the controller act for every character whose turn
// comes before the player's. Each character gets at most one turn per call.
func (g *Game) playOtherTurns() (story.Story, error) {
	var s story.Story
	for range len(g.state.TurnOrder) {
		if g.state.GameOver || g.state.CharacterWithTurn == g.state.Player {
			break
		}
		actor := g.state.CharacterWithTurn
		cmd := g.controller.Command(actor, g.state)
		g.logger.Debug("turn", zap.String("character", actor), zap.String("command", fmt.Sprintf("%T", cmd)))

		out, rejected, err := g.step(cmd)
		if err != nil {
			return s, err
		}
		if rejected {
			// Rejected controller commands are not narrated.
			g.logger.Warn("controller command rejected", zap.String("character", actor))
			out = nil
		}
		s = append(s, out...)

		// Commands like taking an item do not end a turn on their own.
		if !g.state.GameOver && g.state.CharacterWithTurn == actor {
			next, err := engine.NextTurn(g.state)
			if err != nil {
				return s, err
			}
			g.state = g.state.WithTurn(next)
		}
	}
	return s, nil
}
