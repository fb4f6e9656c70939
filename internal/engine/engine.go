// Package engine executes commands against a world snapshot. Execution is a
// pure function of the command and the snapshot: it returns a new snapshot
// and the events describing what happened.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

var (
	// ErrGameOver is returned when a command is executed after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrTriggerDepthExceeded means triggers kept firing each other past the
	// configured depth, which points at a malformed world.
	ErrTriggerDepthExceeded = errors.New("trigger recursion too deep")
	// ErrUnknownEntity means a command named a character, room or item the
	// world does not have.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrInvariant means the state is inconsistent, e.g. health out of range.
	ErrInvariant = errors.New("invariant violated")
)

// DefaultMaxTriggerDepth is used unless WithMaxTriggerDepth says otherwise.
const DefaultMaxTriggerDepth = 16

// Transition is the result of executing one command.
type Transition struct {
	State  models.State
	Events []event.Event
}

// Engine applies commands to world snapshots. It holds no game state.
type Engine struct {
	logger          *zap.Logger
	maxTriggerDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxTriggerDepth limits how deeply triggers may fire other triggers.
func WithMaxTriggerDepth(n int) Option {
	return func(e *Engine) {
		e.maxTriggerDepth = n
	}
}

// New returns an engine that logs events to logger at debug level.
func New(logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		logger:          logger,
		maxTriggerDepth: DefaultMaxTriggerDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs cmd against state, resolves any triggers it sets off and
// checks whether the game has ended. Errors are fatal: they mean the world or
// the engine is broken. Commands that are merely not allowed produce a
// CommandValidation event instead.
func (e *Engine) Execute(cmd command.Command, state models.State) (Transition, error) {
	if state.GameOver {
		return Transition{}, ErrGameOver
	}
	t, err := e.execute(cmd, state, 0)
	if err != nil {
		return Transition{}, err
	}
	for _, ev := range t.Events {
		e.logger.Debug("event", zap.String("event", event.Name(ev)))
	}
	return t, nil
}

func (e *Engine) execute(cmd command.Command, state models.State, depth int) (Transition, error) {
	e.logger.Debug("executing command",
		zap.String("command", fmt.Sprintf("%T", cmd)),
		zap.Int("depth", depth),
	)

	r, err := handle(cmd, state)
	if err != nil {
		return Transition{}, err
	}
	if r.rejected {
		return r.Transition, nil
	}

	t, err := e.resolveTriggers(r.Transition, depth)
	if err != nil {
		return Transition{}, err
	}

	if r.advancesTurn && !t.State.GameOver {
		next, err := NextTurn(t.State)
		if err != nil {
			return Transition{}, err
		}
		t.State = t.State.WithTurn(next)
	}

	return evaluateEndOfGame(t), nil
}

// evaluateEndOfGame ends the game on the first satisfied condition. The
// player's death is always checked first.
func evaluateEndOfGame(t Transition) Transition {
	if t.State.GameOver {
		return t
	}
	conditions := append(
		[]models.EndOfGameCondition{models.CharacterDeath{Character: t.State.Player}},
		t.State.EndOfGameConditions...,
	)
	for _, condition := range conditions {
		if satisfied(condition, t.State) {
			t.State = t.State.WithGameOver()
			t.Events = append(t.Events, event.GameOver{Condition: condition})
			return t
		}
	}
	return t
}

func satisfied(condition models.EndOfGameCondition, state models.State) bool {
	switch c := condition.(type) {
	case models.CharacterDeath:
		character, ok := state.Characters[c.Character]
		return ok && character.CurrentHealth <= 0
	}
	return false
}
