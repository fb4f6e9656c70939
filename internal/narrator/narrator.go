// Package narrator renders events as bilingual prose. Narration is a pure
// function of an event and the snapshots around it.
package narrator

import (
	"errors"
	"fmt"

	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/parser"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

var ErrUnhandledEvent = errors.New("no narration rule for event")

// PossessiveStyle selects how "your sword" is said in Gaelic.
type PossessiveStyle int

const (
	// PrepositionalPossessive uses aig after the noun: "an claidheamh agad".
	PrepositionalPossessive PossessiveStyle = iota
	// PronominalPossessive uses a possessive pronoun before the noun, with
	// lenition where required: "do chlaidheamh".
	PronominalPossessive
)

type Option func(*Narrator)

func WithPossessiveStyle(style PossessiveStyle) Option {
	return func(n *Narrator) {
		n.possessiveStyle = style
	}
}

type Narrator struct {
	help            []parser.HelpEntry
	possessiveStyle PossessiveStyle
}

// New returns a Narrator. help is listed when the player asks for help.
func New(help []parser.HelpEntry, opts ...Option) *Narrator {
	n := &Narrator{help: help}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Narrate renders ev. before and after are the snapshots on either side of
// the command that produced ev. Events the player cannot observe render as
// an empty story.
func (n *Narrator) Narrate(ev event.Event, before, after models.State) (story.Story, error) {
	switch ev := ev.(type) {
	case event.CommandValidation:
		return story.Story{story.NewParagraph(story.FromText(ev.Message))}, nil
	case event.Help:
		return n.narrateHelp(), nil
	case event.Inventory:
		return n.narrateInventory(after), nil
	case event.Look:
		return n.narrateLook(ev, after), nil
	case event.Move:
		return n.narrateMove(ev, before, after), nil
	case event.TakeItem:
		return n.narrateTakeItem(ev, after), nil
	case event.Attack:
		return n.narrateAttack(ev, after), nil
	case event.TrapDamage:
		return n.narrateTrapDamage(ev, before, after), nil
	case event.Narration:
		return narrateNarration(ev, before, after), nil
	case event.Wait:
		return n.narrateWait(ev, after), nil
	case event.GameOver:
		return n.narrateGameOver(ev, after), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnhandledEvent, ev)
}

// NarrateAll renders events in order into a single story.
func (n *Narrator) NarrateAll(events []event.Event, before, after models.State) (story.Story, error) {
	var s story.Story
	for _, ev := range events {
		part, err := n.Narrate(ev, before, after)
		if err != nil {
			return nil, err
		}
		s = append(s, part...)
	}
	return s, nil
}
