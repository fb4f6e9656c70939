package engine

import (
	"fmt"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

// resolveTriggers walks the events of t in order. Every trigger an event sets
// off is executed right away and its events are spliced in after the event
// that caused it. Nothing more is resolved once the game is over.
func (e *Engine) resolveTriggers(t Transition, depth int) (Transition, error) {
	state := t.State
	events := make([]event.Event, 0, len(t.Events))

	for _, ev := range t.Events {
		events = append(events, ev)

		cmds, err := triggeredCommands(ev, state)
		if err != nil {
			return Transition{}, err
		}
		for _, cmd := range cmds {
			if depth+1 > e.maxTriggerDepth {
				return Transition{}, fmt.Errorf("%w: more than %d levels", ErrTriggerDepthExceeded, e.maxTriggerDepth)
			}
			nested, err := e.execute(cmd, state, depth+1)
			if err != nil {
				return Transition{}, err
			}
			state = nested.State
			events = append(events, nested.Events...)
			if state.GameOver {
				break
			}
		}

		if state.GameOver {
			break
		}
	}

	return Transition{State: state, Events: events}, nil
}

// triggeredCommands returns the commands built by the triggers ev sets off.
// Item triggers are looked up in the room the taker is in after taking the
// item, move triggers in the room that was left.
func triggeredCommands(ev event.Event, state models.State) ([]command.Command, error) {
	var cmds []command.Command
	switch ev := ev.(type) {
	case event.TakeItem:
		r, ok := state.RoomOf(ev.Actor)
		if !ok {
			return nil, fmt.Errorf("%w: room of character %q", ErrUnknownEntity, ev.Actor)
		}
		for _, trigger := range r.Triggers {
			if t, ok := trigger.(models.TakeItemTrigger); ok && t.Item == ev.Item {
				cmd, err := commandFor(t.Action, ev.Actor, r.ID)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, cmd)
			}
		}
	case event.Move:
		r, err := room(state, ev.SourceRoom)
		if err != nil {
			return nil, err
		}
		for _, trigger := range r.Triggers {
			if t, ok := trigger.(models.MoveTrigger); ok && t.Exit == ev.SourceExit {
				cmd, err := commandFor(t.Action, ev.Actor, r.ID)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, cmd)
			}
		}
	}
	return cmds, nil
}

// commandFor builds the command described by action for the character that
// set the trigger off in roomID.
func commandFor(action models.TriggerAction, characterID, roomID string) (command.Command, error) {
	switch a := action.(type) {
	case models.DamageAction:
		return command.TrapDamage{Defender: characterID, Damage: a.Amount}, nil
	case models.NarrateAction:
		s := make(story.Story, 0, len(a.Paragraphs))
		for _, p := range a.Paragraphs {
			s = append(s, story.NewParagraph(story.FromText(p)))
		}
		return command.Narrate{Story: s, Room: roomID}, nil
	}
	return nil, fmt.Errorf("%w: unsupported trigger action %T", ErrInvariant, action)
}
