package engine

import (
	"fmt"
	"slices"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

// result is the raw outcome of a handler, before triggers are resolved.
type result struct {
	Transition
	advancesTurn bool
	// rejected is set when the command was refused. The state is unchanged
	// and nothing else happens.
	rejected bool
}

func handle(cmd command.Command, state models.State) (result, error) {
	switch cmd := cmd.(type) {
	case command.Wait:
		return handleWait(cmd, state)
	case command.Move:
		return handleMove(cmd, state)
	case command.TakeItem:
		return handleTakeItem(cmd, state)
	case command.Attack:
		return handleAttack(cmd, state)
	case command.TrapDamage:
		return handleTrapDamage(cmd, state)
	case command.Narrate:
		return emit(state, event.Narration{Story: cmd.Story, Room: cmd.Room}), nil
	case command.Look:
		return emit(state, event.Look{IsPlayerInitiated: true}), nil
	case command.Help:
		return emit(state, event.Help{}), nil
	case command.Inventory:
		return emit(state, event.Inventory{}), nil
	}
	return result{}, fmt.Errorf("%w: unsupported command %T", ErrInvariant, cmd)
}

func emit(state models.State, events ...event.Event) result {
	return result{Transition: Transition{State: state, Events: events}}
}

func reject(state models.State, l1, l2 string) result {
	r := emit(state, event.CommandValidation{Message: models.BilingualText{L1: l1, L2: l2}})
	r.rejected = true
	return r
}

func rejectDead(state models.State) result {
	return reject(state, "The dead cannot act.", "Chan urrainn do na mairbh dad a dhèanamh.")
}

// character looks up id and checks its health is within range.
func character(state models.State, id string) (models.Character, error) {
	c, ok := state.Characters[id]
	if !ok {
		return models.Character{}, fmt.Errorf("%w: character %q", ErrUnknownEntity, id)
	}
	if c.CurrentHealth < 0 || c.CurrentHealth > c.MaxHealth {
		return models.Character{}, fmt.Errorf("%w: character %q has health %d of %d",
			ErrInvariant, id, c.CurrentHealth, c.MaxHealth)
	}
	return c, nil
}

func room(state models.State, id string) (models.Room, error) {
	r, ok := state.Rooms[id]
	if !ok {
		return models.Room{}, fmt.Errorf("%w: room %q", ErrUnknownEntity, id)
	}
	return r, nil
}

func handleWait(cmd command.Wait, state models.State) (result, error) {
	if _, err := character(state, cmd.Actor); err != nil {
		return result{}, err
	}
	r := emit(state, event.Wait{Actor: cmd.Actor})
	r.advancesTurn = true
	return r, nil
}

func handleMove(cmd command.Move, state models.State) (result, error) {
	actor, err := character(state, cmd.Actor)
	if err != nil {
		return result{}, err
	}
	if !actor.IsAlive() {
		return rejectDead(state), nil
	}
	source, err := room(state, actor.Room)
	if err != nil {
		return result{}, err
	}
	exit, ok := source.FindExit(cmd.Exit)
	if !ok {
		return reject(state, "There is no way out in that direction.", "Chan eil slighe a-mach an rathad sin."), nil
	}
	if _, err := room(state, exit.Room); err != nil {
		return result{}, err
	}

	followers := state.Followers(actor.ID, source.ID)
	movers := append([]string{actor.ID}, followers...)

	source.Characters = slices.DeleteFunc(slices.Clone(source.Characters), func(id string) bool {
		return slices.Contains(movers, id)
	})
	state = state.WithRoom(source)

	// Read the destination after updating the source so that an exit leading
	// back into the same room keeps everyone.
	destination := state.Rooms[exit.Room]
	destination.Characters = append(slices.Clone(destination.Characters), movers...)
	state = state.WithRoom(destination)

	for _, id := range movers {
		c := state.Characters[id]
		c.Room = destination.ID
		state = state.WithCharacter(c)
	}

	ev := event.Move{
		Actor:           actor.ID,
		Followers:       followers,
		SourceRoom:      source.ID,
		DestinationRoom: destination.ID,
		SourceExit:      exit.ID,
	}
	if back, ok := destination.ExitTo(source.ID); ok {
		ev.DestinationExit = back.ID
	}

	r := emit(state, ev)
	if actor.ID == state.Player {
		r.Events = append(r.Events, event.Look{IsPlayerInitiated: false})
	}
	r.advancesTurn = true
	return r, nil
}

func handleTakeItem(cmd command.TakeItem, state models.State) (result, error) {
	actor, err := character(state, cmd.Actor)
	if err != nil {
		return result{}, err
	}
	if _, ok := state.Items[cmd.Item]; !ok {
		return result{}, fmt.Errorf("%w: item %q", ErrUnknownEntity, cmd.Item)
	}
	if !actor.IsAlive() {
		return rejectDead(state), nil
	}
	r, err := room(state, actor.Room)
	if err != nil {
		return result{}, err
	}
	if !slices.Contains(r.Items, cmd.Item) {
		return reject(state, "There is nothing like that here.", "Chan eil dad mar sin an seo."), nil
	}

	r.Items = slices.DeleteFunc(slices.Clone(r.Items), func(id string) bool { return id == cmd.Item })
	actor.Items = append(slices.Clone(actor.Items), cmd.Item)
	state = state.WithRoom(r).WithCharacter(actor)

	return emit(state, event.TakeItem{Actor: actor.ID, Item: cmd.Item}), nil
}

func handleAttack(cmd command.Attack, state models.State) (result, error) {
	attacker, err := character(state, cmd.Attacker)
	if err != nil {
		return result{}, err
	}
	defender, err := character(state, cmd.Defender)
	if err != nil {
		return result{}, err
	}
	if !attacker.IsAlive() {
		return rejectDead(state), nil
	}
	if attacker.ID == defender.ID || defender.Room != attacker.Room || !defender.IsAlive() {
		return reject(state, "There is no one like that here to fight.", "Chan eil duine mar sin an seo airson sabaid."), nil
	}

	defender.CurrentHealth = max(0, defender.CurrentHealth-1)
	state = state.WithCharacter(defender)

	r := emit(state, event.Attack{
		Attacker: attacker.ID,
		Defender: defender.ID,
		Weapon:   attacker.EquippedWeapon,
		IsFatal:  defender.CurrentHealth == 0,
	})
	r.advancesTurn = true
	return r, nil
}

func handleTrapDamage(cmd command.TrapDamage, state models.State) (result, error) {
	defender, err := character(state, cmd.Defender)
	if err != nil {
		return result{}, err
	}
	if cmd.Damage < 0 {
		return result{}, fmt.Errorf("%w: negative trap damage %d", ErrInvariant, cmd.Damage)
	}

	defender.CurrentHealth = max(0, defender.CurrentHealth-cmd.Damage)
	state = state.WithCharacter(defender)

	return emit(state, event.TrapDamage{
		Defender: defender.ID,
		Damage:   cmd.Damage,
		IsFatal:  defender.CurrentHealth == 0,
	}), nil
}
