package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
)

// ErrInvalidWorld wraps every content error found by Validate.
var ErrInvalidWorld = errors.New("invalid world")

// Validate checks that every cross reference in s resolves and that the
// numeric invariants hold. It reports all problems at once.
func Validate(s State) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, ok := s.Characters[s.Player]; !ok {
		bad("player %q is not a character", s.Player)
	}

	for id, item := range s.Items {
		if item.ID != id {
			bad("item %q is stored under id %q", item.ID, id)
		}
		errs = append(errs, validateName("item "+id, item.Name)...)
	}

	for id, c := range s.Characters {
		if c.ID != id {
			bad("character %q is stored under id %q", c.ID, id)
		}
		errs = append(errs, validateName("character "+id, c.Name)...)
		if c.MaxHealth <= 0 {
			bad("character %q has max health %d", id, c.MaxHealth)
		}
		if c.CurrentHealth < 0 || c.CurrentHealth > c.MaxHealth {
			bad("character %q has health %d outside [0, %d]", id, c.CurrentHealth, c.MaxHealth)
		}
		room, ok := s.Rooms[c.Room]
		if !ok {
			bad("character %q is in unknown room %q", id, c.Room)
		} else if !slices.Contains(room.Characters, id) {
			bad("character %q is not listed in room %q", id, c.Room)
		}
		for _, itemID := range c.Items {
			if _, ok := s.Items[itemID]; !ok {
				bad("character %q carries unknown item %q", id, itemID)
			}
		}
		if c.EquippedWeapon != "" && !slices.Contains(c.Items, c.EquippedWeapon) {
			bad("character %q has equipped %q which it does not carry", id, c.EquippedWeapon)
		}
		switch {
		case c.PartyLeader == "":
		case c.PartyLeader == id:
			bad("character %q follows itself", id)
		case id == s.Player:
			bad("player %q cannot follow another character", id)
		default:
			if _, ok := s.Characters[c.PartyLeader]; !ok {
				bad("character %q follows unknown character %q", id, c.PartyLeader)
			}
		}
	}

	exitRoom := map[string]string{}
	for id, r := range s.Rooms {
		if r.ID != id {
			bad("room %q is stored under id %q", r.ID, id)
		}
		for _, cid := range r.Characters {
			c, ok := s.Characters[cid]
			if !ok {
				bad("room %q lists unknown character %q", id, cid)
			} else if c.Room != id {
				bad("room %q lists character %q which is in room %q", id, cid, c.Room)
			}
		}
		for _, itemID := range r.Items {
			if _, ok := s.Items[itemID]; !ok {
				bad("room %q lists unknown item %q", id, itemID)
			}
		}
		for _, exit := range r.Exits {
			if prev, dup := exitRoom[exit.ID]; dup {
				bad("exit %q is used by rooms %q and %q", exit.ID, prev, id)
			}
			exitRoom[exit.ID] = id
			if _, ok := s.Rooms[exit.Room]; !ok {
				bad("exit %q of room %q leads to unknown room %q", exit.ID, id, exit.Room)
			}
		}
		for i, trigger := range r.Triggers {
			switch t := trigger.(type) {
			case TakeItemTrigger:
				if _, ok := s.Items[t.Item]; !ok {
					bad("trigger %d of room %q watches unknown item %q", i, id, t.Item)
				}
			case MoveTrigger:
				if _, ok := r.FindExit(t.Exit); !ok {
					bad("trigger %d of room %q watches exit %q which the room does not have", i, id, t.Exit)
				}
			default:
				bad("trigger %d of room %q has unsupported type %T", i, id, trigger)
			}
			switch a := trigger.TriggerAction().(type) {
			case DamageAction:
				if a.Amount < 0 {
					bad("trigger %d of room %q deals negative damage %d", i, id, a.Amount)
				}
			case NarrateAction:
			default:
				bad("trigger %d of room %q has unsupported action %T", i, id, a)
			}
		}
	}

	owners := map[string][]string{}
	for id, c := range s.Characters {
		for _, itemID := range c.Items {
			owners[itemID] = append(owners[itemID], "character "+id)
		}
	}
	for id, r := range s.Rooms {
		for _, itemID := range r.Items {
			owners[itemID] = append(owners[itemID], "room "+id)
		}
	}
	for itemID, held := range owners {
		if len(held) > 1 {
			slices.Sort(held)
			bad("item %q is in more than one place: %s", itemID, strings.Join(held, ", "))
		}
	}

	for i, condition := range s.EndOfGameConditions {
		switch c := condition.(type) {
		case CharacterDeath:
			if _, ok := s.Characters[c.Character]; !ok {
				bad("end of game condition %d refers to unknown character %q", i, c.Character)
			}
		default:
			bad("end of game condition %d has unsupported type %T", i, condition)
		}
	}

	if err := ValidateTurnOrder(s); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorld, err)
	}
	return nil
}

// ValidateTurnOrder checks that the turn order only names known characters
// and that the current turn holder is part of it.
func ValidateTurnOrder(s State) error {
	var errs []error
	if len(s.TurnOrder) == 0 {
		errs = append(errs, errors.New("turn order is empty"))
	}
	for _, id := range s.TurnOrder {
		if _, ok := s.Characters[id]; !ok {
			errs = append(errs, fmt.Errorf("turn order names unknown character %q", id))
		}
	}
	if !slices.Contains(s.TurnOrder, s.CharacterWithTurn) {
		errs = append(errs, fmt.Errorf("turn holder %q is not in the turn order", s.CharacterWithTurn))
	}
	if !slices.Contains(s.TurnOrder, s.Player) {
		errs = append(errs, fmt.Errorf("player %q is not in the turn order", s.Player))
	}
	return errors.Join(errs...)
}

func validateName(owner string, n Name) []error {
	var errs []error
	if n.English == nil || english.Definite(n.English) == "" {
		errs = append(errs, fmt.Errorf("%s has no English name", owner))
	} else if !n.English.PersonGenderNumber().Valid() {
		errs = append(errs, fmt.Errorf("%s has unknown English person/gender/number %q", owner, n.English.PersonGenderNumber()))
	}
	if n.Gaelic == nil || gaelic.Definite(n.Gaelic, false) == "" {
		errs = append(errs, fmt.Errorf("%s has no Gaelic name", owner))
	} else if !n.Gaelic.PersonGenderNumber().Valid() {
		errs = append(errs, fmt.Errorf("%s has unknown Gaelic person/gender/number %q", owner, n.Gaelic.PersonGenderNumber()))
	}
	return errs
}
