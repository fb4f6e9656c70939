package models

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
	"gopkg.in/yaml.v3"
)

// WorldFile is the authored form of a world. Rooms do not list their
// occupants; those are derived from each character's room in declaration
// order.
type WorldFile struct {
	Player              string          `yaml:"player"`
	TurnOrder           []string        `yaml:"turn_order"`
	CharacterWithTurn   string          `yaml:"character_with_turn,omitempty"`
	EndOfGameConditions []ConditionFile `yaml:"end_of_game_conditions,omitempty"`
	Items               []ItemFile      `yaml:"items"`
	Characters          []CharacterFile `yaml:"characters"`
	Rooms               []RoomFile      `yaml:"rooms"`
}

type ConditionFile struct {
	CharacterDeath string `yaml:"character_death"`
}

type ItemFile struct {
	ID   string   `yaml:"id"`
	Name NameFile `yaml:"name"`
}

type CharacterFile struct {
	ID             string   `yaml:"id"`
	Name           NameFile `yaml:"name"`
	Room           string   `yaml:"room"`
	Items          []string `yaml:"items,omitempty"`
	EquippedWeapon string   `yaml:"equipped_weapon,omitempty"`
	Health         int      `yaml:"health"`
	CurrentHealth  *int     `yaml:"current_health,omitempty"`
	Faction        string   `yaml:"faction,omitempty"`
	PartyLeader    string   `yaml:"party_leader,omitempty"`
}

type RoomFile struct {
	ID          string          `yaml:"id"`
	Name        BilingualText   `yaml:"name"`
	Description []BilingualText `yaml:"description"`
	Items       []string        `yaml:"items,omitempty"`
	Exits       []ExitFile      `yaml:"exits,omitempty"`
	Triggers    []TriggerFile   `yaml:"triggers,omitempty"`
}

type ExitFile struct {
	ID               string        `yaml:"id"`
	Direction        BilingualText `yaml:"direction"`
	DirectionReverse BilingualText `yaml:"direction_reverse"`
	Room             string        `yaml:"room"`
}

// TriggerFile names exactly one of TakeItem or Move, and exactly one of
// Damage or Narrate.
type TriggerFile struct {
	TakeItem string          `yaml:"take_item,omitempty"`
	Move     string          `yaml:"move,omitempty"`
	Damage   int             `yaml:"damage,omitempty"`
	Narrate  []BilingualText `yaml:"narrate,omitempty"`
}

type NameFile struct {
	English EnglishNameFile `yaml:"english"`
	Gaelic  GaelicNameFile  `yaml:"gaelic"`
}

// EnglishNameFile is a pronoun, a proper name or a common noun, depending on
// which of Pronoun, Proper or Base is set.
type EnglishNameFile struct {
	Pronoun    string `yaml:"pronoun,omitempty"`
	Proper     string `yaml:"proper,omitempty"`
	Base       string `yaml:"base,omitempty"`
	Definite   string `yaml:"definite,omitempty"`
	Indefinite string `yaml:"indefinite,omitempty"`
	PGN        string `yaml:"pgn,omitempty"`
}

// GaelicNameFile is a pronoun, a proper name or a bare noun, depending on
// which of Pronoun, Proper or Indefinite is set.
type GaelicNameFile struct {
	Pronoun    string `yaml:"pronoun,omitempty"`
	Proper     string `yaml:"proper,omitempty"`
	Vocative   string `yaml:"vocative,omitempty"`
	Definite   string `yaml:"definite,omitempty"`
	Indefinite string `yaml:"indefinite,omitempty"`
	Dative     string `yaml:"dative,omitempty"`
	PGN        string `yaml:"pgn,omitempty"`
}

// LoadWorld reads and validates a world file.
func LoadWorld(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}
	s, err := ParseWorld(data)
	if err != nil {
		return State{}, fmt.Errorf("load world %s: %w", path, err)
	}
	return s, nil
}

// ParseWorld decodes a YAML world and validates it.
func ParseWorld(data []byte) (State, error) {
	var wf WorldFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return State{}, fmt.Errorf("failed to parse world YAML: %w", err)
	}
	s, err := wf.State()
	if err != nil {
		return State{}, err
	}
	if err := Validate(s); err != nil {
		return State{}, err
	}
	return s, nil
}

// State converts the authored world into its initial snapshot. Only shape
// errors are reported here; cross references are checked by Validate.
func (wf WorldFile) State() (State, error) {
	var errs []error
	s := State{
		Rooms:             make(map[string]Room, len(wf.Rooms)),
		Characters:        make(map[string]Character, len(wf.Characters)),
		Items:             make(map[string]Item, len(wf.Items)),
		Player:            wf.Player,
		TurnOrder:         wf.TurnOrder,
		CharacterWithTurn: wf.CharacterWithTurn,
	}
	if s.CharacterWithTurn == "" && len(s.TurnOrder) > 0 {
		s.CharacterWithTurn = s.TurnOrder[0]
	}

	for _, c := range wf.EndOfGameConditions {
		s.EndOfGameConditions = append(s.EndOfGameConditions, CharacterDeath{Character: c.CharacterDeath})
	}

	for _, item := range wf.Items {
		name, err := item.Name.Name()
		if err != nil {
			errs = append(errs, fmt.Errorf("item %q: %w", item.ID, err))
		}
		if _, dup := s.Items[item.ID]; dup {
			errs = append(errs, fmt.Errorf("item %q is declared twice", item.ID))
		}
		s.Items[item.ID] = Item{ID: item.ID, Name: name}
	}

	for _, r := range wf.Rooms {
		room := Room{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Items:       r.Items,
		}
		for _, e := range r.Exits {
			room.Exits = append(room.Exits, Exit(e))
		}
		for i, t := range r.Triggers {
			trigger, err := t.Trigger()
			if err != nil {
				errs = append(errs, fmt.Errorf("room %q trigger %d: %w", r.ID, i, err))
				continue
			}
			room.Triggers = append(room.Triggers, trigger)
		}
		if _, dup := s.Rooms[r.ID]; dup {
			errs = append(errs, fmt.Errorf("room %q is declared twice", r.ID))
		}
		s.Rooms[r.ID] = room
	}

	for _, c := range wf.Characters {
		name, err := c.Name.Name()
		if err != nil {
			errs = append(errs, fmt.Errorf("character %q: %w", c.ID, err))
		}
		if _, dup := s.Characters[c.ID]; dup {
			errs = append(errs, fmt.Errorf("character %q is declared twice", c.ID))
		}
		current := c.Health
		if c.CurrentHealth != nil {
			current = *c.CurrentHealth
		}
		s.Characters[c.ID] = Character{
			ID:             c.ID,
			Name:           name,
			Room:           c.Room,
			Items:          c.Items,
			EquippedWeapon: c.EquippedWeapon,
			MaxHealth:      c.Health,
			CurrentHealth:  current,
			Faction:        c.Faction,
			PartyLeader:    c.PartyLeader,
		}
		if room, ok := s.Rooms[c.Room]; ok {
			room.Characters = append(room.Characters, c.ID)
			s.Rooms[c.Room] = room
		}
	}

	if err := errors.Join(errs...); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidWorld, err)
	}
	return s, nil
}

// Trigger converts the authored trigger into its descriptor.
func (t TriggerFile) Trigger() (Trigger, error) {
	var action TriggerAction
	switch {
	case t.Damage != 0 && len(t.Narrate) > 0:
		return nil, errors.New("trigger has both damage and narrate")
	case t.Damage != 0:
		action = DamageAction{Amount: t.Damage}
	case len(t.Narrate) > 0:
		action = NarrateAction{Paragraphs: t.Narrate}
	default:
		return nil, errors.New("trigger has neither damage nor narrate")
	}

	switch {
	case t.TakeItem != "" && t.Move != "":
		return nil, errors.New("trigger watches both an item and an exit")
	case t.TakeItem != "":
		return TakeItemTrigger{Item: t.TakeItem, Action: action}, nil
	case t.Move != "":
		return MoveTrigger{Exit: t.Move, Action: action}, nil
	}
	return nil, errors.New("trigger watches neither an item nor an exit")
}

// Name converts the authored name into its grammatical forms.
func (n NameFile) Name() (Name, error) {
	en, err := n.English.NounPhrase()
	if err != nil {
		return Name{}, err
	}
	gd, err := n.Gaelic.NounPhrase()
	if err != nil {
		return Name{}, err
	}
	return Name{English: en, Gaelic: gd}, nil
}

func (e EnglishNameFile) NounPhrase() (english.NounPhrase, error) {
	pgn := english.PersonGenderNumber(e.PGN)
	switch {
	case e.Pronoun != "":
		return english.Pronoun{PGN: english.PersonGenderNumber(e.Pronoun)}, nil
	case e.Proper != "":
		if pgn == "" {
			return nil, fmt.Errorf("english proper name %q needs a pgn", e.Proper)
		}
		return english.ProperName{Name: e.Proper, PGN: pgn}, nil
	case e.Base != "":
		noun := english.CommonNoun{Base: e.Base, Definite: e.Definite, Indefinite: e.Indefinite, PGN: pgn}
		if noun.Definite == "" {
			noun.Definite = "the " + e.Base
		}
		if noun.Indefinite == "" {
			noun.Indefinite = indefiniteArticle(e.Base) + " " + e.Base
		}
		return noun, nil
	}
	return nil, errors.New("english name needs one of pronoun, proper or base")
}

func (g GaelicNameFile) NounPhrase() (gaelic.NounPhrase, error) {
	pgn := gaelic.PersonGenderNumber(g.PGN)
	switch {
	case g.Pronoun != "":
		return gaelic.Pronoun{PGN: gaelic.PersonGenderNumber(g.Pronoun)}, nil
	case g.Proper != "":
		if pgn == "" {
			return nil, fmt.Errorf("gaelic proper name %q needs a pgn", g.Proper)
		}
		vocative := g.Vocative
		if vocative == "" {
			vocative = "a " + gaelic.Lenite(g.Proper)
		}
		return gaelic.ProperName{Base: g.Proper, Vocative: vocative, PGN: pgn}, nil
	case g.Indefinite != "":
		if g.Definite == "" {
			return nil, fmt.Errorf("gaelic noun %q needs its definite form", g.Indefinite)
		}
		if pgn == "" {
			return nil, fmt.Errorf("gaelic noun %q needs a pgn", g.Indefinite)
		}
		return gaelic.BareNoun{Noun: gaelic.Noun{
			Definite:   g.Definite,
			Indefinite: g.Indefinite,
			Dative:     g.Dative,
			PGN:        pgn,
		}}, nil
	}
	return nil, errors.New("gaelic name needs one of pronoun, proper or indefinite")
}

func indefiniteArticle(word string) string {
	if word != "" && strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}
