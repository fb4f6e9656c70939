package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/content"
	"github.com/tatianab/bilingual-text-game/internal/event"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

func newEngine(opts ...Option) *Engine {
	return New(zap.NewNop(), opts...)
}

func defaultWorld(t *testing.T) models.State {
	t.Helper()
	s, err := content.Default()
	require.NoError(t, err)
	return s
}

// place moves a character into roomID without going through an exit.
func place(s models.State, characterID, roomID string) models.State {
	c := s.Characters[characterID]
	from := s.Rooms[c.Room]
	from.Characters = slices.DeleteFunc(slices.Clone(from.Characters), func(id string) bool { return id == characterID })
	s = s.WithRoom(from)
	to := s.Rooms[roomID]
	to.Characters = append(slices.Clone(to.Characters), characterID)
	c.Room = roomID
	return s.WithRoom(to).WithCharacter(c)
}

func withHealth(s models.State, characterID string, health int) models.State {
	c := s.Characters[characterID]
	c.CurrentHealth = health
	return s.WithCharacter(c)
}

func eventNames(events []event.Event) []string {
	var names []string
	for _, ev := range events {
		names = append(names, event.Name(ev))
	}
	return names
}

func execute(t *testing.T, e *Engine, cmd command.Command, s models.State) Transition {
	t.Helper()
	tr, err := e.Execute(cmd, s)
	require.NoError(t, err)
	return tr
}

func TestMove(t *testing.T) {
	s := defaultWorld(t)
	tr := execute(t, newEngine(), command.Move{Actor: "player", Exit: "cave-north"}, s)

	assert.Equal(t, []event.Event{
		event.Move{
			Actor:           "player",
			Followers:       []string{"morag"},
			SourceRoom:      "cave",
			DestinationRoom: "tunnel",
			SourceExit:      "cave-north",
			DestinationExit: "tunnel-south",
		},
		event.Look{IsPlayerInitiated: false},
	}, tr.Events)

	after := tr.State
	assert.Equal(t, "tunnel", after.Characters["player"].Room)
	assert.Equal(t, "tunnel", after.Characters["morag"].Room)
	assert.Empty(t, after.Rooms["cave"].Characters)
	assert.Equal(t, []string{"rat", "player", "morag"}, after.Rooms["tunnel"].Characters)
	assert.Equal(t, "morag", after.CharacterWithTurn)

	// The earlier snapshot is untouched.
	assert.Equal(t, "cave", s.Characters["player"].Room)
	assert.Equal(t, []string{"player", "morag"}, s.Rooms["cave"].Characters)
	assert.Equal(t, "player", s.CharacterWithTurn)
}

func TestMoveLeavesDeadFollowersBehind(t *testing.T) {
	s := withHealth(defaultWorld(t), "morag", 0)
	tr := execute(t, newEngine(), command.Move{Actor: "player", Exit: "cave-north"}, s)

	move := tr.Events[0].(event.Move)
	assert.Empty(t, move.Followers)
	assert.Equal(t, "cave", tr.State.Characters["morag"].Room)
	assert.Equal(t, []string{"morag"}, tr.State.Rooms["cave"].Characters)
}

func TestNonPlayerMoveHasNoLook(t *testing.T) {
	s := defaultWorld(t)
	tr := execute(t, newEngine(), command.Move{Actor: "rat", Exit: "tunnel-south"}, s)

	assert.Equal(t, []string{"move"}, eventNames(tr.Events))
	assert.Equal(t, "cave", tr.State.Characters["rat"].Room)
}

func TestAttack(t *testing.T) {
	e := newEngine()
	s := execute(t, e, command.Move{Actor: "player", Exit: "cave-north"}, defaultWorld(t)).State

	tr := execute(t, e, command.Attack{Attacker: "player", Defender: "rat"}, s)

	assert.Equal(t, []event.Event{
		event.Attack{Attacker: "player", Defender: "rat", Weapon: "dagger", IsFatal: true},
	}, tr.Events)
	assert.Equal(t, 0, tr.State.Characters["rat"].CurrentHealth)
	assert.Equal(t, 10, tr.State.Characters["player"].CurrentHealth, "no counterattack")
	// The rat is dead so its turn is skipped.
	assert.Equal(t, "skeleton", tr.State.CharacterWithTurn)
}

func TestAttackWithoutWeapon(t *testing.T) {
	s := place(defaultWorld(t), "rat", "cave")
	tr := execute(t, newEngine(), command.Attack{Attacker: "rat", Defender: "player"}, s)

	assert.Equal(t, []event.Event{
		event.Attack{Attacker: "rat", Defender: "player", IsFatal: false},
	}, tr.Events)
	assert.Equal(t, 9, tr.State.Characters["player"].CurrentHealth)
}

func TestTakeItemTrap(t *testing.T) {
	e := newEngine()
	s := execute(t, e, command.Move{Actor: "player", Exit: "cave-north"}, defaultWorld(t)).State

	tr := execute(t, e, command.TakeItem{Actor: "player", Item: "key"}, s)

	assert.Equal(t, []event.Event{
		event.TakeItem{Actor: "player", Item: "key"},
		event.TrapDamage{Defender: "player", Damage: 1, IsFatal: false},
	}, tr.Events)
	assert.Equal(t, 9, tr.State.Characters["player"].CurrentHealth)
	assert.Equal(t, []string{"dagger", "key"}, tr.State.Characters["player"].Items)
	assert.Empty(t, tr.State.Rooms["tunnel"].Items)
	assert.Equal(t, s.CharacterWithTurn, tr.State.CharacterWithTurn, "taking an item keeps the turn")
}

func TestMoveTrapFiresEveryTime(t *testing.T) {
	e := newEngine()
	s := execute(t, e, command.Move{Actor: "player", Exit: "cave-north"}, defaultWorld(t)).State

	for i, wantHealth := range []int{9, 8, 7} {
		tr := execute(t, e, command.Move{Actor: "player", Exit: "tunnel-east"}, s)
		assert.Equal(t, []string{"move", "narration", "trapDamage", "look"}, eventNames(tr.Events), "pass %d", i)
		assert.Equal(t, wantHealth, tr.State.Characters["player"].CurrentHealth, "pass %d", i)

		narration := tr.Events[1].(event.Narration)
		assert.Equal(t, "Stones fall from the roof!", narration.Story.Text(story.L1))
		assert.Equal(t, "Tuitidh clachan bhon mhullach!", narration.Story.Text(story.L2))
		assert.Equal(t, "tunnel", narration.Room)

		// Walking back west does not set anything off.
		back := execute(t, e, command.Move{Actor: "player", Exit: "lair-west"}, tr.State)
		assert.Equal(t, []string{"move", "look"}, eventNames(back.Events))
		s = back.State
	}
}

func TestFatalTrapStopsResolution(t *testing.T) {
	e := newEngine()
	s := execute(t, e, command.Move{Actor: "player", Exit: "cave-north"}, defaultWorld(t)).State
	s = withHealth(s, "player", 1)

	tr := execute(t, e, command.Move{Actor: "player", Exit: "tunnel-east"}, s)

	assert.Equal(t, []string{"move", "narration", "trapDamage", "gameOver"}, eventNames(tr.Events))
	assert.Equal(t, event.GameOver{Condition: models.CharacterDeath{Character: "player"}}, tr.Events[3])
	assert.True(t, tr.State.GameOver)
}

func TestBossDeathEndsGame(t *testing.T) {
	e := newEngine()
	s := place(defaultWorld(t), "player", "lair")
	s = withHealth(s, "dragon", 1)

	tr := execute(t, e, command.Attack{Attacker: "player", Defender: "dragon"}, s)

	assert.Equal(t, []event.Event{
		event.Attack{Attacker: "player", Defender: "dragon", Weapon: "dagger", IsFatal: true},
		event.GameOver{Condition: models.CharacterDeath{Character: "dragon"}},
	}, tr.Events)
	assert.True(t, tr.State.GameOver)

	_, err := e.Execute(command.Look{}, tr.State)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestPlayerDeathIsCheckedFirst(t *testing.T) {
	s := defaultWorld(t)
	s = withHealth(s, "dragon", 0)
	s = withHealth(s, "player", 0)

	tr := execute(t, newEngine(), command.Look{}, s)

	assert.Equal(t, event.GameOver{Condition: models.CharacterDeath{Character: "player"}}, tr.Events[len(tr.Events)-1])
}

func TestRejectedCommands(t *testing.T) {
	s := defaultWorld(t)

	tests := []struct {
		name string
		cmd  command.Command
		s    models.State
	}{
		{"unknown exit", command.Move{Actor: "player", Exit: "tunnel-east"}, s},
		{"item elsewhere", command.TakeItem{Actor: "player", Item: "key"}, s},
		{"defender elsewhere", command.Attack{Attacker: "player", Defender: "dragon"}, s},
		{"attack self", command.Attack{Attacker: "player", Defender: "player"}, s},
		{"dead defender", command.Attack{Attacker: "player", Defender: "morag"}, withHealth(s, "morag", 0)},
		{"dead actor", command.Move{Actor: "rat", Exit: "tunnel-south"}, withHealth(s, "rat", 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := execute(t, newEngine(), tt.cmd, tt.s)
			require.Len(t, tr.Events, 1)
			assert.IsType(t, event.CommandValidation{}, tr.Events[0])
			assert.Equal(t, tt.s, tr.State)
		})
	}
}

func TestExecuteErrors(t *testing.T) {
	s := defaultWorld(t)

	_, err := newEngine().Execute(command.Wait{Actor: "ghost"}, s)
	assert.ErrorIs(t, err, ErrUnknownEntity)

	_, err = newEngine().Execute(command.TakeItem{Actor: "player", Item: "crown"}, s)
	assert.ErrorIs(t, err, ErrUnknownEntity)

	_, err = newEngine().Execute(command.Wait{Actor: "player"}, withHealth(s, "player", 11))
	assert.ErrorIs(t, err, ErrInvariant)

	_, err = newEngine().Execute(command.TrapDamage{Defender: "player", Damage: -1}, s)
	assert.ErrorIs(t, err, ErrInvariant)

	tunnel := execute(t, newEngine(), command.Move{Actor: "player", Exit: "cave-north"}, s).State
	_, err = newEngine(WithMaxTriggerDepth(0)).Execute(command.TakeItem{Actor: "player", Item: "key"}, tunnel)
	assert.ErrorIs(t, err, ErrTriggerDepthExceeded)
}

func TestTrapDamageClampsHealth(t *testing.T) {
	s := defaultWorld(t)
	for damage := 0; damage <= 15; damage++ {
		tr := execute(t, newEngine(), command.TrapDamage{Defender: "morag", Damage: damage}, s)
		got := tr.State.Characters["morag"].CurrentHealth
		assert.Equal(t, max(0, 6-damage), got, "damage %d", damage)
		assert.Equal(t, got == 0, tr.Events[0].(event.TrapDamage).IsFatal)
	}
}

func TestExecuteIsDeterministic(t *testing.T) {
	s := defaultWorld(t)
	e := newEngine()
	cmds := []command.Command{
		command.Move{Actor: "player", Exit: "cave-north"},
		command.Wait{Actor: "player"},
		command.Look{},
		command.TakeItem{Actor: "player", Item: "lantern"},
	}
	for _, cmd := range cmds {
		first := execute(t, e, cmd, s)
		second := execute(t, e, cmd, s)
		assert.Equal(t, first, second)
	}
}

func TestWaitAdvancesTurn(t *testing.T) {
	s := defaultWorld(t)
	tr := execute(t, newEngine(), command.Wait{Actor: "player"}, s)
	assert.Equal(t, []event.Event{event.Wait{Actor: "player"}}, tr.Events)
	assert.Equal(t, "morag", tr.State.CharacterWithTurn)

	tr = execute(t, newEngine(), command.Wait{Actor: "player"}, withHealth(s, "morag", 0))
	assert.Equal(t, "rat", tr.State.CharacterWithTurn)
}

func TestNoStateChangeCommands(t *testing.T) {
	s := defaultWorld(t)
	tests := []struct {
		cmd  command.Command
		want event.Event
	}{
		{command.Look{}, event.Look{IsPlayerInitiated: true}},
		{command.Help{}, event.Help{}},
		{command.Inventory{}, event.Inventory{}},
		{command.Narrate{Story: story.Story{story.UserInput{Input: "hi"}}}, event.Narration{Story: story.Story{story.UserInput{Input: "hi"}}}},
	}
	for _, tt := range tests {
		tr := execute(t, newEngine(), tt.cmd, s)
		assert.Equal(t, []event.Event{tt.want}, tr.Events)
		assert.Equal(t, s, tr.State)
	}
}

func TestNextTurn(t *testing.T) {
	s := defaultWorld(t)

	next, err := NextTurn(s)
	require.NoError(t, err)
	assert.Equal(t, "morag", next)

	s.CharacterWithTurn = "dragon"
	next, err = NextTurn(s)
	require.NoError(t, err)
	assert.Equal(t, "player", next, "wraps around")

	s.CharacterWithTurn = "nobody"
	_, err = NextTurn(s)
	assert.ErrorIs(t, err, ErrInvariant)

	s.CharacterWithTurn = "player"
	s.TurnOrder = []string{"player", "ghost"}
	_, err = NextTurn(s)
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestNextTurnAllDead(t *testing.T) {
	for n := 1; n <= 8; n++ {
		s := models.State{Characters: map[string]models.Character{}}
		for i := range n {
			id := string(rune('a' + i))
			s.TurnOrder = append(s.TurnOrder, id)
			s.Characters[id] = models.Character{ID: id, MaxHealth: 3}
		}
		for _, holder := range s.TurnOrder {
			s.CharacterWithTurn = holder
			next, err := NextTurn(s)
			require.NoError(t, err)
			assert.Equal(t, holder, next)
			assert.Contains(t, s.TurnOrder, next)
		}
	}
}
