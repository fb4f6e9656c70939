package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/content"
	"github.com/tatianab/bilingual-text-game/internal/controller"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

type fixed int

func (f fixed) IntN(n int) int {
	return min(int(f), n-1)
}

func newGame(t *testing.T, opts Options) *Game {
	t.Helper()
	s, err := content.Default()
	require.NoError(t, err)
	if opts.Controller == nil {
		opts.Controller = controller.Default(fixed(0))
	}
	g, err := New(s, opts)
	require.NoError(t, err)
	return g
}

func TestNewRejectsInvalidWorld(t *testing.T) {
	s, err := content.Default()
	require.NoError(t, err)
	s.TurnOrder = nil

	_, err = New(s, Options{})
	assert.ErrorIs(t, err, models.ErrInvalidWorld)
}

func TestIntro(t *testing.T) {
	g := newGame(t, Options{})
	out, err := g.Intro()
	require.NoError(t, err)

	l1 := out.Text(story.L1)
	assert.Contains(t, l1, `Welcome! Type "help" to see what you can do.`)
	assert.Contains(t, l1, "Cave\nYou are in a cave. It is dark.")
	assert.Contains(t, out.Text(story.L2), "Fàilte!")
	assert.Equal(t, "player", g.State().CharacterWithTurn)
	assert.NotEmpty(t, g.ID())
}

func TestOtherCharactersActAfterThePlayer(t *testing.T) {
	g := newGame(t, Options{})
	out, err := g.Submit("go north")
	require.NoError(t, err)

	l1 := out.Text(story.L1)
	assert.Contains(t, l1, "> go north\nTunnel\nYou go north... Morag follows you.")
	assert.Contains(t, l1, "Morag attacks the rat! It dies!")
	assert.Contains(t, l1, "A skeleton arrives from the east.")
	assert.Contains(t, l1, "A dragon arrives from the east.")

	s := g.State()
	assert.Equal(t, "player", s.CharacterWithTurn)
	assert.Equal(t, 0, s.Characters["rat"].CurrentHealth)
	assert.Equal(t, "tunnel", s.Characters["dragon"].Room)
	assert.False(t, g.IsOver())
}

func TestInvalidInputLeavesGameUntouched(t *testing.T) {
	g := newGame(t, Options{})
	before := g.State()

	out, err := g.Submit("dance")
	require.NoError(t, err)
	assert.Equal(t, `> dance`+"\n"+`Unknown command: "dance".`, out.Text(story.L1))
	assert.Equal(t, before, g.State())
}

func TestBossKillEndsGame(t *testing.T) {
	g := newGame(t, Options{})
	_, err := g.Submit("go north")
	require.NoError(t, err)

	dragon := g.state.Characters["dragon"]
	dragon.CurrentHealth = 1
	g.state = g.state.WithCharacter(dragon)

	out, err := g.Submit("fight dragon")
	require.NoError(t, err)
	assert.Contains(t, out.Text(story.L1), "You have defeated the dragon! The game is over.")
	assert.True(t, g.IsOver())

	_, err = g.Submit("wait")
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = g.SubmitCommand(command.Wait{Actor: "player"})
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestRejectedControllerCommandsAreSkipped(t *testing.T) {
	lost := controller.New(controller.Module{
		Name:    "lost",
		Applies: func(string, models.State) bool { return true },
		Act: func(id string, _ models.State) command.Command {
			return command.Move{Actor: id, Exit: "nowhere"}
		},
	})
	g := newGame(t, Options{Controller: lost})

	out, err := g.Submit("wait")
	require.NoError(t, err)
	assert.Equal(t, "> wait\nYou wait...", out.Text(story.L1))
	assert.Equal(t, "player", g.State().CharacterWithTurn)
}

func TestSubmitCommand(t *testing.T) {
	g := newGame(t, Options{})
	out, err := g.SubmitCommand(command.TakeItem{Actor: "player", Item: "lantern"})
	require.NoError(t, err)

	assert.Equal(t, "You take the lantern.", out.Text(story.L1))
	assert.Contains(t, g.State().Characters["player"].Items, "lantern")
	assert.Equal(t, "player", g.State().CharacterWithTurn)
}

func TestValidInputsFollowState(t *testing.T) {
	g := newGame(t, Options{})
	assert.Contains(t, g.ValidInputs(), "take lantern")

	_, err := g.Submit("take lantern")
	require.NoError(t, err)
	assert.NotContains(t, g.ValidInputs(), "take lantern")
	assert.NotEmpty(t, g.Previews())
}
