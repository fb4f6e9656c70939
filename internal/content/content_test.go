package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

func TestDefaultWorld(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "player", s.Player)
	assert.Equal(t, "player", s.CharacterWithTurn)
	assert.Equal(t, []string{"player", "morag"}, s.Rooms["cave"].Characters)
	assert.Equal(t, []string{"skeleton", "dragon"}, s.Rooms["lair"].Characters)
	assert.Equal(t, []models.EndOfGameCondition{models.CharacterDeath{Character: "dragon"}}, s.EndOfGameConditions)
	assert.Len(t, s.Rooms["tunnel"].Triggers, 3)
	assert.Equal(t, "player", s.Characters["morag"].PartyLeader)
}
