package models

import (
	"maps"
	"slices"
)

// WithCharacter returns a copy of s with c stored under its id.
func (s State) WithCharacter(c Character) State {
	s.Characters = maps.Clone(s.Characters)
	if s.Characters == nil {
		s.Characters = map[string]Character{}
	}
	s.Characters[c.ID] = c
	return s
}

// WithRoom returns a copy of s with r stored under its id.
func (s State) WithRoom(r Room) State {
	s.Rooms = maps.Clone(s.Rooms)
	if s.Rooms == nil {
		s.Rooms = map[string]Room{}
	}
	s.Rooms[r.ID] = r
	return s
}

// WithTurn returns a copy of s where characterID holds the turn.
func (s State) WithTurn(characterID string) State {
	s.CharacterWithTurn = characterID
	return s
}

// WithGameOver returns a copy of s with the game over flag set.
func (s State) WithGameOver() State {
	s.GameOver = true
	return s
}

// PlayerCharacter returns the player's character record.
func (s State) PlayerCharacter() Character {
	return s.Characters[s.Player]
}

// RoomOf returns the room characterID currently occupies.
func (s State) RoomOf(characterID string) (Room, bool) {
	c, ok := s.Characters[characterID]
	if !ok {
		return Room{}, false
	}
	r, ok := s.Rooms[c.Room]
	return r, ok
}

// FindExit returns the exit with the given id in r.
func (r Room) FindExit(exitID string) (Exit, bool) {
	for _, exit := range r.Exits {
		if exit.ID == exitID {
			return exit, true
		}
	}
	return Exit{}, false
}

// ExitTo returns the first exit of r leading to roomID.
func (r Room) ExitTo(roomID string) (Exit, bool) {
	for _, exit := range r.Exits {
		if exit.Room == roomID {
			return exit, true
		}
	}
	return Exit{}, false
}

// SameFaction reports whether a and b are allied. Characters without a
// faction are allied with nobody.
func SameFaction(a, b Character) bool {
	return a.Faction != "" && a.Faction == b.Faction
}

// LivingOthers returns the living characters sharing a room with
// characterID, in room order.
func (s State) LivingOthers(characterID string) []Character {
	room, ok := s.RoomOf(characterID)
	if !ok {
		return nil
	}
	var others []Character
	for _, id := range room.Characters {
		if id == characterID {
			continue
		}
		if c := s.Characters[id]; c.IsAlive() {
			others = append(others, c)
		}
	}
	return others
}

// LivingEnemies returns the living characters sharing a room with
// characterID that are not in its faction.
func (s State) LivingEnemies(characterID string) []Character {
	self := s.Characters[characterID]
	return slices.DeleteFunc(s.LivingOthers(characterID), func(c Character) bool {
		return SameFaction(self, c)
	})
}

// Followers returns the living characters in roomID whose party leader is
// leaderID.
func (s State) Followers(leaderID, roomID string) []string {
	var followers []string
	for _, id := range s.Rooms[roomID].Characters {
		c := s.Characters[id]
		if id != leaderID && c.PartyLeader == leaderID && c.IsAlive() {
			followers = append(followers, id)
		}
	}
	return followers
}
