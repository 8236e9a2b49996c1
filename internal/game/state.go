// Package game runs the simulation: it owns the map, the actor table and
// the message log, feeds input to the player, and advances every actor in
// rounds whose side effects are applied only after the round completes.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/actor"
	"github.com/vovakirdan/tui-rogue/internal/actor/player"
	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// ErrActorNotFound is returned when an ID has no actor in the table.
var ErrActorNotFound = errors.New("actor not found")

// State is everything the simulation mutates.
type State struct {
	PlayerID     uuid.UUID
	Map          *world.Map
	Messages     *message.Log
	ShowMessages bool

	player *player.Player
	actors map[uuid.UUID]actor.Actor
	order  []uuid.UUID
}

// NewState creates a state holding only the player. Messages the player
// queued while being created go straight into the log.
func NewState(m *world.Map, p *player.Player, capacity int) *State {
	s := &State{
		PlayerID:     p.ID(),
		Map:          m,
		Messages:     message.NewLog(capacity),
		ShowMessages: true,
		player:       p,
		actors:       make(map[uuid.UUID]actor.Actor),
	}
	s.Add(p)
	s.Messages.Push(p.Messages()...)
	return s
}

// Player returns the player actor.
func (s *State) Player() *player.Player {
	return s.player
}

// Add inserts an actor at the end of the update order. Adding an ID that
// is already present replaces the actor in place.
func (s *State) Add(a actor.Actor) {
	if _, exists := s.actors[a.ID()]; !exists {
		s.order = append(s.order, a.ID())
	}
	s.actors[a.ID()] = a
}

// Actor looks up an actor by ID.
func (s *State) Actor(id uuid.UUID) (actor.Actor, error) {
	a, ok := s.actors[id]
	if !ok {
		return nil, fmt.Errorf("game: actor %s: %w", id, ErrActorNotFound)
	}
	return a, nil
}

// Actors returns every actor in insertion order.
func (s *State) Actors() []actor.Actor {
	out := make([]actor.Actor, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.actors[id])
	}
	return out
}

// Len returns the number of actors, the player included.
func (s *State) Len() int {
	return len(s.order)
}
