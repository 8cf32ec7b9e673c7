// Package random is a baseline strategy: it walks uniformly at random over
// the directions that do not kill it this turn. Useful as a sparring
// partner and as a sanity check that the API plumbing works.
package random

import (
	"fmt"
	"math/rand"

	"github.com/backwardspy/battlesnake-doctor-strangle/api"
	"github.com/backwardspy/battlesnake-doctor-strangle/strangle"
)

func New() api.Snek {
	return &snek{}
}

type snek struct {
	currentState   *api.State
	previousStates []*api.State
}

func (s *snek) Start(st *api.State) error {
	if s.currentState != nil || len(s.previousStates) > 0 {
		return fmt.Errorf("cannot start a game in progress")
	}
	s.currentState = st
	s.previousStates = nil
	return nil
}

func (s *snek) Move(st *api.State) (string, string, error) {
	if s.currentState == nil {
		return "", "", fmt.Errorf("game not started")
	}
	s.previousStates = append(s.previousStates, s.currentState)
	s.currentState = st

	game, err := strangle.NewGame(st)
	if err != nil {
		return "", "", err
	}
	return s.direction(&game).String(), "", nil
}

func (s *snek) direction(game *strangle.Game) strangle.Direction {
	me := game.Snake(strangle.Me)

	occupied := make(map[strangle.Coord]struct{})
	for i := range game.Snakes {
		for _, c := range game.Snakes[i].Body {
			occupied[c] = struct{}{}
		}
	}
	for _, c := range game.Hazards {
		occupied[c] = struct{}{}
	}

	candidates := me.PossibleDirections(game.Board)
	survivable := candidates[:0]
	for _, d := range candidates {
		if _, hit := occupied[me.Head().Neighbour(d)]; !hit {
			survivable = append(survivable, d)
		}
	}
	if len(survivable) == 0 {
		return strangle.Up
	}
	return survivable[rand.Intn(len(survivable))]
}

func (s *snek) End(st *api.State) error {
	if s.currentState == nil {
		return fmt.Errorf("game not started")
	}
	s.previousStates = append(s.previousStates, s.currentState, st)
	s.currentState = nil
	return nil
}
