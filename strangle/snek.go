package strangle

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/backwardspy/battlesnake-doctor-strangle/api"
)

// New returns a Snek driven by the lookahead search with the default
// evaluation weights.
func New() api.Snek {
	return &snek{weights: DefaultWeights}
}

type snek struct {
	weights        Weights
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

	game, err := NewGame(st)
	if err != nil {
		return "", "", err
	}

	deadline := st.Deadline
	if deadline.IsZero() {
		deadline = time.Now().Add(defaultSearchBudget)
	}

	started := time.Now()
	direction, err := BestDirection(&game, deadline, s.weights)
	switch {
	case errors.Is(err, ErrDeadline):
		// No completed pass to act on. Take the least suicidal immediate
		// move rather than answering nothing at all.
		direction = safeFallback(&game)
		log.WithFields(log.Fields{
			"game": st.Game.ID,
			"turn": st.Turn,
		}).Warnf("search got nowhere before the deadline, falling back to %s", direction)
	case err != nil:
		return "", "", err
	}

	log.WithFields(log.Fields{
		"game":    st.Game.ID,
		"turn":    st.Turn,
		"move":    direction.String(),
		"elapsed": time.Since(started).Round(time.Millisecond).String(),
		"snakes":  len(game.Snakes),
	}).Debug("strangle move")

	return direction.String(), "", nil
}

func (s *snek) End(st *api.State) error {
	if s.currentState == nil {
		return nil
	}
	s.previousStates = append(s.previousStates, s.currentState, st)
	s.currentState = nil
	return nil
}

// defaultSearchBudget bounds the search when a state arrives without a
// deadline, as in tests that drive a Snek directly.
const defaultSearchBudget = 400 * time.Millisecond

// safeFallback picks an unexplored but immediately survivable direction:
// legal, and into a cell no body or hazard occupies right now. It is only
// used when the search could not finish a single depth.
func safeFallback(g *Game) Direction {
	me := g.Snake(Me)
	if me == nil {
		return Up
	}
	occupied := make(map[Coord]struct{})
	for i := range g.Snakes {
		for _, c := range g.Snakes[i].Body {
			occupied[c] = struct{}{}
		}
	}
	for _, c := range g.Hazards {
		occupied[c] = struct{}{}
	}

	dirs := me.PossibleDirections(g.Board)
	for _, d := range dirs {
		if _, hit := occupied[me.Head().Neighbour(d)]; !hit {
			return d
		}
	}
	if len(dirs) > 0 {
		return dirs[0]
	}
	return Up
}
