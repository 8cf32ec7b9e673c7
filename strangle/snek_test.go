package strangle

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/backwardspy/battlesnake-doctor-strangle/api"
)

func moveRequest(deadline time.Time) *api.State {
	return &api.State{
		Game: api.Game{ID: "g1", Timeout: 500},
		Turn: 3,
		Board: api.Board{
			Width:  11,
			Height: 11,
			Snakes: []api.Battlesnake{
				{ID: "me", Health: 100, Body: []api.Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
			},
			Food: []api.Point{{X: 5, Y: 7}},
		},
		Me:       api.Battlesnake{ID: "me"},
		Deadline: deadline,
	}
}

func TestSnekLifecycle(t *testing.T) {
	c := qt.New(t)

	s := New()
	c.Assert(s.Start(&api.State{}), qt.IsNil)
	c.Assert(s.Start(&api.State{}), qt.ErrorMatches, "cannot start a game in progress")

	move, _, err := s.Move(moveRequest(time.Now().Add(200 * time.Millisecond)))
	c.Assert(err, qt.IsNil)
	c.Assert(move, qt.Equals, "up")

	c.Assert(s.End(&api.State{}), qt.IsNil)
}

func TestSnekMoveBeforeStart(t *testing.T) {
	c := qt.New(t)

	s := New()
	_, _, err := s.Move(moveRequest(time.Now().Add(time.Second)))
	c.Assert(err, qt.ErrorMatches, "game not started")
}

func TestSnekFallsBackOnExpiredDeadline(t *testing.T) {
	c := qt.New(t)

	s := New()
	c.Assert(s.Start(&api.State{}), qt.IsNil)

	// the search cannot complete a single depth, but the service must
	// still answer with a survivable move
	move, _, err := s.Move(moveRequest(time.Now().Add(-time.Second)))
	c.Assert(err, qt.IsNil)
	c.Assert(move == "up" || move == "left" || move == "right", qt.IsTrue)
}

func TestSnekRejectsMalformedState(t *testing.T) {
	c := qt.New(t)

	s := New()
	c.Assert(s.Start(&api.State{}), qt.IsNil)

	st := moveRequest(time.Now().Add(time.Second))
	st.Me.ID = "someone-else"
	_, _, err := s.Move(st)
	c.Assert(err, qt.ErrorMatches, `own snake "someone-else" is not on the board`)
}

func TestSafeFallbackAvoidsOccupiedCells(t *testing.T) {
	c := qt.New(t)

	// up is blocked by a hazard and down is the neck; the fallback must
	// pick one of the free sides
	game := testGame(11, 11,
		testSnake(Me, 100, Coord{5, 5}, Coord{5, 4}, Coord{5, 3}),
	)
	game.Hazards = []Coord{{5, 6}}

	d := safeFallback(&game)
	c.Assert(d == Left || d == Right, qt.IsTrue)
}
