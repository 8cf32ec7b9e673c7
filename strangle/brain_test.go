package strangle

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func generousDeadline() time.Time {
	return time.Now().Add(200 * time.Millisecond)
}

func TestSeeksFood(t *testing.T) {
	c := qt.New(t)

	// solo snake facing up, food two cells ahead in open space: the
	// chosen move must close the distance
	game := testGame(11, 11,
		testSnake(Me, 100, Coord{5, 5}, Coord{5, 4}, Coord{5, 3}),
	)
	game.Food = []Coord{{5, 7}}

	direction, err := BestDirection(&game, generousDeadline(), DefaultWeights)
	c.Assert(err, qt.IsNil)
	c.Assert(direction, qt.Equals, Up)
}

func TestAvoidsEqualHeadToHead(t *testing.T) {
	c := qt.New(t)

	// an equal-length rival is one cell past the contested square; going
	// right offers the rival a tie it is guaranteed to win, so any other
	// legal move must be picked
	game := testGame(11, 11,
		testSnake(Me, 100, Coord{2, 5}, Coord{1, 5}, Coord{0, 5}),
		testSnake(1, 100, Coord{4, 5}, Coord{5, 5}, Coord{6, 5}),
	)

	direction, err := BestDirection(&game, generousDeadline(), DefaultWeights)
	c.Assert(err, qt.IsNil)
	c.Assert(direction, qt.Not(qt.Equals), Right)
	c.Assert(direction == Up || direction == Down, qt.IsTrue)
}

func TestPrefersLateDeathWhenDoomed(t *testing.T) {
	c := qt.New(t)

	// boxed in by hazards with one free cell: the only way to survive
	// even one more turn is up, everything else dies immediately
	game := testGame(5, 5,
		testSnake(Me, 100, Coord{2, 2}, Coord{2, 1}, Coord{2, 0}),
	)
	game.Hazards = []Coord{
		{1, 1}, {1, 2}, {1, 3}, {3, 1}, {3, 2}, {3, 3}, {2, 4},
	}

	direction, err := BestDirection(&game, generousDeadline(), DefaultWeights)
	c.Assert(err, qt.IsNil)
	c.Assert(direction, qt.Equals, Up)
}

func TestExpiredDeadlineFailsExplicitly(t *testing.T) {
	c := qt.New(t)

	game := testGame(11, 11,
		testSnake(Me, 100, Coord{5, 5}, Coord{5, 4}, Coord{5, 3}),
	)

	_, err := BestDirection(&game, time.Now().Add(-time.Millisecond), DefaultWeights)
	c.Assert(errors.Is(err, ErrDeadline), qt.IsTrue)
}

func TestSearchStopsWhenGameIsDecided(t *testing.T) {
	c := qt.New(t)

	// a duel we win next turn no matter what: head-to-head against a
	// shorter snake with nowhere else to go
	game := testGame(11, 11,
		testSnake(Me, 100, Coord{2, 5}, Coord{1, 5}, Coord{0, 5}, Coord{0, 4}),
		testSnake(1, 2, Coord{4, 5}, Coord{5, 5}, Coord{6, 5}),
	)

	b := newBrain(DefaultWeights, generousDeadline())
	result, complete := b.bigbrain(&game, 0, 0, 5, make(Moves))
	c.Assert(complete, qt.IsTrue)
	// the rival starves or loses a collision within two plies on every
	// branch, so no line ever reaches the requested depth
	c.Assert(b.deepest < 5, qt.IsTrue)
	c.Assert(result.scores[Me].Dead, qt.IsFalse)
}

func TestMemoizationCachesTerminalStates(t *testing.T) {
	c := qt.New(t)

	// a single-segment snake leaves no trail, so different move orders
	// genuinely transpose: up-down and left-right both come back to the
	// start, up-left and left-up meet on the same diagonal cell
	game := testGame(11, 11,
		testSnake(Me, 100, Coord{5, 5}),
	)

	b := newBrain(DefaultWeights, generousDeadline())
	_, complete := b.bigbrain(&game, 0, 0, 2, make(Moves))
	c.Assert(complete, qt.IsTrue)

	// 16 explored lines collapse onto 9 distinct end states
	c.Assert(b.memo, qt.HasLen, 9)
}

func TestScoresMissingSelfTreatedAsDeath(t *testing.T) {
	c := qt.New(t)

	// trapped in the corner by our own body: the only legal move kills
	// us, but the search must still report a scored direction rather
	// than fail
	game := testGame(3, 3,
		testSnake(Me, 100,
			Coord{0, 0}, Coord{0, 1}, Coord{1, 1}, Coord{1, 0}, Coord{2, 0}),
	)

	b := newBrain(DefaultWeights, generousDeadline())
	result, complete := b.bigbrain(&game, 0, 0, 3, make(Moves))
	c.Assert(complete, qt.IsTrue)
	c.Assert(result.scores[Me].Dead, qt.IsTrue)
}
