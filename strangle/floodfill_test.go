package strangle

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestReachableOpenBoard(t *testing.T) {
	c := qt.New(t)

	game := Game{Board: Board{Width: 11, Height: 7}}
	c.Assert(game.ReachableCells(Coord{5, 3}), qt.Equals, 11*7)
	// corners see the whole board too
	c.Assert(game.ReachableCells(Coord{0, 0}), qt.Equals, 11*7)
}

func TestReachableEnclosedSeed(t *testing.T) {
	c := qt.New(t)

	game := Game{Board: Board{Width: 7, Height: 7}}
	game.Hazards = []Coord{{2, 3}, {4, 3}, {3, 2}, {3, 4}}
	c.Assert(game.ReachableCells(Coord{3, 3}), qt.Equals, 1)
}

func TestReachableWalledOffCorner(t *testing.T) {
	c := qt.New(t)

	// a snake body cuts the bottom-left 2x2 corner off a 5x5 board
	game := testGame(5, 5,
		testSnake(1, 100, Coord{0, 2}, Coord{1, 2}, Coord{2, 2}, Coord{2, 1}, Coord{2, 0}),
	)
	c.Assert(game.ReachableCells(Coord{0, 0}), qt.Equals, 4)
	// the rest of the board minus the five body segments
	c.Assert(game.ReachableCells(Coord{4, 4}), qt.Equals, 5*5-5-4)
}
