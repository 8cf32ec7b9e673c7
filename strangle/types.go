// Package strangle implements a search-based Battlesnake brain: a turn
// simulator, a heuristic evaluator and a time-boxed multi-snake lookahead
// that picks the move with the best outcome for us.
package strangle

import "fmt"

// Direction is one of the four cardinal moves a snake can make.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order for iteration.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Opposite returns the reversing direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// Coord is a position on the board. (0, 0) is the bottom-left corner.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Neighbour returns the coordinate one cell away in the given direction.
func (c Coord) Neighbour(d Direction) Coord {
	switch d {
	case Up:
		return Coord{c.X, c.Y + 1}
	case Down:
		return Coord{c.X, c.Y - 1}
	case Left:
		return Coord{c.X - 1, c.Y}
	}
	return Coord{c.X + 1, c.Y}
}

// DirectionBetween classifies the displacement from one coordinate to
// another as the direction of its dominant axis. Exact diagonals resolve to
// the vertical axis. Reports false when the coordinates coincide.
func DirectionBetween(from, to Coord) (Direction, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}
	switch {
	case dy > 0:
		return Up, true
	case dy < 0:
		return Down, true
	}
	return Up, false
}

// ManhattanDistance is the taxicab distance between two coordinates.
func ManhattanDistance(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Board holds the playable area. Bounds are half-open: a coordinate is on
// the board iff 0 <= x < width and 0 <= y < height.
type Board struct {
	Width  int
	Height int
}

// Contains reports whether the coordinate is on the board.
func (b Board) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.Width && c.Y < b.Height
}

// Center returns the middle cell of the board.
func (b Board) Center() Coord {
	return Coord{b.Width / 2, b.Height / 2}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
