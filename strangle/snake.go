package strangle

// SnakeID is a snake's position in the game's original snake list. It is
// stable for the lifetime of a move computation; IDs of dead snakes are
// never reused.
type SnakeID int

// Me is the slot our own snake is always moved into when a Game is built.
const Me SnakeID = 0

// MaxHealth is the health a snake is restored to when it eats.
const MaxHealth = 100

// Snake is one competitor on the board. Body runs from head (front) to
// tail (back) and is never empty. Two snakes are the same snake iff their
// IDs match, regardless of position or health.
type Snake struct {
	ID     SnakeID
	Body   []Coord
	Health int
}

// Head returns the snake's front segment.
func (s *Snake) Head() Coord {
	return s.Body[0]
}

// Length returns the number of body segments.
func (s *Snake) Length() int {
	return len(s.Body)
}

// Facing infers the snake's current heading from its first two body
// segments. Reports false for single-segment bodies and for freshly
// spawned snakes whose segments are still stacked on one cell.
func (s *Snake) Facing() (Direction, bool) {
	if len(s.Body) < 2 {
		return Up, false
	}
	return DirectionBetween(s.Body[1], s.Body[0])
}

// PossibleDirections enumerates the moves worth exploring: every direction
// except the one reversing into the snake's own neck and those leaving the
// board immediately.
func (s *Snake) PossibleDirections(board Board) []Direction {
	facing, hasFacing := s.Facing()
	dirs := make([]Direction, 0, 4)
	for _, d := range Directions {
		if hasFacing && d == facing.Opposite() {
			continue
		}
		if !board.Contains(s.Head().Neighbour(d)) {
			continue
		}
		dirs = append(dirs, d)
	}
	return dirs
}

// hitsOwnBody reports whether the head sits on one of the snake's own
// trailing segments.
func (s *Snake) hitsOwnBody() bool {
	for _, c := range s.Body[1:] {
		if c == s.Head() {
			return true
		}
	}
	return false
}

func (s *Snake) clone() Snake {
	body := make([]Coord, len(s.Body))
	copy(body, s.Body)
	return Snake{ID: s.ID, Body: body, Health: s.Health}
}
