package strangle

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/backwardspy/battlesnake-doctor-strangle/api"
)

// Moves maps every living snake to the direction it takes this turn.
type Moves map[SnakeID]Direction

// DeathKind classifies how a snake was eliminated during a step.
type DeathKind int

const (
	// DeathNormal covers starvation, walls, body collisions and lost
	// head-to-heads.
	DeathNormal DeathKind = iota
	// DeathSacrifice is an equal-length head-to-head that we concede on
	// purpose: the simulator always rules those against us so the search
	// never banks on winning a contested tie.
	DeathSacrifice
)

// Game is one turn's complete board state. It is built once per request,
// then cloned at every explored ply; a Game is never mutated in place by
// the search.
type Game struct {
	Snakes  []Snake
	Food    []Coord
	Hazards []Coord
	Board   Board

	// Multisnake records whether the game began with opponents. A game
	// that starts solo is never "won" by being the last snake standing.
	Multisnake bool
}

const maxBoardEdge = 1 << 15

// NewGame builds the internal game state from a decoded request, moving
// our own snake into slot 0 so the search can treat "first snake" and "our
// snake" as the same thing.
func NewGame(st *api.State) (Game, error) {
	if st.Board.Width <= 0 || st.Board.Height <= 0 ||
		st.Board.Width > maxBoardEdge || st.Board.Height > maxBoardEdge {
		return Game{}, fmt.Errorf("unusable board dimensions %dx%d", st.Board.Width, st.Board.Height)
	}

	youIdx := -1
	for i := range st.Board.Snakes {
		if st.Board.Snakes[i].ID == st.Me.ID {
			youIdx = i
			break
		}
	}
	if youIdx < 0 {
		return Game{}, fmt.Errorf("own snake %q is not on the board", st.Me.ID)
	}

	wire := make([]api.Battlesnake, len(st.Board.Snakes))
	copy(wire, st.Board.Snakes)
	wire[0], wire[youIdx] = wire[youIdx], wire[0]

	snakes := make([]Snake, len(wire))
	for i, ws := range wire {
		if len(ws.Body) == 0 {
			return Game{}, fmt.Errorf("snake %q has an empty body", ws.ID)
		}
		body := make([]Coord, len(ws.Body))
		for j, p := range ws.Body {
			body[j] = Coord{p.X, p.Y}
		}
		snakes[i] = Snake{ID: SnakeID(i), Body: body, Health: ws.Health}
	}

	return Game{
		Snakes:     snakes,
		Food:       coordsFromPoints(st.Board.Food),
		Hazards:    coordsFromPoints(st.Board.Hazards),
		Board:      Board{Width: st.Board.Width, Height: st.Board.Height},
		Multisnake: len(snakes) > 1,
	}, nil
}

func coordsFromPoints(points []api.Point) []Coord {
	if len(points) == 0 {
		return nil
	}
	coords := make([]Coord, len(points))
	for i, p := range points {
		coords[i] = Coord{p.X, p.Y}
	}
	return coords
}

// Clone deep-copies the game so a search branch can own its own state.
func (g *Game) Clone() Game {
	snakes := make([]Snake, len(g.Snakes))
	for i := range g.Snakes {
		snakes[i] = g.Snakes[i].clone()
	}
	var food, hazards []Coord
	if len(g.Food) > 0 {
		food = make([]Coord, len(g.Food))
		copy(food, g.Food)
	}
	if len(g.Hazards) > 0 {
		hazards = make([]Coord, len(g.Hazards))
		copy(hazards, g.Hazards)
	}
	return Game{
		Snakes:     snakes,
		Food:       food,
		Hazards:    hazards,
		Board:      g.Board,
		Multisnake: g.Multisnake,
	}
}

// Snake returns the living snake with the given ID, or nil.
func (g *Game) Snake(id SnakeID) *Snake {
	for i := range g.Snakes {
		if g.Snakes[i].ID == id {
			return &g.Snakes[i]
		}
	}
	return nil
}

// Step advances the whole board by one synchronized turn and reports who
// died and how. The move map must hold exactly one direction per living
// snake; a missing entry is an engine bug and panics.
//
// Order matters and matches the arena rules: movement and hunger first,
// then the deaths a snake brings on itself (starvation, walls, hazards,
// doubling back), then collisions among the remainder resolved in one
// simultaneous pass, then feeding. Food is never spawned inside the
// simulation; spawns are unknowable, so we adapt to them on the next real
// turn instead.
func (g *Game) Step(moves Moves) (Game, map[SnakeID]DeathKind) {
	trace := log.IsLevelEnabled(log.TraceLevel)

	step := g.Clone()
	deaths := make(map[SnakeID]DeathKind)

	// 1: every snake advances its head and burns one health.
	for i := range step.Snakes {
		s := &step.Snakes[i]
		direction, ok := moves[s.ID]
		if !ok {
			panic(fmt.Sprintf("strangle: snake #%d has no move to simulate", s.ID))
		}
		head := s.Head().Neighbour(direction)
		copy(s.Body[1:], s.Body[:len(s.Body)-1])
		s.Body[0] = head
		s.Health--
		if trace {
			log.Tracef("sim: snake #%d moves %s to %s, %d hp", s.ID, direction, head, s.Health)
		}
	}

	// 2: self-inflicted eliminations, judged from each snake's own state
	// alone. These snakes are gone before collisions are looked at, so
	// their bodies block nobody.
	hazard := make(map[Coord]struct{}, len(step.Hazards))
	for _, c := range step.Hazards {
		hazard[c] = struct{}{}
	}
	moved := make([]Snake, 0, len(step.Snakes))
	for _, s := range step.Snakes {
		switch {
		case s.Health <= 0:
			deaths[s.ID] = DeathNormal
			if trace {
				log.Tracef("sim: snake #%d starves at %d hp", s.ID, s.Health)
			}
		case !step.Board.Contains(s.Head()):
			deaths[s.ID] = DeathNormal
			if trace {
				log.Tracef("sim: snake #%d leaves the board at %s", s.ID, s.Head())
			}
		default:
			if _, hit := hazard[s.Head()]; hit {
				deaths[s.ID] = DeathNormal
				if trace {
					log.Tracef("sim: snake #%d enters a hazard at %s", s.ID, s.Head())
				}
				continue
			}
			if s.hitsOwnBody() {
				deaths[s.ID] = DeathNormal
				if trace {
					log.Tracef("sim: snake #%d doubles back into itself at %s", s.ID, s.Head())
				}
				continue
			}
			moved = append(moved, s)
		}
	}

	// 3: collision eliminations, computed simultaneously over the snakes
	// still standing: heads landing on a survivor's trailing body, and
	// coinciding heads resolved by length. Equal-length head-to-heads are
	// ruled against us when we are involved, and kill both snakes when we
	// are not.
	blocked := make(map[Coord]struct{})
	for i := range moved {
		for _, c := range moved[i].Body[1:] {
			blocked[c] = struct{}{}
		}
	}
	crashed := make(map[SnakeID]DeathKind)
	kill := func(id SnakeID, kind DeathKind) {
		if _, dead := crashed[id]; !dead {
			crashed[id] = kind
		}
	}
	for i := range moved {
		s := &moved[i]
		if _, hit := blocked[s.Head()]; hit {
			kill(s.ID, DeathNormal)
			if trace {
				log.Tracef("sim: snake #%d crashes at %s", s.ID, s.Head())
			}
		}
	}
	for i := 0; i < len(moved); i++ {
		for j := i + 1; j < len(moved); j++ {
			a, b := &moved[i], &moved[j]
			if a.Head() != b.Head() {
				continue
			}
			switch {
			case a.Length() > b.Length():
				kill(b.ID, DeathNormal)
			case b.Length() > a.Length():
				kill(a.ID, DeathNormal)
			case a.ID == Me || b.ID == Me:
				kill(Me, DeathSacrifice)
			default:
				kill(a.ID, DeathNormal)
				kill(b.ID, DeathNormal)
			}
			if trace {
				log.Tracef("sim: snakes #%d and #%d meet head-on at %s", a.ID, b.ID, a.Head())
			}
		}
	}
	survivors := make([]Snake, 0, len(moved))
	for _, s := range moved {
		if kind, dead := crashed[s.ID]; dead {
			deaths[s.ID] = kind
			continue
		}
		survivors = append(survivors, s)
	}

	// 4: feeding. Eating restores full health and grows the snake by
	// doubling up its tail segment.
	kept := step.Food[:0]
	for _, food := range step.Food {
		eaten := false
		for i := range survivors {
			s := &survivors[i]
			if s.Head() != food {
				continue
			}
			s.Health = MaxHealth
			s.Body = append(s.Body, s.Body[len(s.Body)-1])
			eaten = true
			if trace {
				log.Tracef("sim: snake #%d eats at %s", s.ID, food)
			}
			break
		}
		if !eaten {
			kept = append(kept, food)
		}
	}
	step.Food = kept
	step.Snakes = survivors

	return step, deaths
}

// Score evaluates the game from one living snake's point of view. Dead
// snakes are scored by the search with DeadFactors, not here.
func (g *Game) Score(s *Snake, depth int) ScoreFactors {
	reachable := 0
	// Flood fills get expensive with a crowd on the board; past four
	// snakes the factor is left at zero.
	if len(g.Snakes) <= 4 {
		reachable = g.ReachableCells(s.Head())
	}
	return ScoreFactors{
		SnakeID:        s.ID,
		Health:         s.Health,
		Length:         s.Length(),
		CenterDistance: ManhattanDistance(s.Head(), g.Board.Center()),
		Opponents:      len(g.Snakes) - 1,
		Reachable:      reachable,
		Multisnake:     g.Multisnake,
		Depth:          depth,
	}
}

// Hash folds the whole board state into a canonical content hash. Food and
// hazard sets are order-insensitive; snake bodies are not, since segment
// order is part of the state.
func (g *Game) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(n int) {
		v := uint64(int64(n))
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeCoord := func(c Coord) {
		writeInt(c.X)
		writeInt(c.Y)
	}

	writeInt(g.Board.Width)
	writeInt(g.Board.Height)
	for i := range g.Snakes {
		s := &g.Snakes[i]
		writeInt(int(s.ID))
		writeInt(s.Health)
		writeInt(len(s.Body))
		for _, c := range s.Body {
			writeCoord(c)
		}
	}
	for _, c := range sortedCoords(g.Food) {
		writeCoord(c)
	}
	writeInt(-1) // separator between the food and hazard sets
	for _, c := range sortedCoords(g.Hazards) {
		writeCoord(c)
	}
	return h.Sum64()
}

func sortedCoords(coords []Coord) []Coord {
	sorted := make([]Coord, len(coords))
	copy(sorted, coords)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// String renders the board with the top row first, for trace logs.
func (g *Game) String() string {
	occupied := make(map[Coord]struct{})
	for i := range g.Snakes {
		for _, c := range g.Snakes[i].Body {
			occupied[c] = struct{}{}
		}
	}
	var sb strings.Builder
	for y := g.Board.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Board.Width; x++ {
			if _, ok := occupied[Coord{x, y}]; ok {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
