package strangle

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// brainScores holds one ScoreFactors per snake that was on the board when
// a branch terminated, dead snakes included.
type brainScores map[SnakeID]ScoreFactors

// brainResult is what one search node hands back up: the score vector of
// its best branch and, for decision nodes, the direction that earned it.
type brainResult struct {
	scores    brainScores
	direction Direction
}

// brain carries everything that lives across recursive calls and across
// iterative-deepening passes: the evaluation weights, the wall-clock
// deadline, and the terminal-score cache keyed by state hash.
//
// A brain is owned by a single search; nothing here is safe for
// concurrent use. A parallel search would need to shard or lock the memo.
type brain struct {
	weights  Weights
	deadline time.Time
	memo     map[uint64]brainScores

	// deepest tracks the deepest terminal reached in the current pass. If
	// a completed pass never reaches its requested depth, every branch
	// ended for reasons more depth cannot change, and deepening stops.
	deepest int
}

func newBrain(weights Weights, deadline time.Time) *brain {
	return &brain{
		weights:  weights,
		deadline: deadline,
		memo:     make(map[uint64]brainScores),
	}
}

// bigbrain explores the game tree one snake decision at a time. Each snake
// picks the direction that maximizes its own score; opponents are modelled
// as best-responders, not as adversaries. Once every living snake has a
// pending move the world steps forward and depth increments.
//
// The second return value reports completeness: false means the deadline
// expired somewhere below, the result is unusable, and the whole pass must
// be discarded.
func (b *brain) bigbrain(game *Game, snakeIndex, depth, maxDepth int, moves Moves) (brainResult, bool) {
	if time.Now().After(b.deadline) {
		return brainResult{}, false
	}

	trace := log.IsLevelEnabled(log.TraceLevel)
	snake := &game.Snakes[snakeIndex]
	if trace {
		log.Tracef("brain: d%d/%d snake #%d, pending %v", depth, maxDepth, snake.ID, moves)
	}

	moves = moves.clone()
	cur := game

	if snake.ID == Me && depth > 0 {
		// A full ply has been collected; advance the shared world.
		if len(moves) != len(cur.Snakes) {
			panic(fmt.Sprintf(
				"strangle: %d moves for %d snakes, cannot simulate",
				len(moves), len(cur.Snakes),
			))
		}
		stepped, deaths := cur.Step(moves)

		selfDead := stepped.Snake(Me) == nil
		decided := stepped.Multisnake && len(stepped.Snakes) <= 1
		if selfDead || decided || depth == maxDepth {
			if depth > b.deepest {
				b.deepest = depth
			}
			return brainResult{scores: b.terminalScores(cur, &stepped, deaths, depth)}, true
		}

		cur = &stepped
		snake = cur.Snake(Me)
		moves = make(Moves)
	}

	bestScores := make(brainScores, len(cur.Snakes))
	for i := range cur.Snakes {
		id := cur.Snakes[i].ID
		bestScores[id] = DeadFactors(id, DeathNormal, depth)
	}
	bestDirection := Up
	haveBest := false

	nextIndex := (snakeIndex + 1) % len(cur.Snakes)
	nextDepth := depth
	if nextIndex == 0 {
		nextDepth++
	}

	for _, direction := range snake.PossibleDirections(cur.Board) {
		moves[snake.ID] = direction
		result, complete := b.bigbrain(cur, nextIndex, nextDepth, maxDepth, moves)
		if !complete {
			return brainResult{}, false
		}

		// A branch can end without scoring this snake at all when it died
		// inside the explored line; treat that as the worst case.
		if _, scored := result.scores[snake.ID]; !scored {
			result.scores[snake.ID] = DeadFactors(snake.ID, DeathNormal, depth)
		}

		score := result.scores[snake.ID].Calculate(b.weights)
		if !haveBest || score > bestScores[snake.ID].Calculate(b.weights) {
			bestScores = result.scores
			bestDirection = direction
			haveBest = true
		}
		if trace {
			log.Tracef("brain: d%d snake #%d %s scores %d (best %s)",
				depth, snake.ID, direction, score, bestDirection)
		}
	}

	return brainResult{scores: bestScores, direction: bestDirection}, true
}

// terminalScores evaluates a post-step state, reusing a previous
// evaluation when another move ordering already reached the same state.
func (b *brain) terminalScores(before, after *Game, deaths map[SnakeID]DeathKind, depth int) brainScores {
	hash := after.Hash()
	if cached, ok := b.memo[hash]; ok {
		return cached.clone()
	}

	scores := make(brainScores, len(before.Snakes))
	for i := range after.Snakes {
		s := &after.Snakes[i]
		scores[s.ID] = after.Score(s, depth)
	}
	for i := range before.Snakes {
		id := before.Snakes[i].ID
		if _, ok := scores[id]; ok {
			continue
		}
		kind, ok := deaths[id]
		if !ok {
			kind = DeathNormal
		}
		scores[id] = DeadFactors(id, kind, depth)
	}

	b.memo[hash] = scores.clone()
	return scores
}

func (s brainScores) clone() brainScores {
	out := make(brainScores, len(s))
	for id, factors := range s {
		out[id] = factors
	}
	return out
}

func (m Moves) clone() Moves {
	out := make(Moves, len(m))
	for id, d := range m {
		out[id] = d
	}
	return out
}
