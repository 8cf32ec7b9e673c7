package strangle

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrDeadline reports that not even a depth-1 search finished before the
// deadline. The caller gets no direction and must fall back on its own;
// guessing here would hand out a move no search ever validated.
var ErrDeadline = errors.New("strangle: deadline expired before any search depth completed")

// Search depth is also capped absolutely so a trivially small game cannot
// deepen forever inside a generous time budget.
const maxSearchDepth = 64

// BestDirection runs the search with iteratively increasing depth until
// the deadline, returning the result of the deepest fully completed pass.
// Passes interrupted by the deadline are discarded whole: a direction is
// only ever taken from a pass that explored everything it set out to
// explore. All passes share one terminal-score cache.
func BestDirection(game *Game, deadline time.Time, weights Weights) (Direction, error) {
	b := newBrain(weights, deadline)

	var best *brainResult
	bestDepth := 0
	for depth := 1; depth <= maxSearchDepth; depth++ {
		b.deepest = 0
		result, complete := b.bigbrain(game, 0, 0, depth, make(Moves))
		if !complete {
			log.Debugf("search: depth %d interrupted, keeping depth %d", depth, bestDepth)
			break
		}
		best = &result
		bestDepth = depth
		if b.deepest < depth {
			// Every branch ended early (we died or the game was decided);
			// more depth cannot change the answer.
			log.Debugf("search: depth %d complete but effective depth is %d, stopping", depth, b.deepest)
			break
		}
		log.Debugf("search: depth %d complete, best %s", depth, best.direction)
	}

	if best == nil {
		return Up, ErrDeadline
	}
	if self, ok := best.scores[Me]; ok {
		log.Debugf("search: depth %d picks %s (%s)", bestDepth, best.direction, self)
	}
	return best.direction, nil
}
