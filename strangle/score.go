package strangle

import "fmt"

// Weights tunes the evaluator. None of the values carry correctness; they
// only shape how the search trades hunger, space and aggression off
// against each other.
type Weights struct {
	Health         int64
	Length         int64
	CenterDistance int64
	Opponents      int64
	Reachable      int64
	Depth          int64

	// Terminal bases. DeadScore punishes a normal death, SacrificeScore a
	// conceded equal-length head-to-head (bad, but notably less bad, so a
	// forced trade beats a guaranteed loss). WinScore rewards being the
	// last snake standing in a game that started with opponents.
	DeadScore      int64
	SacrificeScore int64
	WinScore       int64
}

// DefaultWeights are the tournament values.
var DefaultWeights = Weights{
	Health:         100,
	Length:         500,
	CenterDistance: -100,
	Opponents:      -10000,
	Reachable:      10,
	Depth:          1000,
	DeadScore:      -1_000_000,
	SacrificeScore: -500_000,
	WinScore:       1_000_000,
}

// ScoreFactors captures everything the evaluator knows about one snake in
// one post-turn state. Keeping the raw factors around (rather than just
// the scalar) makes move decisions explainable in trace logs.
type ScoreFactors struct {
	SnakeID   SnakeID
	Dead      bool
	Sacrifice bool

	Health         int
	Length         int
	CenterDistance int
	Opponents      int
	Reachable      int
	Multisnake     bool

	Depth int
}

// DeadFactors scores an eliminated snake. Depth still applies: dying on a
// later turn beats dying now.
func DeadFactors(id SnakeID, kind DeathKind, depth int) ScoreFactors {
	return ScoreFactors{
		SnakeID:   id,
		Dead:      true,
		Sacrifice: kind == DeathSacrifice,
		Depth:     depth,
	}
}

// Calculate reduces the factors to a single comparable utility.
func (sf ScoreFactors) Calculate(w Weights) int64 {
	depth := int64(sf.Depth)
	if sf.Dead {
		base := w.DeadScore
		if sf.Sacrifice {
			base = w.SacrificeScore
		}
		return base + depth*w.Depth
	}
	if sf.Multisnake && sf.Opponents == 0 {
		// The board is ours. Sooner is better, so depth counts against
		// the win here.
		return w.WinScore - depth*w.Depth
	}
	return int64(sf.Health)*w.Health +
		int64(sf.Length)*w.Length +
		int64(sf.CenterDistance)*w.CenterDistance +
		int64(sf.Opponents)*w.Opponents +
		int64(sf.Reachable)*w.Reachable +
		depth*w.Depth
}

func (sf ScoreFactors) String() string {
	if sf.Dead {
		how := "dead"
		if sf.Sacrifice {
			how = "dead by sacrifice"
		}
		return fmt.Sprintf("snake #%d %s at depth %d", sf.SnakeID, how, sf.Depth)
	}
	return fmt.Sprintf(
		"snake #%d @ %d hp, length %d, %d from center, %d opponents, %d reachable, depth %d",
		sf.SnakeID, sf.Health, sf.Length, sf.CenterDistance, sf.Opponents, sf.Reachable, sf.Depth,
	)
}
