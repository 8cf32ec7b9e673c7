package strangle

// ReachableCells counts how many cells can be reached from the seed by
// orthogonal steps over free cells, the seed itself included. A cell is
// free when no snake body and no hazard occupies it. The walk visits each
// cell at most once, so the cost is bounded by the board area.
func (g *Game) ReachableCells(seed Coord) int {
	occupied := make(map[Coord]struct{})
	for i := range g.Snakes {
		for _, c := range g.Snakes[i].Body {
			occupied[c] = struct{}{}
		}
	}
	for _, c := range g.Hazards {
		occupied[c] = struct{}{}
	}

	visited := map[Coord]struct{}{seed: {}}
	queue := []Coord{seed}
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Directions {
			next := cur.Neighbour(d)
			if !g.Board.Contains(next) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			if _, hit := occupied[next]; hit {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return count
}
