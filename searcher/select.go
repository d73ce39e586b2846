package searcher

import (
	"math"

	"github.com/10varun17/hex-a-pawn/game"
)

// Scores evaluates every child of root from the perspective of root's mover.
func Scores(root *Node) []float64 {
	perspective := root.position.Mover
	scores := make([]float64, len(root.edges))
	for i, e := range root.edges {
		scores[i] = Evaluate(e.child, perspective)
	}
	return scores
}

// BestMoves returns every move of root whose child has the highest score, in
// move order. Scores are compared exactly: they are short sums of Win, Loss
// and Draw divided by child counts, so equal outcomes produce equal floats.
func BestMoves(root *Node) []game.Move {
	best, _ := rank(root)
	return best
}

func rank(root *Node) ([]game.Move, float64) {
	if root.IsLeaf() {
		return []game.Move{}, math.NaN()
	}

	scores := Scores(root)
	top := scores[0]
	for _, score := range scores[1:] {
		if score > top {
			top = score
		}
	}

	best := []game.Move{}
	for i, score := range scores {
		if score == top {
			best = append(best, root.edges[i].move)
		}
	}
	return best, top
}
