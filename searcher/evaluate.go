package searcher

import "github.com/10varun17/hex-a-pawn/game"

// Evaluate scores the subtree rooted at node for perspective, normally the
// mover at the root of the tree. Finished games score Win or Loss, other
// leaves score Draw, and an inner node scores the mean of its children: every
// continuation is treated as equally likely, there is no min/max alternation.
func Evaluate(node *Node, perspective game.Color) float64 {
	if node.IsLeaf() {
		if !node.position.Decided() {
			return Draw
		}
		if node.position.LastMover() == perspective {
			return Win
		}
		return Loss
	}

	total := 0.0
	for _, e := range node.edges {
		total += Evaluate(e.child, perspective)
	}
	return total / float64(len(node.edges))
}
