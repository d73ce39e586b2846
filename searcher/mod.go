package searcher

// Leaf scores from the perspective of the player evaluating the tree
const (
	Win  = 1.0
	Loss = -Win
	Draw = 0.0 // Undecided leaf: depth exhausted or no legal moves
)
