package searcher

import (
	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"
)

// Node is a position in a fully materialized game tree. Each child is kept
// next to the move that produced it, in the order the board generated them.
type Node struct {
	position Position
	edges    []edge
}

type edge struct {
	move  game.Move
	child *Node
}

// Build constructs every position reachable from board within depth plies,
// with mover to play first.
func Build(board game.Board, mover game.Color, depth int) *Node {
	return build(Position{Board: board, Mover: mover}, depth, metrics.NewDummyCollector())
}

func build(position Position, depth int, collector metrics.Collector) *Node {
	if depth < 0 {
		panic("cannot build a tree with a negative depth")
	}
	collector.AddNode()

	node := &Node{position: position}
	if depth == 0 {
		collector.AddLeaf(position.Decided())
		return node
	}
	if position.Decided() { // No point looking past a finished game
		collector.AddLeaf(true)
		return node
	}

	moves := position.LegalMoves()
	node.edges = make([]edge, 0, len(moves))
	for _, move := range moves {
		child := build(position.Play(move), depth-1, collector)
		node.edges = append(node.edges, edge{move: move, child: child})
	}
	if len(node.edges) == 0 { // Stalemate
		collector.AddLeaf(false)
	}
	return node
}

func (n *Node) Position() Position {
	return n.position
}

func (n *Node) IsLeaf() bool {
	return len(n.edges) == 0
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.edges)
}

// Child returns the i-th child and the move leading to it.
func (n *Node) Child(i int) (game.Move, *Node) {
	e := n.edges[i]
	return e.move, e.child
}

func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.edges))
	for i, e := range n.edges {
		children[i] = e.child
	}
	return children
}

func (n *Node) Moves() []game.Move {
	moves := make([]game.Move, len(n.edges))
	for i, e := range n.edges {
		moves[i] = e.move
	}
	return moves
}

// Size counts the nodes of the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, e := range n.edges {
		size += e.child.Size()
	}
	return size
}
