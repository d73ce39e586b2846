package searcher

import (
	"testing"

	"github.com/10varun17/hex-a-pawn/game"
	"github.com/10varun17/hex-a-pawn/hexapawn"
	"github.com/stretchr/testify/require"
)

/**
Tree construction:
- leaves: depth exhausted, last mover already won, no legal moves
- children follow the board's move order, mover alternates
Evaluation (perspective fixed at the root mover):
- won leaf: Win for the last mover, Loss for the other player
- undecided leaf: Draw
- inner node: mean of the children
Selection:
- no moves -> empty, one move -> that move, ties kept in move order
*/

func TestBuild(t *testing.T) {
	t.Run("depth zero yields a leaf without generating moves", func(t *testing.T) {
		plays := 0
		board := mockBoard{next: []mockBoard{open(), open()}, played: &plays}

		root := Build(board, game.White, 0)

		require.True(t, root.IsLeaf(), "Root should have no children")
		require.Equal(t, 0, plays, "No move should be played")
	})

	t.Run("stops at a position the last mover has won", func(t *testing.T) {
		plays := 0
		board := mockBoard{winner: game.Black, next: []mockBoard{open()}, played: &plays}

		root := Build(board, game.White, 5)

		require.True(t, root.IsLeaf(), "A finished game should not be explored")
		require.Equal(t, 0, plays, "No move should be played")
	})

	t.Run("keeps expanding when only the mover has won", func(t *testing.T) {
		board := won(game.White, open())

		root := Build(board, game.White, 1)

		require.Equal(t, 1, root.Len(), "Only the last mover's win ends the game")
	})

	t.Run("no legal moves yields a leaf", func(t *testing.T) {
		root := Build(open(), game.White, 3)

		require.True(t, root.IsLeaf())
	})

	t.Run("children follow the move order and alternate movers", func(t *testing.T) {
		board := open(open(open()), open(), won(game.White))

		root := Build(board, game.White, 2)

		require.Equal(t, 3, root.Len(), "One child per legal move")
		require.Equal(t, []game.Move{mockMove{0}, mockMove{1}, mockMove{2}}, root.Moves())
		for i, child := range root.Children() {
			move, sameChild := root.Child(i)
			require.Equal(t, mockMove{id: i}, move)
			require.Same(t, child, sameChild)
			require.Equal(t, game.Black, child.Position().Mover, "Children should be Black to move")
			require.Equal(t, game.White, child.Position().LastMover())
		}
		_, first := root.Child(0)
		require.Equal(t, 1, first.Len(), "Grandchildren should exist within depth")
		_, grandChild := first.Child(0)
		require.Equal(t, game.White, grandChild.Position().Mover)
		require.True(t, grandChild.IsLeaf(), "Depth should be exhausted")
		require.Equal(t, 5, root.Size())
	})

	t.Run("panics on negative depth", func(t *testing.T) {
		require.Panics(t, func() { Build(open(), game.White, -1) })
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("won leaf scores for the last mover", func(t *testing.T) {
		leaf := Build(won(game.Black), game.White, 4)

		require.Equal(t, Win, Evaluate(leaf, game.Black), "Last mover should see a win")
		require.Equal(t, Loss, Evaluate(leaf, game.White), "Other player should see a loss")
	})

	t.Run("won leaf at depth zero still counts", func(t *testing.T) {
		leaf := Build(won(game.Black, open()), game.White, 0)

		require.Equal(t, Loss, Evaluate(leaf, game.White))
	})

	t.Run("undecided leaves score a draw", func(t *testing.T) {
		exhausted := Build(open(open()), game.White, 0)
		stalemate := Build(open(), game.White, 2)

		require.Equal(t, Draw, Evaluate(exhausted, game.White))
		require.Equal(t, Draw, Evaluate(exhausted, game.Black))
		require.Equal(t, Draw, Evaluate(stalemate, game.White))
	})

	t.Run("inner nodes average their children instead of minimaxing", func(t *testing.T) {
		// White to move: move0 wins at once, move1 lets Black pick between a
		// win and an open position, move2 hands Black a forced win.
		board := open(
			won(game.White),
			open(won(game.Black), open()),
			open(won(game.Black)),
		)

		root := Build(board, game.White, 2)

		require.Equal(t, []float64{Win, -0.5, Loss}, Scores(root))
		require.Equal(t, (Win+-0.5+Loss)/3, Evaluate(root, game.White))
	})

	t.Run("every inner node is the mean of its children", func(t *testing.T) {
		root := Build(hexapawn.NewDefaultBoard(), game.White, 4)

		var check func(n *Node)
		check = func(n *Node) {
			if n.IsLeaf() {
				return
			}
			total := 0.0
			for _, child := range n.Children() {
				total += Evaluate(child, game.White)
				check(child)
			}
			require.Equal(t, total/float64(n.Len()), Evaluate(n, game.White))
		}
		check(root)
	})

	t.Run("perspective is threaded unchanged through the tree", func(t *testing.T) {
		board := open(won(game.White), open(won(game.Black)))

		root := Build(board, game.White, 3)

		require.Equal(t, Draw, Evaluate(root, game.White))
		require.Equal(t, -Evaluate(root.Children()[0], game.White), Evaluate(root.Children()[0], game.Black))
		require.Equal(t, Win, Evaluate(root.Children()[1], game.Black))
	})

	t.Run("is repeatable", func(t *testing.T) {
		root := Build(hexapawn.NewDefaultBoard(), game.White, 6)

		require.Equal(t, Evaluate(root, game.White), Evaluate(root, game.White))
	})
}

func TestBestMoves(t *testing.T) {
	t.Run("no legal moves", func(t *testing.T) {
		root := Build(open(), game.White, 3)

		require.Empty(t, BestMoves(root))
	})

	t.Run("single legal move regardless of its score", func(t *testing.T) {
		root := Build(open(open(won(game.Black))), game.White, 2)

		require.Equal(t, []game.Move{mockMove{0}}, BestMoves(root))
		require.Equal(t, []float64{Loss}, Scores(root))
	})

	t.Run("ties are returned in move order", func(t *testing.T) {
		board := open(open(), won(game.White), open(), won(game.White))

		root := Build(board, game.White, 1)

		require.Equal(t, []game.Move{mockMove{1}, mockMove{3}}, BestMoves(root))
	})

	t.Run("all undecided children tie", func(t *testing.T) {
		root := Build(open(open(open()), open(open())), game.White, 1)

		require.Equal(t, []game.Move{mockMove{0}, mockMove{1}}, BestMoves(root))
	})

	t.Run("finished game has no best move", func(t *testing.T) {
		root := Build(won(game.Black, open()), game.White, 3)

		require.Empty(t, BestMoves(root))
	})

	t.Run("picks the single winning move one ply from the end", func(t *testing.T) {
		board, err := hexapawn.ParseBoard("..b/w../.w.")
		require.NoError(t, err)
		winning := hexapawn.Move{From: hexapawn.Square{Row: 1, Col: 0}, To: hexapawn.Square{Row: 2, Col: 0}}

		for _, depth := range []int{1, 2} {
			root := Build(board, game.White, depth)

			require.Equal(t, []game.Move{winning}, BestMoves(root), "depth %d", depth)
			for i, move := range root.Moves() {
				if move == winning {
					require.Equal(t, Win, Scores(root)[i])
				}
			}
		}
	})

	t.Run("solving the whole game is deterministic", func(t *testing.T) {
		board := hexapawn.NewDefaultBoard()

		first := BestMoves(Build(board, game.White, 10))
		for i := 0; i < 5; i++ {
			require.Equal(t, first, BestMoves(Build(board, game.White, 10)))
		}
		require.NotEmpty(t, first)
	})
}

func TestSearcher(t *testing.T) {
	t.Run("panics on depth below one", func(t *testing.T) {
		require.Panics(t, func() { NewSearcher(0) })
	})

	t.Run("matches BestMoves on a fresh tree", func(t *testing.T) {
		board := hexapawn.NewDefaultBoard()
		s := NewSearcher(4)

		got, _ := s.Search(board, game.Black)

		require.Equal(t, BestMoves(Build(board, game.Black, 4)), got)
		require.Equal(t, 4, s.Depth())
	})

	t.Run("collects tree metrics", func(t *testing.T) {
		board := hexapawn.NewDefaultBoard()
		root := Build(board, game.White, 3)
		s := NewSearcher(3, WithMetrics())

		best, metric := s.Search(board, game.White)

		require.Equal(t, root.Size(), metric.Nodes)
		require.Equal(t, countLeaves(root), metric.Leaves)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, len(best), metric.Ties)

		// A second search starts counting from zero
		_, again := s.Search(board, game.White)
		require.Equal(t, metric.Nodes, again.Nodes)
	})
}

func countLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	leaves := 0
	for _, child := range n.Children() {
		leaves += countLeaves(child)
	}
	return leaves
}
