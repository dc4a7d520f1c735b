// Package eval scores chess positions by material count.
package eval

import "github.com/notnil/chess"

// MateScore is the score magnitude assigned to a checkmated position.
// It dwarfs any material total, so a forced mate always dominates.
const MateScore = 999999

// Evaluate returns the material score of pos in centipawns from White's
// perspective: positive favors White, negative favors Black.
//
// A checkmated position scores -MateScore when White is to move (White has
// been mated) and +MateScore otherwise. A stalemated position scores 0.
func Evaluate(pos *chess.Position) int {
	switch pos.Status() {
	case chess.Checkmate:
		if pos.Turn() == chess.White {
			return -MateScore
		}
		return MateScore
	case chess.Stalemate:
		return 0
	}

	board := pos.Board()
	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := pieceValue(piece.Type())
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// pieceValue returns the fixed centipawn value of a piece type.
func pieceValue(t chess.PieceType) int {
	switch t {
	case chess.Pawn:
		return 100
	case chess.Knight:
		return 320
	case chess.Bishop:
		return 330
	case chess.Rook:
		return 500
	case chess.Queen:
		return 900
	case chess.King:
		return 20000
	}
	return 0
}
