// Package fen provides FEN (Forsyth-Edwards Notation) input handling for
// the command-line tools.
package fen

import (
	"errors"
	"strings"
)

// ErrInvalidFEN indicates the FEN string is malformed.
var ErrInvalidFEN = errors.New("invalid FEN notation")

// Complete validates fen and returns a full six-field FEN string. Users may
// omit the halfmove clock and fullmove number; missing trailing fields are
// padded with "0" and "1".
func Complete(fen string) (string, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return "", ErrInvalidFEN
	}

	if !isValidPiecePlacement(parts[0]) {
		return "", ErrInvalidFEN
	}
	if parts[1] != "w" && parts[1] != "b" {
		return "", ErrInvalidFEN
	}

	if len(parts) == 4 {
		parts = append(parts, "0")
	}
	if len(parts) == 5 {
		parts = append(parts, "1")
	}
	return strings.Join(parts, " "), nil
}

// SideToMove returns "w" or "b" from a FEN string.
func SideToMove(fen string) (string, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return "", ErrInvalidFEN
	}
	if parts[1] != "w" && parts[1] != "b" {
		return "", ErrInvalidFEN
	}
	return parts[1], nil
}

// isValidPiecePlacement validates the piece placement part of a FEN.
func isValidPiecePlacement(placement string) bool {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return false
	}

	for _, rank := range ranks {
		squares := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				squares += int(ch - '0')
			case ch == 'P', ch == 'N', ch == 'B', ch == 'R', ch == 'Q', ch == 'K',
				ch == 'p', ch == 'n', ch == 'b', ch == 'r', ch == 'q', ch == 'k':
				squares++
			default:
				return false
			}
		}
		if squares != 8 {
			return false
		}
	}

	return true
}
