// Package hashing detects repeated games within a self-play batch.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DuplicateDetector tracks the signatures of games already seen.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable stores signatures keyed by final-position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// MoveCount is the number of plies in the game
	MoveCount int
	// MoveHash hashes the move sequence
	MoveHash uint64
}

// NewSignature builds the signature of a finished game from its moves in
// coordinate notation and its final position.
func NewSignature(moves []string, board *chess.Board, toMove chess.Colour) GameSignature {
	return GameSignature{
		Hash:      GenerateZobristHash(board, toMove),
		WeakHash:  WeakHash(board),
		MoveCount: len(moves),
		MoveHash:  HashMoves(moves),
	}
}

// NewDuplicateDetector creates a new duplicate detector. With exactMatch
// false, games that transpose into the same final position count as repeats.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records sig and reports whether an equal game was already seen.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch {
		return a.MoveCount == b.MoveCount && a.MoveHash == b.MoveHash
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// HashMoves creates a hash from the move texts.
func HashMoves(moves []string) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, move := range moves {
		for _, c := range move {
			hash = hash*multiplier + uint64(c)
		}
		hash = hash*multiplier + ' '
	}

	return hash
}
