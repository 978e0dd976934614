package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const (
	numColours    = 2
	numPieceKinds = 6
	numSquares    = chess.BoardSize * chess.BoardSize
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed_c0de

var (
	pieceKeys [numColours][numPieceKinds][numSquares]uint64
	blackKey  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for s := range pieceKeys[c][k] {
				pieceKeys[c][k][s] = rng.Uint64()
			}
		}
	}
	blackKey = rng.Uint64()
}

// GenerateZobristHash hashes the piece placement and the side to move.
// HasMoved flags are not part of the hash.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := board.Get(chess.Sq(rank, file))
			if !ok {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Kind-chess.King][rank*chess.BoardSize+file]
		}
	}
	if toMove == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// WeakHash is a cheap order-sensitive checksum of the placement, used as a
// second opinion when two Zobrist hashes collide.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := board.Get(chess.Sq(rank, file))
			if !ok {
				continue
			}
			sq := uint32(rank*chess.BoardSize + file + 1)
			hash += sq * uint32(p.Letter())
		}
	}
	return hash
}
