package main

import (
	"math/rand"
	"time"
)

// RandomPlayer plays uniformly random legal moves, preferring points that
// are not its own simple eyes when the eye filter is enabled.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer() *RandomPlayer {
	return NewSeededRandomPlayer(time.Now().UnixNano())
}

func NewSeededRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (rp *RandomPlayer) IsHuman() bool {
	return false
}

func (rp *RandomPlayer) ChooseMove(state GameState, rules Rules) Move {
	color := CellFromPlayer(state.ToMove)
	avoidEyes := GetConfig().BotAvoidEyes
	p, ok := GenerateRandomMove(rules, state.Board, color, avoidEyes, rp.rng)
	if !ok && avoidEyes {
		// Every remaining point is one of our own eyes; fill one anyway
		// rather than stalling the game.
		p, ok = GenerateRandomMove(rules, state.Board, color, false, rp.rng)
	}
	if !ok {
		return Move{}
	}
	return MoveFromPoint(p, state.Board.Size())
}
