package main

import (
	"fmt"
	"sync"
)

type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) ApplyHumanMove(move Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	return gc.game.TryApplyMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
}

func (gc *GameController) StopGame() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Stop()
}

func (gc *GameController) UpdateSettings(update GameSettings, reset bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if reset {
		gc.game.Reset(update)
		return
	}
	// Dimensions stay with the live board; changing them requires a reset.
	update.BoardSize = gc.game.settings.BoardSize
	update.WinLength = gc.game.settings.WinLength
	gc.game.settings = update.Normalize()
	gc.game.rules = NewRules(gc.game.settings)
	gc.game.createPlayers()
}

// ProbeLegal asks whether player could place on move without touching the
// live board.
func (gc *GameController) ProbeLegal(move Move, player PlayerColor) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.rules.IsLegal(gc.game.state, move, player)
}

func (gc *GameController) EmptyPoints() []Move {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	size := gc.game.settings.BoardSize
	points := gc.game.state.Board.EmptyPoints()
	moves := make([]Move, 0, len(points))
	for _, p := range points {
		moves = append(moves, MoveFromPoint(p, size))
	}
	return moves
}

// GroupAt reports the connected group through move and whether it still has
// a liberty.
func (gc *GameController) GroupAt(move Move) ([]Move, bool, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	size := gc.game.settings.BoardSize
	if !move.IsValid(size) {
		return nil, false, fmt.Errorf("move (%d,%d) out of bounds", move.Row, move.Col)
	}
	board := &gc.game.state.Board
	p := move.Point(size)
	if !IsBlackWhite(board.Color(p)) {
		return nil, false, fmt.Errorf("no stone at (%d,%d)", move.Row, move.Col)
	}
	group := board.GroupOf(p)
	alive := board.HasLiberty(group)
	moves := make([]Move, 0, len(group))
	for _, stone := range group {
		moves = append(moves, MoveFromPoint(stone, size))
	}
	return moves, alive, nil
}

// CaptureAt attempts a capture of the group through move on the live board.
func (gc *GameController) CaptureAt(move Move) ([]Move, bool, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	captured, single, reason := gc.game.ApplyCapture(move)
	if reason != "" {
		return nil, false, fmt.Errorf("%s", reason)
	}
	return captured, single, nil
}

func (gc *GameController) EyeAt(move Move, player PlayerColor) (bool, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	size := gc.game.settings.BoardSize
	if !move.IsValid(size) {
		return false, fmt.Errorf("move (%d,%d) out of bounds", move.Row, move.Col)
	}
	return gc.game.state.Board.IsSimpleEye(move.Point(size), CellFromPlayer(player)), nil
}
