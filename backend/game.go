package main

import (
	"log"
	"time"
)

type Game struct {
	settings    GameSettings
	rules       Rules
	state       GameState
	blackPlayer IPlayer
	whitePlayer IPlayer
	turnStart   time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings.Normalize()
	g.rules = NewRules(g.settings)
	g.state.Reset(g.settings)
	g.createPlayers()
	g.turnStart = time.Now()
	g.logMatchup()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) Stop() {
	if g.state.Status == StatusRunning {
		g.state.Status = StatusNotStarted
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	ok, reason := g.rules.IsLegalDefault(g.state, move)
	if !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	player := g.currentPlayer()
	isBotMove := player != nil && !player.IsHuman()
	cell := CellFromPlayer(g.state.ToMove)
	p := move.Point(g.settings.BoardSize)
	if !g.rules.TryPlace(&g.state.Board, p, cell) {
		g.state.LastMessage = "Illegal move: rejected"
		return false, g.state.LastMessage
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.LastMessage = ""
	g.logMovePlayed(move, elapsedMs, isBotMove)

	switch g.rules.Result(g.state.Board) {
	case StatusWhiteWon:
		g.state.Status = StatusWhiteWon
		g.captureWinningLine(CellWhite)
		g.logWin(PlayerWhite)
	case StatusBlackWon:
		g.state.Status = StatusBlackWon
		g.captureWinningLine(CellBlack)
		g.logWin(PlayerBlack)
	case StatusDraw:
		g.state.Status = StatusDraw
	default:
		g.state.ToMove = otherPlayer(g.state.ToMove)
		g.state.Board.SetCurrent(CellFromPlayer(g.state.ToMove))
		g.turnStart = time.Now()
	}
	g.state.Hash = BoardHash(g.state.Board, g.state.ToMove)
	return true, ""
}

// ApplyCapture resolves a capture attempt against the live board and keeps
// the derived state fields in step when stones were removed.
func (g *Game) ApplyCapture(move Move) ([]Move, bool, string) {
	if !move.IsValid(g.settings.BoardSize) {
		return nil, false, "out of bounds"
	}
	p := move.Point(g.settings.BoardSize)
	if !IsBlackWhite(g.state.Board.Color(p)) {
		return nil, false, "no stone at point"
	}
	captured, single := g.state.Board.ResolveCapture(p)
	if len(captured) > 0 {
		g.state.Hash = BoardHash(g.state.Board, g.state.ToMove)
		if g.state.Status != StatusNotStarted {
			// Removing stones can undo a finished result; rederive it.
			g.state.Status = g.rules.Result(g.state.Board)
		}
	}
	moves := make([]Move, 0, len(captured))
	for _, stone := range captured {
		moves = append(moves, MoveFromPoint(stone, g.settings.BoardSize))
	}
	return moves, single, ""
}

func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		return false
	}
	if delay := GetConfig().BotDelayMs; delay > 0 {
		if time.Since(g.turnStart) < time.Duration(delay)*time.Millisecond {
			return false
		}
	}
	move := player.ChooseMove(g.state.Clone(), g.rules)
	if !move.IsValid(g.settings.BoardSize) {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewRandomPlayer()
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewRandomPlayer()
	}
}

func (g *Game) captureWinningLine(color Cell) {
	line, ok := g.rules.WinningLine(g.state.Board, color)
	if !ok {
		return
	}
	moves := make([]Move, 0, len(line))
	for _, p := range line {
		moves = append(moves, MoveFromPoint(p, g.settings.BoardSize))
	}
	g.state.WinningLine = moves
}

func (g *Game) logMatchup() {
	label := func(t PlayerType) string {
		if t == PlayerBot {
			return "Bot"
		}
		return "Human"
	}
	log.Printf("[backend] new game %s: Black (%s) vs White (%s), size %d",
		g.state.GameID, label(g.settings.BlackType), label(g.settings.WhiteType), g.settings.BoardSize)
}

func (g *Game) logMovePlayed(move Move, elapsedMs float64, isBotMove bool) {
	if !GetConfig().LogMoves {
		return
	}
	actor := "human"
	if isBotMove {
		actor = "bot"
	}
	log.Printf("[backend] %v played (%d,%d) by %s after %.0fms", CellFromPlayer(g.state.ToMove), move.Row, move.Col, actor, elapsedMs)
}

func (g *Game) logWin(player PlayerColor) {
	log.Printf("[backend] %v wins game %s", CellFromPlayer(player), g.state.GameID)
}
