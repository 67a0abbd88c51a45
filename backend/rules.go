package main

import (
	"fmt"
	"log"
)

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

// TryPlace plays color on p. The move is rejected without mutating the
// board when the game is already decided, no empty point remains, or the
// target cell is not empty. On success the cell is set and the point is
// inserted into the color's stone list.
func (r Rules) TryPlace(board *Board, p Point, color Cell) bool {
	if !IsBlackWhite(color) {
		panic(fmt.Sprintf("cannot place %v stone", color))
	}
	if r.IsWin(*board, CellWhite) || r.IsWin(*board, CellBlack) {
		return false
	}
	if r.IsDraw(*board) {
		log.Printf("[backend] move on full board rejected (point %d)", p)
		return false
	}
	if board.cells[p] != CellEmpty {
		return false
	}
	board.cells[p] = color
	board.insertStone(p, color)
	return true
}

// IsLegalPoint simulates the placement on a full copy of the board, so the
// board passed in is never touched no matter what the attempt does.
func (r Rules) IsLegalPoint(board Board, p Point, color Cell) bool {
	scratch := board.Clone()
	return r.TryPlace(&scratch, p, color)
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) (bool, string) {
	if !move.IsValid(r.settings.BoardSize) {
		return false, "out of bounds"
	}
	p := move.Point(r.settings.BoardSize)
	if !r.IsLegalPoint(state.Board, p, CellFromPlayer(player)) {
		return false, r.rejectReason(state.Board, p)
	}
	return true, ""
}

func (r Rules) IsLegalDefault(state GameState, move Move) (bool, string) {
	return r.IsLegal(state, move, state.ToMove)
}

func (r Rules) rejectReason(board Board, p Point) string {
	switch r.Result(board) {
	case StatusBlackWon, StatusWhiteWon:
		return "game already decided"
	case StatusDraw:
		return "board full"
	}
	if board.cells[p] != CellEmpty {
		return "occupied"
	}
	return "illegal"
}

// IsWin reports whether color holds a run of at least WinLength consecutive
// stones rightward, downward, or along either down diagonal. Each recorded
// stone of the color is tried as a run start; the scan is read only.
func (r Rules) IsWin(board Board, color Cell) bool {
	ns := Point(board.stride)
	directions := [4]Point{1, ns, ns + 1, ns - 1}
	for _, delta := range directions {
		for _, start := range board.stones[color] {
			run := 1
			q := start + delta
			for run < r.settings.WinLength && board.cells[q] == color {
				run++
				q += delta
			}
			if run >= r.settings.WinLength {
				return true
			}
		}
	}
	return false
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

// Result derives the game outcome from the current stones: white alignment
// first, then black, then the full-board draw.
func (r Rules) Result(board Board) GameStatus {
	if r.IsWin(board, CellWhite) {
		return StatusWhiteWon
	}
	if r.IsWin(board, CellBlack) {
		return StatusBlackWon
	}
	if r.IsDraw(board) {
		return StatusDraw
	}
	return StatusRunning
}

// WinningLine returns one qualifying run for color when present, for
// display purposes. Directions are tried in the same order as IsWin.
func (r Rules) WinningLine(board Board, color Cell) ([]Point, bool) {
	ns := Point(board.stride)
	directions := [4]Point{1, ns, ns + 1, ns - 1}
	for _, delta := range directions {
		for _, start := range board.stones[color] {
			line := []Point{start}
			q := start + delta
			for len(line) < r.settings.WinLength && board.cells[q] == color {
				line = append(line, q)
				q += delta
			}
			if len(line) >= r.settings.WinLength {
				return line, true
			}
		}
	}
	return nil, false
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
