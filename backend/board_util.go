package main

import (
	"fmt"
	"math/rand"
)

// CoordToPoint maps a 1-indexed (row, col) pair onto the padded array:
// point = row*(size+1) + col. Row and column must lie in [1, size].
func CoordToPoint(row, col, size int) Point {
	if row < 1 || row > size || col < 1 || col > size {
		panic(fmt.Sprintf("coordinate (%d,%d) outside board of size %d", row, col, size))
	}
	return Point(row*(size+1) + col)
}

// PointCoord is the inverse of CoordToPoint.
func PointCoord(p Point, size int) (row, col int) {
	stride := size + 1
	return int(p) / stride, int(p) % stride
}

func Opponent(color Cell) Cell {
	if color == CellBlack {
		return CellWhite
	}
	return CellBlack
}

func IsBlackWhite(color Cell) bool {
	return color == CellBlack || color == CellWhite
}

// PointsWhere returns the indices of every cell equal to want, ascending.
func PointsWhere(cells []Cell, want Cell) []Point {
	points := []Point{}
	for i, cell := range cells {
		if cell == want {
			points = append(points, Point(i))
		}
	}
	return points
}

// GenerateRandomMove picks a uniformly random legal point for color. With
// avoidEyes set, points that are simple eyes of color are skipped. Reports
// false when no candidate qualifies.
func GenerateRandomMove(rules Rules, board Board, color Cell, avoidEyes bool, rng *rand.Rand) (Point, bool) {
	candidates := board.EmptyPoints()
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, p := range candidates {
		if avoidEyes && board.IsSimpleEye(p, color) {
			continue
		}
		if rules.IsLegalPoint(board, p, color) {
			return p, true
		}
	}
	return NoPoint, false
}
