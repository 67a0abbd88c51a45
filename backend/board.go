package main

import (
	"fmt"
	"sort"
)

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
	CellBorder
)

// MaxBoardSize is the largest supported board edge length.
const MaxBoardSize = 25

// Point is a linear index into the padded cell array.
type Point int

// NoPoint marks the absence of a point.
const NoPoint Point = -1

// Board stores the grid as one padded array. Rows use stride size+1 so a
// one-cell border column plus full border rows above and below surround the
// interior; every interior point therefore has all four orthogonal and all
// four diagonal neighbors in-array. Border cells stay CellBorder forever.
type Board struct {
	size    int
	stride  int
	cells   []Cell
	current Cell
	koPoint Point
	// stones is indexed by Cell value: slots CellBlack and CellWhite hold
	// that color's occupied points sorted ascending, slot 0 is reserved.
	stones [3][]Point
}

func NewBoard(size int) Board {
	b := Board{}
	b.Reset(size)
	return b
}

func (b *Board) Reset(size int) {
	if size < 2 || size > MaxBoardSize {
		panic(fmt.Sprintf("board size %d out of range [2, %d]", size, MaxBoardSize))
	}
	b.size = size
	b.stride = size + 1
	b.current = CellBlack
	b.koPoint = NoPoint
	b.cells = make([]Cell, size*size+3*(size+1))
	for i := range b.cells {
		b.cells[i] = CellBorder
	}
	for row := 1; row <= size; row++ {
		start := b.rowStart(row)
		for col := 0; col < size; col++ {
			b.cells[start+Point(col)] = CellEmpty
		}
	}
	b.stones = [3][]Point{}
}

func (b Board) rowStart(row int) Point {
	return Point(row*b.stride + 1)
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Stride() int {
	return b.stride
}

func (b Board) Pt(row, col int) Point {
	return CoordToPoint(row, col, b.size)
}

func (b Board) Color(p Point) Cell {
	return b.cells[p]
}

func (b Board) Current() Cell {
	return b.current
}

func (b *Board) SetCurrent(color Cell) {
	b.current = color
}

func (b Board) KoPoint() Point {
	return b.koPoint
}

func (b Board) EmptyPoints() []Point {
	return PointsWhere(b.cells, CellEmpty)
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

// Stones returns a copy of the occupied points of color, sorted ascending.
func (b Board) Stones(color Cell) []Point {
	return append([]Point(nil), b.stones[color]...)
}

func (b Board) Neighbors(p Point) [4]Point {
	ns := Point(b.stride)
	return [4]Point{p - 1, p + 1, p - ns, p + ns}
}

func (b Board) DiagNeighbors(p Point) [4]Point {
	ns := Point(b.stride)
	return [4]Point{p - ns - 1, p - ns + 1, p + ns - 1, p + ns + 1}
}

func (b Board) NeighborsOfColor(p Point, color Cell) []Point {
	matches := []Point{}
	for _, nb := range b.Neighbors(p) {
		if b.cells[nb] == color {
			matches = append(matches, nb)
		}
	}
	return matches
}

// Clone returns a fully independent copy sharing no mutable state.
func (b Board) Clone() Board {
	clone := b
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	for color := range b.stones {
		clone.stones[color] = append([]Point(nil), b.stones[color]...)
	}
	return clone
}

func (b *Board) insertStone(p Point, color Cell) {
	list := b.stones[color]
	at := sort.Search(len(list), func(i int) bool { return list[i] >= p })
	if at < len(list) && list[at] == p {
		return
	}
	list = append(list, 0)
	copy(list[at+1:], list[at:])
	list[at] = p
	b.stones[color] = list
}

func (b *Board) removeStone(p Point, color Cell) {
	list := b.stones[color]
	at := sort.Search(len(list), func(i int) bool { return list[i] >= p })
	if at == len(list) || list[at] != p {
		return
	}
	b.stones[color] = append(list[:at], list[at+1:]...)
}

// Verify recomputes the stone lists from the cell array and reports the
// first discrepancy. Intended for tests.
func (b Board) Verify() error {
	for _, color := range []Cell{CellBlack, CellWhite} {
		want := PointsWhere(b.cells, color)
		got := b.stones[color]
		if len(got) != len(want) {
			return fmt.Errorf("%v stone list has %d entries, cells have %d", color, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				return fmt.Errorf("%v stone list entry %d is %d, cells say %d", color, i, got[i], want[i])
			}
		}
	}
	if len(b.stones[0]) != 0 {
		return fmt.Errorf("reserved stone slot holds %d entries", len(b.stones[0]))
	}
	return nil
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	case CellBorder:
		return "Border"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func PlayerFromCell(cell Cell) (PlayerColor, error) {
	switch cell {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("cell %v has no player", cell)
	}
}
