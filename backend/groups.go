package main

import (
	"fmt"
	"sort"
)

// GroupOf returns the maximal group of stones connected to seed through
// orthogonal same-color adjacency, sorted ascending. The fill is iterative
// with an explicit frontier so deep groups cannot exhaust the stack.
func (b Board) GroupOf(seed Point) []Point {
	color := b.cells[seed]
	if !IsBlackWhite(color) {
		panic(fmt.Sprintf("group seed %d holds %v, not a stone", seed, color))
	}
	visited := make([]bool, len(b.cells))
	visited[seed] = true
	group := []Point{seed}
	frontier := []Point{seed}
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, nb := range b.NeighborsOfColor(p, color) {
			if !visited[nb] {
				visited[nb] = true
				group = append(group, nb)
				frontier = append(frontier, nb)
			}
		}
	}
	sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })
	return group
}

// HasLiberty reports whether any stone of group touches an empty cell.
func (b Board) HasLiberty(group []Point) bool {
	for _, stone := range group {
		if len(b.NeighborsOfColor(stone, CellEmpty)) > 0 {
			return true
		}
	}
	return false
}

// ResolveCapture removes the group containing p when it has no liberty
// left, keeping the stone lists in step with the cells, and reports the
// captured points plus whether exactly one stone fell. A group that still
// has a liberty is left untouched.
func (b *Board) ResolveCapture(p Point) ([]Point, bool) {
	group := b.GroupOf(p)
	if b.HasLiberty(group) {
		return nil, false
	}
	color := b.cells[p]
	for _, stone := range group {
		b.cells[stone] = CellEmpty
		b.removeStone(stone, color)
	}
	if len(group) == 1 {
		b.koPoint = p
		return group, true
	}
	return group, false
}

// IsSimpleEye reports whether p is a simple eye for color: every orthogonal
// neighbor is border or color, and the opponent holds at most one diagonal
// in the center, none when p sits on the edge.
func (b Board) IsSimpleEye(p Point, color Cell) bool {
	for _, nb := range b.Neighbors(p) {
		if cell := b.cells[nb]; cell != CellBorder && cell != color {
			return false
		}
	}
	opponent := Opponent(color)
	falseCount := 0
	atEdge := 0
	for _, d := range b.DiagNeighbors(p) {
		switch b.cells[d] {
		case CellBorder:
			atEdge = 1
		case opponent:
			falseCount++
		}
	}
	return falseCount <= 1-atEdge
}
