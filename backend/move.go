package main

// Move is a 1-indexed (row, col) board coordinate pair.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsValid(boardSize int) bool {
	return m.Row >= 1 && m.Col >= 1 && m.Row <= boardSize && m.Col <= boardSize
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

func (m Move) Point(boardSize int) Point {
	return CoordToPoint(m.Row, m.Col, boardSize)
}

func MoveFromPoint(p Point, boardSize int) Move {
	row, col := PointCoord(p, boardSize)
	return Move{Row: row, Col: col}
}
