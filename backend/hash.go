package main

import "sync"

// HashTable holds one random 64-bit key per (point, color) pair of a padded
// board plus a side-to-move key. Status payloads carry the resulting board
// hash so clients can drop duplicate broadcasts.
type HashTable struct {
	size  int
	cells []uint64
	side  uint64
}

type hashStore struct {
	mu     sync.Mutex
	tables map[int]*HashTable
}

var hashTables = &hashStore{tables: make(map[int]*HashTable)}

func GetHashTable(size int) *HashTable {
	hashTables.mu.Lock()
	defer hashTables.mu.Unlock()
	if table, ok := hashTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	maxPoint := size*size + 3*(size+1)
	table := &HashTable{size: size, cells: make([]uint64, maxPoint*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	hashTables.tables[size] = table
	return table
}

func (t *HashTable) stone(p Point, color Cell) uint64 {
	idx := int(p) * 2
	if color == CellWhite {
		idx++
	}
	return t.cells[idx]
}

// BoardHash folds every recorded stone and the side to move into one value.
// Two boards hash equal iff their stones and mover agree.
func BoardHash(board Board, toMove PlayerColor) uint64 {
	table := GetHashTable(board.Size())
	var hash uint64
	for _, color := range []Cell{CellBlack, CellWhite} {
		for _, p := range board.stones[color] {
			hash ^= table.stone(p, color)
		}
	}
	if toMove == PlayerWhite {
		hash ^= table.side
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
