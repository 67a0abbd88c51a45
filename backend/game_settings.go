package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerBot
)

type GameSettings struct {
	BoardSize   int        `json:"board_size"`
	WinLength   int        `json:"win_length"`
	BlackType   PlayerType `json:"-"`
	WhiteType   PlayerType `json:"-"`
	BlackStarts bool       `json:"black_starts"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:   9,
		WinLength:   5,
		BlackType:   PlayerHuman,
		WhiteType:   PlayerBot,
		BlackStarts: true,
	}
}

// Normalize clamps a settings payload into the supported ranges so a bad
// request cannot construct an unusable game.
func (s GameSettings) Normalize() GameSettings {
	if s.BoardSize < 2 {
		s.BoardSize = DefaultGameSettings().BoardSize
	}
	if s.BoardSize > MaxBoardSize {
		s.BoardSize = MaxBoardSize
	}
	if s.WinLength < 2 {
		s.WinLength = DefaultGameSettings().WinLength
	}
	if s.WinLength > s.BoardSize {
		s.WinLength = s.BoardSize
	}
	return s
}
