package main

import "testing"

func TestTryPlaceSetsCellAndBookkeeping(t *testing.T) {
	settings := GameSettings{BoardSize: 9, WinLength: 5}
	rules := NewRules(settings)
	b := NewBoard(9)

	if !rules.TryPlace(&b, b.Pt(2, 3), CellBlack) {
		t.Fatalf("expected placement on empty cell to succeed")
	}
	if b.Color(b.Pt(2, 3)) != CellBlack {
		t.Fatalf("expected (2,3) to hold a black stone, got %v", b.Color(b.Pt(2, 3)))
	}
	if !containsPoint(b.Stones(CellBlack), b.Pt(2, 3)) {
		t.Fatalf("expected stone list to record the placement")
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("bookkeeping broken after placement: %v", err)
	}
}

func TestTryPlacePanicsOnNonStoneColor(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 5, WinLength: 5})
	b := NewBoard(5)
	mustPanic(t, "empty color", func() { rules.TryPlace(&b, b.Pt(1, 1), CellEmpty) })
	mustPanic(t, "border color", func() { rules.TryPlace(&b, b.Pt(1, 1), CellBorder) })
}

func TestTryPlaceRejectsOccupiedWithoutMutation(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	setStone(&b, 5, 5, CellBlack)
	before := BoardHash(b, PlayerBlack)

	if rules.TryPlace(&b, b.Pt(5, 5), CellWhite) {
		t.Fatalf("expected placement on occupied cell to fail")
	}
	if BoardHash(b, PlayerBlack) != before {
		t.Fatalf("expected rejected placement to leave the board unchanged")
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("bookkeeping broken after rejection: %v", err)
	}
}

func TestTryPlaceRejectsOnceDecided(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	for col := 2; col <= 6; col++ {
		setStone(&b, 2, col, CellWhite)
	}

	if rules.TryPlace(&b, b.Pt(8, 8), CellBlack) {
		t.Fatalf("expected placements after a win to fail")
	}
	if b.Color(b.Pt(8, 8)) != CellEmpty {
		t.Fatalf("expected rejected placement to leave (8,8) empty")
	}
}

func TestTryPlaceRejectsFullBoard(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 3, WinLength: 3})
	b := fullDrawBoard()

	if !rules.IsDraw(b) {
		t.Fatalf("expected the filled board to count as a draw")
	}
	if rules.TryPlace(&b, b.Pt(1, 1), CellBlack) {
		t.Fatalf("expected placement on a full board to fail")
	}
}

func TestTryPlaceRejectsBorderCell(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	before := BoardHash(b, PlayerBlack)

	if rules.TryPlace(&b, Point(0), CellBlack) {
		t.Fatalf("expected placement on a border cell to fail")
	}
	if b.Color(Point(0)) != CellBorder {
		t.Fatalf("expected border cell to stay border, got %v", b.Color(Point(0)))
	}
	if BoardHash(b, PlayerBlack) != before {
		t.Fatalf("expected rejected border placement to leave the board unchanged")
	}
}

func TestFreshBoardReportsAllPointsOpen(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	if got := len(b.EmptyPoints()); got != 81 {
		t.Fatalf("expected 81 empty points, got %d", got)
	}
	if got := rules.Result(b); got != StatusRunning {
		t.Fatalf("expected fresh board to be running, got %v", got)
	}
}

func TestFullAlternatingBoardIsDraw(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	// Tiling with period 4 along every scan direction keeps each run at 2.
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			color := CellWhite
			if (col+2*row)%4 < 2 {
				color = CellBlack
			}
			setStone(&b, row, col, color)
		}
	}
	if rules.IsWin(b, CellBlack) || rules.IsWin(b, CellWhite) {
		t.Fatalf("expected no winning run in the tiling")
	}
	if got := rules.Result(b); got != StatusDraw {
		t.Fatalf("expected full board to draw, got %v", got)
	}
}

func TestIsLegalPointNeverMutates(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	setStone(&b, 4, 4, CellBlack)
	setStone(&b, 4, 5, CellWhite)
	before := BoardHash(b, PlayerBlack)
	emptyBefore := b.CountEmpty()

	if !rules.IsLegalPoint(b, b.Pt(1, 1), CellBlack) {
		t.Fatalf("expected empty point to be legal")
	}
	if rules.IsLegalPoint(b, b.Pt(4, 4), CellWhite) {
		t.Fatalf("expected occupied point to be illegal")
	}
	if rules.IsLegalPoint(b, Point(0), CellBlack) {
		t.Fatalf("expected border point to be illegal")
	}
	if BoardHash(b, PlayerBlack) != before || b.CountEmpty() != emptyBefore {
		t.Fatalf("expected legality probes to leave the board untouched")
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("bookkeeping broken after probes: %v", err)
	}
}

func TestIsLegalReportsReasons(t *testing.T) {
	settings := GameSettings{BoardSize: 9, WinLength: 5, BlackType: PlayerHuman, WhiteType: PlayerHuman, BlackStarts: true}
	rules := NewRules(settings)
	state := DefaultGameState(settings)

	if ok, reason := rules.IsLegal(state, Move{Row: 0, Col: 4}, PlayerBlack); ok || reason != "out of bounds" {
		t.Fatalf("expected out of bounds, got ok=%v reason=%q", ok, reason)
	}
	setStone(&state.Board, 5, 5, CellBlack)
	if ok, reason := rules.IsLegal(state, Move{Row: 5, Col: 5}, PlayerWhite); ok || reason != "occupied" {
		t.Fatalf("expected occupied, got ok=%v reason=%q", ok, reason)
	}
	for col := 2; col <= 6; col++ {
		setStone(&state.Board, 8, col, CellWhite)
	}
	if ok, reason := rules.IsLegal(state, Move{Row: 1, Col: 1}, PlayerBlack); ok || reason != "game already decided" {
		t.Fatalf("expected game already decided, got ok=%v reason=%q", ok, reason)
	}

	drawSettings := GameSettings{BoardSize: 3, WinLength: 3}
	drawRules := NewRules(drawSettings)
	drawState := DefaultGameState(drawSettings)
	drawState.Board = fullDrawBoard()
	if ok, reason := drawRules.IsLegal(drawState, Move{Row: 2, Col: 2}, PlayerBlack); ok || reason != "board full" {
		t.Fatalf("expected board full, got ok=%v reason=%q", ok, reason)
	}
}

func TestIsWinNeedsFullRunLength(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	for col := 1; col <= 4; col++ {
		setStone(&b, 5, col, CellBlack)
	}
	if rules.IsWin(b, CellBlack) {
		t.Fatalf("expected 4 in a row to fall short")
	}
	setStone(&b, 5, 5, CellBlack)
	if !rules.IsWin(b, CellBlack) {
		t.Fatalf("expected 5 in a row to win")
	}
	setStone(&b, 5, 6, CellBlack)
	if !rules.IsWin(b, CellBlack) {
		t.Fatalf("expected an overlong run to still win")
	}
	if rules.IsWin(b, CellWhite) {
		t.Fatalf("expected no white win")
	}
}

func TestIsWinCoversAllFourDirections(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	runs := map[string][][2]int{
		"horizontal": {{3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}},
		"vertical":   {{2, 3}, {3, 3}, {4, 3}, {5, 3}, {6, 3}},
		"down-right": {{2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}},
		"down-left":  {{2, 6}, {3, 5}, {4, 4}, {5, 3}, {6, 2}},
	}
	for name, run := range runs {
		b := NewBoard(9)
		for _, rc := range run {
			setStone(&b, rc[0], rc[1], CellBlack)
		}
		if !rules.IsWin(b, CellBlack) {
			t.Fatalf("expected %s run to win", name)
		}
	}
}

func TestIsWinStopsAtRowBoundary(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	// Three stones ending row 1 plus two opening row 2 must not join up.
	for _, rc := range [][2]int{{1, 7}, {1, 8}, {1, 9}, {2, 1}, {2, 2}} {
		setStone(&b, rc[0], rc[1], CellBlack)
	}
	if rules.IsWin(b, CellBlack) {
		t.Fatalf("expected runs not to wrap across rows")
	}
}

func TestIsWinScanIsReadOnly(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	for col := 1; col <= 4; col++ {
		setStone(&b, 3, col, CellBlack)
	}
	before := BoardHash(b, PlayerBlack)
	first := rules.IsWin(b, CellBlack)
	second := rules.IsWin(b, CellBlack)
	if first || second {
		t.Fatalf("expected no win from 4 stones")
	}
	if BoardHash(b, PlayerBlack) != before {
		t.Fatalf("expected win scans to leave the board untouched")
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("bookkeeping broken after win scans: %v", err)
	}
}

func TestResultChecksWhiteBeforeBlack(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	for col := 2; col <= 6; col++ {
		setStone(&b, 2, col, CellBlack)
		setStone(&b, 4, col, CellWhite)
	}
	if got := rules.Result(b); got != StatusWhiteWon {
		t.Fatalf("expected white result when both sides align, got %v", got)
	}
}

func TestResultDrawOnlyWhenFull(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 3, WinLength: 3})
	b := NewBoard(3)
	if got := rules.Result(b); got != StatusRunning {
		t.Fatalf("expected empty board to keep running, got %v", got)
	}
	b = fullDrawBoard()
	if got := rules.Result(b); got != StatusDraw {
		t.Fatalf("expected full board without a run to draw, got %v", got)
	}
}

func TestWinningLineReturnsTheRun(t *testing.T) {
	rules := NewRules(GameSettings{BoardSize: 9, WinLength: 5})
	b := NewBoard(9)
	for col := 2; col <= 6; col++ {
		setStone(&b, 3, col, CellBlack)
	}
	line, ok := rules.WinningLine(b, CellBlack)
	if !ok {
		t.Fatalf("expected a winning line")
	}
	if len(line) != 5 {
		t.Fatalf("expected 5 points in the line, got %d", len(line))
	}
	for i, col := 0, 2; col <= 6; i, col = i+1, col+1 {
		if line[i] != b.Pt(3, col) {
			t.Fatalf("expected line point %d at (3,%d), got %d", i, col, line[i])
		}
	}
	if _, ok := rules.WinningLine(b, CellWhite); ok {
		t.Fatalf("expected no white line")
	}
}

// fullDrawBoard fills a 3x3 board with no three-in-a-row for either color.
func fullDrawBoard() Board {
	b := NewBoard(3)
	layout := [3][3]Cell{
		{CellBlack, CellWhite, CellBlack},
		{CellBlack, CellWhite, CellWhite},
		{CellWhite, CellBlack, CellBlack},
	}
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			setStone(&b, row, col, layout[row-1][col-1])
		}
	}
	return b
}
