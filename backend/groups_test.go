package main

import "testing"

func TestGroupOfCollectsConnectedStones(t *testing.T) {
	b := NewBoard(5)
	setStone(&b, 2, 2, CellBlack)
	setStone(&b, 2, 3, CellBlack)
	setStone(&b, 3, 2, CellBlack)
	setStone(&b, 3, 3, CellWhite)
	setStone(&b, 5, 5, CellBlack)

	group := b.GroupOf(b.Pt(2, 2))
	if len(group) != 3 {
		t.Fatalf("expected group of 3 stones, got %d", len(group))
	}
	for i := 1; i < len(group); i++ {
		if group[i-1] >= group[i] {
			t.Fatalf("expected ascending group, got %v", group)
		}
	}
	for _, want := range []Point{b.Pt(2, 2), b.Pt(2, 3), b.Pt(3, 2)} {
		if !containsPoint(group, want) {
			t.Fatalf("expected group to contain %d, got %v", want, group)
		}
	}
	if containsPoint(group, b.Pt(5, 5)) || containsPoint(group, b.Pt(3, 3)) {
		t.Fatalf("expected disconnected and hostile stones to stay out, got %v", group)
	}
}

func TestGroupOfPanicsWithoutStone(t *testing.T) {
	b := NewBoard(5)
	mustPanic(t, "empty seed", func() { b.GroupOf(b.Pt(3, 3)) })
	mustPanic(t, "border seed", func() { b.GroupOf(Point(0)) })
}

func TestHasLibertyFalseOnlyWhenSurrounded(t *testing.T) {
	b := NewBoard(5)
	setStone(&b, 3, 3, CellBlack)
	setStone(&b, 2, 3, CellWhite)
	setStone(&b, 4, 3, CellWhite)
	setStone(&b, 3, 2, CellWhite)

	group := b.GroupOf(b.Pt(3, 3))
	if !b.HasLiberty(group) {
		t.Fatalf("expected liberty through the open (3,4) side")
	}
	setStone(&b, 3, 4, CellWhite)
	if b.HasLiberty(group) {
		t.Fatalf("expected no liberty once fully surrounded")
	}
}

func TestResolveCaptureRemovesSurroundedGroup(t *testing.T) {
	b := NewBoard(5)
	setStone(&b, 3, 3, CellBlack)
	setStone(&b, 3, 4, CellBlack)
	for _, white := range [][2]int{{2, 3}, {2, 4}, {4, 3}, {4, 4}, {3, 2}, {3, 5}} {
		setStone(&b, white[0], white[1], CellWhite)
	}

	captured, single := b.ResolveCapture(b.Pt(3, 4))
	if len(captured) != 2 || single {
		t.Fatalf("expected pair capture, got %d stones single=%v", len(captured), single)
	}
	if b.Color(b.Pt(3, 3)) != CellEmpty || b.Color(b.Pt(3, 4)) != CellEmpty {
		t.Fatalf("expected captured cells to be empty")
	}
	if len(b.Stones(CellBlack)) != 0 {
		t.Fatalf("expected black stone list to empty out, got %v", b.Stones(CellBlack))
	}
	if len(b.Stones(CellWhite)) != 6 {
		t.Fatalf("expected white stones untouched, got %d", len(b.Stones(CellWhite)))
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("bookkeeping broken after capture: %v", err)
	}
}

func TestResolveCaptureLeavesLiveGroupAlone(t *testing.T) {
	b := NewBoard(5)
	setStone(&b, 3, 3, CellBlack)
	setStone(&b, 2, 3, CellWhite)
	setStone(&b, 4, 3, CellWhite)
	setStone(&b, 3, 2, CellWhite)
	before := BoardHash(b, PlayerBlack)

	captured, single := b.ResolveCapture(b.Pt(3, 3))
	if captured != nil || single {
		t.Fatalf("expected no capture while a liberty remains, got %v", captured)
	}
	if BoardHash(b, PlayerBlack) != before {
		t.Fatalf("expected board unchanged after refused capture")
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("bookkeeping broken after refused capture: %v", err)
	}
}

func TestResolveCaptureSingleStoneRecordsKoPoint(t *testing.T) {
	b := NewBoard(5)
	setStone(&b, 1, 1, CellBlack)
	setStone(&b, 1, 2, CellWhite)
	setStone(&b, 2, 1, CellWhite)

	captured, single := b.ResolveCapture(b.Pt(1, 1))
	if len(captured) != 1 || !single {
		t.Fatalf("expected a single stone capture, got %d single=%v", len(captured), single)
	}
	if b.KoPoint() != b.Pt(1, 1) {
		t.Fatalf("expected ko point at the captured stone, got %d", b.KoPoint())
	}
}

func TestIsSimpleEyeCenterToleratesOneHostileDiagonal(t *testing.T) {
	b := NewBoard(5)
	eye := b.Pt(3, 3)
	setStone(&b, 2, 3, CellBlack)
	setStone(&b, 4, 3, CellBlack)
	setStone(&b, 3, 2, CellBlack)
	setStone(&b, 3, 4, CellBlack)

	if !b.IsSimpleEye(eye, CellBlack) {
		t.Fatalf("expected clean surround to be an eye")
	}
	setStone(&b, 2, 2, CellWhite)
	if !b.IsSimpleEye(eye, CellBlack) {
		t.Fatalf("expected one hostile diagonal to be tolerated in the center")
	}
	setStone(&b, 4, 4, CellWhite)
	if b.IsSimpleEye(eye, CellBlack) {
		t.Fatalf("expected two hostile diagonals to break the eye")
	}
}

func TestIsSimpleEyeEdgeToleratesNoHostileDiagonal(t *testing.T) {
	b := NewBoard(5)
	eye := b.Pt(1, 3)
	setStone(&b, 1, 2, CellBlack)
	setStone(&b, 1, 4, CellBlack)
	setStone(&b, 2, 3, CellBlack)

	if !b.IsSimpleEye(eye, CellBlack) {
		t.Fatalf("expected edge point with clean diagonals to be an eye")
	}
	setStone(&b, 2, 2, CellWhite)
	if b.IsSimpleEye(eye, CellBlack) {
		t.Fatalf("expected a single hostile diagonal to break an edge eye")
	}
}

func TestIsSimpleEyeRejectsOpenOrthogonal(t *testing.T) {
	b := NewBoard(5)
	eye := b.Pt(3, 3)
	setStone(&b, 2, 3, CellBlack)
	setStone(&b, 4, 3, CellBlack)
	setStone(&b, 3, 2, CellBlack)

	if b.IsSimpleEye(eye, CellBlack) {
		t.Fatalf("expected open orthogonal side to disqualify the eye")
	}
	setStone(&b, 3, 4, CellWhite)
	if b.IsSimpleEye(eye, CellBlack) {
		t.Fatalf("expected hostile orthogonal side to disqualify the eye")
	}
}

func TestIsSimpleEyeJudgesNeighborsNotTheProbedCell(t *testing.T) {
	b := NewBoard(5)
	probe := b.Pt(3, 3)
	setStone(&b, 2, 3, CellBlack)
	setStone(&b, 4, 3, CellBlack)
	setStone(&b, 3, 2, CellBlack)
	setStone(&b, 3, 4, CellBlack)
	// The probed cell itself is occupied; only the surround matters.
	setStone(&b, 3, 3, CellWhite)

	if !b.IsSimpleEye(probe, CellBlack) {
		t.Fatalf("expected eye shape to be judged from the neighbors alone")
	}
}
