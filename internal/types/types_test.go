package types

import "testing"

func TestDifficultyRemovals(t *testing.T) {
	cases := []struct {
		diff Difficulty
		want int
	}{
		{Easy, 40},
		{Medium, 50},
		{Hard, 55},
	}
	for _, tc := range cases {
		if got := tc.diff.Removals(); got != tc.want {
			t.Fatalf("%s.Removals() = %d, want %d", tc.diff, got, tc.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty(" Medium "); err != nil || d != Medium {
		t.Fatalf("ParseDifficulty(\" Medium \") = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Fatal("ParseDifficulty accepted an unknown tier")
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	line := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	g, err := ParseGrid(line)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if g[0][0] != 5 || g[0][4] != 7 || g[8][8] != 9 {
		t.Fatalf("parsed cells wrong: %s", g.String())
	}
	if got := g.String(); got != line {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, line)
	}
	if got := g.FilledCells(); got != 30 {
		t.Fatalf("FilledCells = %d, want 30", got)
	}
}

func TestParseGridRejectsBadInput(t *testing.T) {
	if _, err := ParseGrid("123"); err == nil {
		t.Fatal("ParseGrid accepted a short line")
	}
	long := make([]byte, CellCount)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := ParseGrid(string(long)); err == nil {
		t.Fatal("ParseGrid accepted invalid cell characters")
	}
}

func TestSetCell(t *testing.T) {
	var g Grid
	if err := g.SetCell(4, 4, 9); err != nil {
		t.Fatalf("SetCell(4,4,9) failed: %v", err)
	}
	if g[4][4] != 9 {
		t.Fatal("SetCell did not write the digit")
	}
	if err := g.SetCell(4, 4, 10); err == nil {
		t.Fatal("SetCell accepted digit 10")
	}
	if err := g.SetCell(9, 0, 1); err == nil {
		t.Fatal("SetCell accepted an out-of-range row")
	}
}

func TestPuzzleJSONRoundTrip(t *testing.T) {
	p := &Puzzle{
		ID:         "abc123",
		Difficulty: Hard,
		Givens:     []Position{{Row: 0, Col: 0}, {Row: 8, Col: 8}},
	}
	p.Grid[0][0] = 5
	p.Solution[0][0] = 5

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if back.ID != p.ID || back.Difficulty != p.Difficulty || back.Grid != p.Grid {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if !back.IsGiven(8, 8) || back.IsGiven(1, 1) {
		t.Fatal("IsGiven wrong after round trip")
	}
}
