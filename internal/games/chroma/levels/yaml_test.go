package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/puzzle"
)

const samplePuzzle = `
id: sample
name: Sample Puzzle
size: 3
palette: 3
rows:
  - [1, 2, 1]
  - [1, 2, 1]
  - [0, 1, 0]
power:
  - {row: 1, col: 1}
locked:
  - {row: 2, col: 0, turns: 2}
solution:
  - {row: 0, col: 1}
  - {row: 1, col: 1}
`

func TestParseYAML(t *testing.T) {
	p, err := ParseYAML([]byte(samplePuzzle))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if p.ID != "sample" || p.Name != "Sample Puzzle" {
		t.Errorf("unexpected identity: %q %q", p.ID, p.Name)
	}
	inst := p.Instance
	if inst.Grid.Size != 3 || inst.Palette != 3 {
		t.Fatalf("unexpected board: size %d palette %d", inst.Grid.Size, inst.Palette)
	}
	if got := inst.Grid.At(puzzle.At(0, 1)); got != 2 {
		t.Errorf("cell (0,1) = %d, expected 2", got)
	}
	if !inst.Power.Has(puzzle.At(1, 1)) {
		t.Error("power tile (1,1) missing")
	}
	if inst.Locks.Turns(puzzle.At(2, 0)) != 2 {
		t.Errorf("lock (2,0) turns = %d, expected 2", inst.Locks.Turns(puzzle.At(2, 0)))
	}
	if len(inst.Certified) != 2 || !inst.Certified[0].Equal(puzzle.At(0, 1)) {
		t.Errorf("unexpected solution: %v", inst.Certified)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"not yaml", "rows: ["},
		{"size too small", "id: x\nsize: 1\npalette: 2\nrows:\n  - [0]"},
		{"row count mismatch", "id: x\nsize: 2\npalette: 2\nrows:\n  - [0, 0]"},
		{"ragged row", "id: x\nsize: 2\npalette: 2\nrows:\n  - [0, 0]\n  - [0]"},
		{"value outside palette", "id: x\nsize: 2\npalette: 2\nrows:\n  - [0, 2]\n  - [0, 0]"},
		{"power out of range", "id: x\nsize: 2\npalette: 2\nrows:\n  - [0, 1]\n  - [0, 0]\npower:\n  - {row: 5, col: 0}"},
		{"lock turns zero", "id: x\nsize: 2\npalette: 2\nrows:\n  - [0, 1]\n  - [0, 0]\nlocked:\n  - {row: 0, col: 0, turns: 0}"},
		{"solution out of range", "id: x\nsize: 2\npalette: 2\nrows:\n  - [0, 1]\n  - [0, 0]\nsolution:\n  - {row: 0, col: 9}"},
	}
	for _, tc := range testCases {
		if _, err := ParseYAML([]byte(tc.src)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	inst, err := puzzle.Generate(puzzle.GenParams{
		Size:          4,
		Palette:       3,
		ScrambleMoves: 6,
		PowerTiles:    1,
		LockedTiles:   1,
		MaxLockTurns:  2,
		Seed:          3,
		MaxAttempts:   20,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := EncodeYAML("gen-1", "Generated", inst)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	p, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	if !p.Instance.Grid.Equal(inst.Grid) {
		t.Error("grid did not survive the round trip")
	}
	if p.Instance.Locks.Key() != inst.Locks.Key() {
		t.Error("locks did not survive the round trip")
	}
	if len(p.Instance.Certified) != len(inst.Certified) {
		t.Fatalf("solution length %d, expected %d", len(p.Instance.Certified), len(inst.Certified))
	}

	// The reloaded solution must still solve the reloaded puzzle.
	sess := puzzle.NewSession(p.Instance)
	for _, mv := range p.Instance.Certified {
		sess.Click(mv)
	}
	if !sess.Won() {
		t.Error("reloaded solution does not solve the reloaded puzzle")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()

	first, err := ParseYAML([]byte(samplePuzzle))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	data, err := EncodeYAML("b-second", "", first.Instance)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	writeFile(t, filepath.Join(dir, "one.yaml"), samplePuzzle)
	writeFile(t, filepath.Join(dir, "two.yml"), string(data))
	writeFile(t, filepath.Join(dir, "ignored.txt"), "not a puzzle")
	writeFile(t, filepath.Join(dir, "broken.yaml"), "rows: [")

	loader := NewLoader(dir)
	puzzles, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(puzzles) != 2 {
		t.Fatalf("expected 2 puzzles, got %d", len(puzzles))
	}
	// Sorted by ID: "b-second" before "sample".
	if puzzles[0].ID != "b-second" || puzzles[1].ID != "sample" {
		t.Errorf("unexpected order: %q, %q", puzzles[0].ID, puzzles[1].ID)
	}

	byID, err := loader.LoadByID("sample")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if byID.FilePath == "" {
		t.Error("loaded puzzle should record its file path")
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected an error for an unknown ID")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
