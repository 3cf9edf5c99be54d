package core

import "testing"

func TestPaletteColorDistinct(t *testing.T) {
	// Small palettes must map to pairwise distinct colors.
	seen := make(map[Color]int)
	for idx := 0; idx < 6; idx++ {
		c := PaletteColor(idx)
		if c == ColorDefault {
			t.Errorf("palette index %d mapped to the default color", idx)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("palette indices %d and %d share color %d", prev, idx, c)
		}
		seen[c] = idx
	}
}

func TestPaletteColorCycles(t *testing.T) {
	if PaletteColor(0) != PaletteColor(len(paletteColors)) {
		t.Error("indices past the predefined set should cycle")
	}
}

func TestPaletteColorNegative(t *testing.T) {
	if PaletteColor(-1) != ColorDefault {
		t.Error("negative indices fall back to the default color")
	}
}
