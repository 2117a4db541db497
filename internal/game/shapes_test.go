package game

import "testing"

func TestShapes_CatalogComplete(t *testing.T) {
	want := map[string]bool{"I": true, "T": true, "O": true, "S": true, "Z": true, "L": true, "J": true}
	if len(Shapes) != 7 {
		t.Fatalf("expected 7 shapes, got %d", len(Shapes))
	}
	for _, sh := range Shapes {
		if !want[sh.Name] {
			t.Fatalf("unexpected shape name %q", sh.Name)
		}
		delete(want, sh.Name)
		if len(sh.Mask) == 0 {
			t.Fatalf("shape %s has an empty mask", sh.Name)
		}
		width := len(sh.Mask[0])
		filled := 0
		for _, row := range sh.Mask {
			if len(row) != width {
				t.Fatalf("shape %s mask is ragged", sh.Name)
			}
			for _, cell := range row {
				if cell {
					filled++
				}
			}
		}
		if filled != 4 {
			t.Fatalf("shape %s has %d occupied cells, want 4", sh.Name, filled)
		}
	}
	if len(want) != 0 {
		t.Fatalf("missing shapes: %v", want)
	}
}

func TestRotateCW_TPiece(t *testing.T) {
	got := RotateCW(mask("###", ".#."))
	want := mask(".#", "##", ".#")
	if !maskEqual(got, want) {
		t.Fatalf("rotated T = %v, want %v", got, want)
	}
}

func TestRotateCW_IPieceCycle(t *testing.T) {
	m := mask("####")
	r1 := RotateCW(m)
	if len(r1) != 4 || len(r1[0]) != 1 {
		t.Fatalf("1x4 should rotate to 4x1, got %dx%d", len(r1), len(r1[0]))
	}
	r2 := RotateCW(r1)
	if len(r2) != 1 || len(r2[0]) != 4 {
		t.Fatalf("4x1 should rotate back to 1x4, got %dx%d", len(r2), len(r2[0]))
	}
}

func TestRotateCW_FourTimesIsIdentity(t *testing.T) {
	for _, sh := range Shapes {
		m := copyMask(sh.Mask)
		for i := 0; i < 4; i++ {
			m = RotateCW(m)
		}
		if !maskEqual(m, sh.Mask) {
			t.Fatalf("shape %s: four rotations should restore the original mask", sh.Name)
		}
	}
}

func TestCopyMask_Independent(t *testing.T) {
	orig := mask("##", "#.")
	cp := copyMask(orig)
	cp[0][0] = false
	if !orig[0][0] {
		t.Fatal("mutating the copy must not affect the original")
	}
}
