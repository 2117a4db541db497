package game

import (
	"strings"
	"testing"
	"time"
)

func TestSummaryText_Contents(t *testing.T) {
	st := Stats{Pieces: 31, Lines: 7, BestClear: 2}
	got := SummaryText(70, st, 95*time.Second)
	for _, want := range []string{"score:  70", "lines:  7", "best clear 2", "pieces: 31", "1m35s"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
}
