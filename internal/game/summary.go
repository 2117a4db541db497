package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// SummaryText formats a short plain-text report of a finished game,
// suitable for pasting into a chat or issue.
func SummaryText(final int, st Stats, dur time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Neon Drop — game over\n")
	fmt.Fprintf(&b, "score:  %d\n", final)
	fmt.Fprintf(&b, "lines:  %d (best clear %d)\n", st.Lines, st.BestClear)
	fmt.Fprintf(&b, "pieces: %d\n", st.Pieces)
	fmt.Fprintf(&b, "time:   %s\n", dur.Round(time.Second))
	return b.String()
}

// CopySummary puts the game-over summary on the system clipboard.
func CopySummary(final int, st Stats, dur time.Duration) error {
	return clipboard.WriteAll(SummaryText(final, st, dur))
}
