package cli

import (
	"fmt"
	"strings"

	"github.com/bookkept/matchd/internal/domain/matcher"
)

// PrintHeader prints the batch header.
func PrintHeader(txCount, attCount int) {
	fmt.Printf("matchd reconcile: %d transactions vs %d attachments\n", txCount, attCount)
	fmt.Println(strings.Repeat("-", 60))
}

// PrintLine prints one reconciliation outcome.
func PrintLine(line ReconcileLine) {
	label := line.Transaction.ID
	if label == "" {
		label = fmt.Sprintf("#%d", line.Index)
	}

	if line.Match == nil {
		fmt.Printf("  %-20s -> no match\n", label)
		return
	}

	target := line.Match.Attachment.ID
	if target == "" {
		target = fmt.Sprintf("#%d", line.Match.Index)
	}

	if line.Match.Method == matcher.MethodReference {
		fmt.Printf("  %-20s -> %s (reference)\n", label, target)
		return
	}
	fmt.Printf("  %-20s -> %s (score %.1f)\n", label, target, line.Match.Score)
}

// PrintSummary prints totals for the run.
func PrintSummary(s ReconcileSummary) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Summary: Matched=%d (reference=%d, score=%d) Unmatched=%d\n",
		s.ByReference+s.ByScore,
		s.ByReference,
		s.ByScore,
		s.Unmatched)
}
