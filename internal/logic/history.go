package logic

import (
	"fmt"
	"strings"

	"scrollwatch/internal/domain"
)

// FormatHistory renders entries as a plain-text table, newest last
func FormatHistory(entries []domain.TimedSnapshot) string {
	if len(entries) == 0 {
		return "No snapshots published yet.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s  %-8s  %6s  %6s  %s\n", "TIME", "SOURCE", "X", "Y", "DIR")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-12s  %-8s  %6d  %6d  %s\n",
			e.At.Format("15:04:05.000"), e.Source, e.X, e.Y, e.Direction())
	}
	return b.String()
}
