package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/leetboard/pkg/fsutil"
	"github.com/yaklabco/leetboard/pkg/leaderboard"
)

// separatorWidth is the width of the horizontal rules framing the table.
const separatorWidth = 80

// Column widths for the fixed-width text table. A medal glyph on a top-3 row
// extends the username field past its nominal width; the overflow is cosmetic
// and left as-is.
const (
	colWidthUsername = 25
	colWidthTotal    = 15
	colWidthEasy     = 10
	colWidthMedium   = 10
	colWidthHard     = 10
)

// TextRenderer produces a fixed-width columnar plain-text report.
type TextRenderer struct{}

// Render implements Renderer.
func (r *TextRenderer) Render(report leaderboard.Report) (string, error) {
	if err := leaderboard.Validate(report.Stats); err != nil {
		return "", err
	}

	separator := strings.Repeat("-", separatorWidth)

	lines := []string{
		"",
		fmt.Sprintf("LeetCode Statistics (Last %d Days)", report.WindowDays),
		separator,
		fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s",
			colWidthUsername, "Username",
			colWidthTotal, "Total Questions",
			colWidthEasy, "Easy",
			colWidthMedium, "Medium",
			colWidthHard, "Hard",
		),
		separator,
	}

	for _, stat := range leaderboard.Rank(report.Stats) {
		username := stat.Username
		if medal := stat.Medal(); medal != "" {
			username = username + " " + medal
		}

		lines = append(lines, fmt.Sprintf("%-*s %-*d %-*d %-*d %-*d",
			colWidthUsername, username,
			colWidthTotal, stat.TotalQuestions,
			colWidthEasy, stat.EasyCount,
			colWidthMedium, stat.MediumCount,
			colWidthHard, stat.HardCount,
		))
	}

	lines = append(lines, separator)

	if report.CompletionMessage != "" {
		lines = append(lines, report.CompletionMessage)
	}

	return strings.Join(lines, "\n"), nil
}

// WriteFile implements Renderer, persisting under a .txt extension.
func (r *TextRenderer) WriteFile(ctx context.Context, baseFilename, content string) error {
	path := fsutil.EnsureExt(baseFilename, FormatText.Ext())
	return fsutil.WriteFile(ctx, path, []byte(content), 0)
}
