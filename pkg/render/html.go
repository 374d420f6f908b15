package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/leetboard/pkg/fsutil"
	"github.com/yaklabco/leetboard/pkg/leaderboard"
)

// profileURL is the LeetCode profile link template for username cells.
const profileURL = "https://leetcode.com/u/%s/"

// htmlHead is the static document prologue: charset and viewport metas plus
// the embedded stylesheet.
var htmlHead = []string{
	"<!DOCTYPE html>",
	"<html>",
	"<head>",
	"    <meta charset='UTF-8'>",
	"    <meta name='viewport' content='width=device-width, initial-scale=1.0'>",
	"    <title>LeetCode Accountability Report</title>",
	"    <style>",
	"        body { font-family: Arial, sans-serif; margin: 20px; }",
	"        h1 { color: #333; }",
	"        table { border-collapse: collapse; width: 100%; margin-top: 20px; }",
	"        th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }",
	"        th { background-color: #f2f2f2; }",
	"        tr:hover { background-color: #f5f5f5; }",
	"        .message { margin: 20px 0; padding: 15px; background-color: #f8f9fa; border-left: 5px solid #4285f4; }",
	"        .first-place { font-weight: bold; }",
	"        .medal { font-size: 1.2em; }",
	"    </style>",
	"</head>",
	"<body>",
}

// HTMLRenderer produces a complete HTML5 document with a styled table.
type HTMLRenderer struct{}

// Render implements Renderer.
//
// Usernames are interpolated into the markup and the profile URL without
// escaping; callers must restrict usernames to an HTML- and URL-safe
// character set.
func (r *HTMLRenderer) Render(report leaderboard.Report) (string, error) {
	if err := leaderboard.Validate(report.Stats); err != nil {
		return "", err
	}

	lines := make([]string, 0, len(htmlHead)+8*len(report.Stats)+16)
	lines = append(lines, htmlHead...)

	lines = append(lines,
		fmt.Sprintf("<h1>LeetCode Statistics (Last %d Days)</h1>", report.WindowDays),
		"<table>",
		"    <tr>",
		"        <th>Username</th>",
		"        <th>Total Questions</th>",
		"        <th>Easy</th>",
		"        <th>Medium</th>",
		"        <th>Hard</th>",
		"    </tr>",
	)

	for _, stat := range leaderboard.Rank(report.Stats) {
		rowClass := ""
		if stat.Rank == leaderboard.RankGold {
			rowClass = ` class="first-place"`
		}

		medal := ""
		if glyph := stat.Medal(); glyph != "" {
			medal = fmt.Sprintf(` <span class="medal">%s</span>`, glyph)
		}

		lines = append(lines,
			fmt.Sprintf("    <tr%s>", rowClass),
			fmt.Sprintf(`        <td><a href="%s" target="_blank">%s</a>%s</td>`,
				fmt.Sprintf(profileURL, stat.Username), stat.Username, medal),
			fmt.Sprintf("        <td>%d</td>", stat.TotalQuestions),
			fmt.Sprintf("        <td>%d</td>", stat.EasyCount),
			fmt.Sprintf("        <td>%d</td>", stat.MediumCount),
			fmt.Sprintf("        <td>%d</td>", stat.HardCount),
			"    </tr>",
		)
	}

	lines = append(lines, "</table>")

	if report.CompletionMessage != "" {
		lines = append(lines, fmt.Sprintf("<div class='message'>%s</div>", report.CompletionMessage))
	}

	lines = append(lines, "</body>", "</html>")

	return strings.Join(lines, "\n"), nil
}

// WriteFile implements Renderer, persisting under a .html extension.
func (r *HTMLRenderer) WriteFile(ctx context.Context, baseFilename, content string) error {
	path := fsutil.EnsureExt(baseFilename, FormatHTML.Ext())
	return fsutil.WriteFile(ctx, path, []byte(content), 0)
}
