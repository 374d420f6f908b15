// Package render turns ranked leaderboard statistics into complete report
// documents, in plain text or HTML, and persists them with the extension
// matching the format.
package render

import (
	"context"

	"github.com/yaklabco/leetboard/pkg/leaderboard"
)

// Renderer formats a leaderboard report as a self-contained document string.
// Renderers are stateless and only handle presentation logic; a single
// instance may be shared by concurrent callers.
type Renderer interface {
	// Render returns the formatted report. It fails only when a stat
	// record is malformed; an empty stats list renders a report with a
	// header and no rows.
	Render(report leaderboard.Report) (string, error)

	// WriteFile persists content under baseFilename, appending the
	// renderer's canonical extension when it is absent. Any existing
	// file is overwritten in a single whole-file write.
	WriteFile(ctx context.Context, baseFilename, content string) error
}

// Compile-time interface checks.
var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*HTMLRenderer)(nil)
)

// New returns the renderer for the given format. The value is normalized
// the same way ParseFormat normalizes a key, so unrecognized formats fall
// back to the text renderer and case does not matter.
func New(format Format) Renderer {
	if ParseFormat(format.String()) == FormatHTML {
		return &HTMLRenderer{}
	}
	return &TextRenderer{}
}
