// Package leaderboard defines the per-user statistics model and the ranking
// applied to it before rendering.
package leaderboard

import (
	"errors"
	"fmt"
	"sort"
)

// Medal ranks (zero-based). Ranks beyond bronze carry no medal.
const (
	RankGold = iota
	RankSilver
	RankBronze
)

// ErrInvalidInput indicates a malformed UserStat record.
var ErrInvalidInput = errors.New("invalid user stat")

// UserStat holds one user's solved-problem counts by difficulty over the
// reporting window. Counts are trusted as given: the renderer never checks
// that TotalQuestions equals the sum of the difficulty counts.
type UserStat struct {
	Username       string `json:"username" yaml:"username"`
	TotalQuestions int    `json:"total_questions" yaml:"total_questions"`
	EasyCount      int    `json:"easy_count" yaml:"easy_count"`
	MediumCount    int    `json:"medium_count" yaml:"medium_count"`
	HardCount      int    `json:"hard_count" yaml:"hard_count"`
}

// Report is the input to a renderer: the stats to rank, the trailing day
// window the stats cover, and an optional message appended after the table.
type Report struct {
	Stats             []UserStat
	WindowDays        int
	CompletionMessage string
}

// Validate checks that every record is UserStat-shaped. The only shape error
// is a missing username; numeric fields are display-only and accepted as-is.
func Validate(stats []UserStat) error {
	for i, s := range stats {
		if s.Username == "" {
			return fmt.Errorf("%w: record %d has an empty username", ErrInvalidInput, i)
		}
	}
	return nil
}

// RankedStat is a UserStat annotated with its zero-based leaderboard rank.
type RankedStat struct {
	UserStat

	Rank int
}

// Medal returns the medal glyph for the stat's rank, or "" for ranks
// beyond bronze.
func (r RankedStat) Medal() string {
	switch r.Rank {
	case RankGold:
		return "🥇"
	case RankSilver:
		return "🥈"
	case RankBronze:
		return "🥉"
	default:
		return ""
	}
}

// Rank orders stats by TotalQuestions descending and annotates each entry
// with its position. The sort is stable: entries with equal totals keep
// their original relative order. The input slice is not modified.
func Rank(stats []UserStat) []RankedStat {
	sorted := make([]UserStat, len(stats))
	copy(sorted, stats)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalQuestions > sorted[j].TotalQuestions
	})

	ranked := make([]RankedStat, len(sorted))
	for i, s := range sorted {
		ranked[i] = RankedStat{UserStat: s, Rank: i}
	}
	return ranked
}
