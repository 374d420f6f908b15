package pretty

import (
	"fmt"
)

const (
	wordUser  = "user"
	wordUsers = "users"
)

// FormatRunSummary formats a one-line summary of a completed report run.
// Example: "Ranked 3 users over 7 days (html) -> report.html".
func (s *Styles) FormatRunSummary(users, windowDays int, format, dest string) string {
	userWord := wordUsers
	if users == 1 {
		userWord = wordUser
	}

	msg := s.Success.Render(fmt.Sprintf("Ranked %d %s", users, userWord)) +
		s.Dim.Render(fmt.Sprintf(" over %d days (%s)", windowDays, format))

	if dest != "" {
		msg += " -> " + s.Bold.Render(dest)
	}

	return msg + "\n"
}
