package recipetext

import (
	"regexp"
	"strconv"

	"github.com/hammamikhairi/rasoi/internal/domain"
)

// durationPattern finds "<n> minutes" in either language, e.g.
// "Simmer for 10 minutes", "5 min", "10 मिनट". Matching is local to a
// single step line; durations are never inferred across lines.
var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|मिनट)`)

// BuildSteps turns raw instruction lines (already stripped of their
// numeric prefix) into the ordered step list for one language variant.
func BuildSteps(lines []string) []domain.Step {
	if len(lines) == 0 {
		return nil
	}
	steps := make([]domain.Step, 0, len(lines))
	for i, line := range lines {
		steps = append(steps, domain.Step{
			Index:           i,
			Text:            line,
			DurationMinutes: stepDuration(line),
		})
	}
	return steps
}

// stepDuration returns the first embedded duration in minutes, or 0
// when the line carries no duration token.
func stepDuration(line string) int {
	m := durationPattern.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
