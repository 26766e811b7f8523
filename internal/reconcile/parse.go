package reconcile

import (
	"regexp"
	"strings"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// ParsedProblem is the problem a commit message reports as solved.
type ParsedProblem struct {
	Title      string
	Difficulty Difficulty
}

var solvedMessage = regexp.MustCompile(`(?i)^leetcode:\s+solved\s+(.*)\s+\((easy|medium|hard)\)$`)

// Parse matches messages shaped like "leetcode: solved <title> (<difficulty>)".
// Anything else, including an empty title, yields false.
func Parse(message string) (ParsedProblem, bool) {
	match := solvedMessage.FindStringSubmatch(strings.TrimSpace(message))
	if match == nil {
		return ParsedProblem{}, false
	}
	title := strings.TrimSpace(match[1])
	if title == "" {
		return ParsedProblem{}, false
	}
	return ParsedProblem{
		Title:      title,
		Difficulty: normalizeDifficulty(match[2]),
	}, true
}

func normalizeDifficulty(s string) Difficulty {
	s = strings.ToLower(s)
	return Difficulty(strings.ToUpper(s[:1]) + s[1:])
}
