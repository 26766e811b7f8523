package entity

import (
	"time"

	"github.com/google/uuid"
)

const PlatformLeetCode = "LeetCode"

type User struct {
	ID             uuid.UUID
	Name           string
	PasswordHash   string
	GithubUsername string
	// SHA of the most recently imported commit; empty before the first sync
	LastSyncedSHA string
}

type ProblemLog struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	Platform   string    `json:"platform"`
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	Topic      string    `json:"topic"`
	Notes      string    `json:"notes"`
	SolvedAt   time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// TitleDate is a stored (title, solved_at) pair used for duplicate detection.
type TitleDate struct {
	Title    string
	SolvedAt time.Time
}

type LogStats struct {
	Total      int            `json:"total"`
	Difficulty map[string]int `json:"difficulty"`
	Topics     map[string]int `json:"topics"`
	Platforms  map[string]int `json:"platforms"`
}
