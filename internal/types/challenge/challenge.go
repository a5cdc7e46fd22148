package challenge

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Challenge struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Difficulty  Difficulty `json:"difficulty" db:"difficulty"`
	PointValue  int        `json:"point_value" db:"point_value"`
	StartDate   time.Time  `json:"start_date" db:"start_date"`
	EndDate     time.Time  `json:"end_date" db:"end_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// Participation joins a user to a challenge. CompletedAt and PointsAwarded
// are set exactly once: the challenge's point value is snapshotted at
// completion time and never re-derived.
type Participation struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	ChallengeID   uuid.UUID  `json:"challenge_id" db:"challenge_id"`
	JoinedAt      time.Time  `json:"joined_at" db:"joined_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	PointsAwarded *int       `json:"points_awarded,omitempty" db:"points_awarded"`
}

// ParticipationWithChallenge is the read shape for listings.
type ParticipationWithChallenge struct {
	Participation
	ChallengeTitle string     `json:"challenge_title"`
	Difficulty     Difficulty `json:"difficulty"`
	PointValue     int        `json:"point_value"`
}
