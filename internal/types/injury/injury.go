package injury

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type Injury struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	BodyPart  string    `json:"body_part" db:"body_part"`
	Severity  Severity  `json:"severity" db:"severity"`
	Notes     string    `json:"notes" db:"notes"`
	Date      time.Time `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateInjuryRequest struct {
	BodyPart string   `json:"body_part"`
	Severity Severity `json:"severity"`
	Notes    string   `json:"notes"`
	Date     string   `json:"date"`
}
