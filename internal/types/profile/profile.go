package profile

import (
	"time"

	"github.com/google/uuid"

	"fitJacketAPI/internal/types/user"
)

// Profile carries the per-user gamification state. Points only ever grow and
// only through the progress service; NextGoal is a positive multiple of 100.
type Profile struct {
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Level     user.Level `json:"level" db:"level"`
	Points    int        `json:"points" db:"points"`
	NextGoal  int        `json:"next_goal" db:"next_goal"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
