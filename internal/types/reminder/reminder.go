package reminder

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	RemindAt  time.Time `json:"remind_at" db:"remind_at"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateReminderRequest struct {
	Text     string    `json:"text"`
	RemindAt time.Time `json:"remind_at"`
}

// NextReminderResponse pairs the next upcoming reminder with an explicit
// imminence flag, so callers don't need their own time math.
type NextReminderResponse struct {
	Reminder *Reminder `json:"reminder"`
	Imminent bool      `json:"imminent"`
}
