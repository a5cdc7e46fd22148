package workout

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutType string

const (
	TypeStrength    WorkoutType = "strength"
	TypeCardio      WorkoutType = "cardio"
	TypeFlexibility WorkoutType = "flexibility"
	TypeBalance     WorkoutType = "balance"
)

type WorkoutLog struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	UserID       uuid.UUID   `json:"user_id" db:"user_id"`
	WorkoutType  WorkoutType `json:"workout_type" db:"workout_type"`
	ExerciseName string      `json:"exercise_name" db:"exercise_name"`
	Sets         *int        `json:"sets,omitempty" db:"sets"`
	Reps         *int        `json:"reps,omitempty" db:"reps"`
	Weight       *float64    `json:"weight,omitempty" db:"weight"`
	Duration     *int        `json:"duration,omitempty" db:"duration"`
	Notes        string      `json:"notes" db:"notes"`
	Date         time.Time   `json:"date" db:"date"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}

type GuidedWorkout struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Level           string    `json:"level" db:"level"`
	Description     string    `json:"description" db:"description"`
	VideoURL        string    `json:"video_url" db:"video_url"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type CreateWorkoutLogRequest struct {
	WorkoutType  WorkoutType `json:"workout_type"`
	ExerciseName string      `json:"exercise_name"`
	Sets         *int        `json:"sets"`
	Reps         *int        `json:"reps"`
	Weight       *float64    `json:"weight"`
	Duration     *int        `json:"duration"`
	Notes        string      `json:"notes"`
	Date         string      `json:"date"`
}

type LogGuidedWorkoutRequest struct {
	GuidedWorkoutID string `json:"guided_workout_id"`
	Date            string `json:"date"`
}
