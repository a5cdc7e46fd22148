package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitJacketAPI/internal/types/workout"
)

type WorkoutService struct {
	db       *pgxpool.Pool
	progress *ProgressService
}

func NewWorkoutService(db *pgxpool.Pool, progress *ProgressService) *WorkoutService {
	return &WorkoutService{db: db, progress: progress}
}

// CreateWorkoutLog inserts the log and awards the fixed workout points.
// Creation is the only scoring event; edits and deletions never touch
// points.
func (s *WorkoutService) CreateWorkoutLog(ctx context.Context, clerkID string, req *workout.CreateWorkoutLogRequest) (*workout.WorkoutLog, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, err
	}

	w := &workout.WorkoutLog{
		ID:           uuid.New(),
		UserID:       userID,
		WorkoutType:  req.WorkoutType,
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		Duration:     req.Duration,
		Notes:        req.Notes,
		Date:         date,
	}

	query := `
	INSERT INTO workout_logs (id, user_id, workout_type, exercise_name, sets, reps, weight, duration, notes, date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	RETURNING created_at
	`

	err = s.db.QueryRow(ctx, query,
		w.ID, w.UserID, w.WorkoutType, w.ExerciseName, w.Sets, w.Reps, w.Weight, w.Duration, w.Notes, w.Date,
	).Scan(&w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout log: %w", err)
	}

	if err := s.progress.AwardWorkoutPoints(ctx, userID); err != nil {
		// The log exists; a missed award is logged, not propagated as a
		// user-facing failure.
		log.Printf("CreateWorkoutLog: failed to award points to %s: %v", clerkID, err)
	}

	return w, nil
}

// LogGuidedWorkout records a catalogue workout as a cardio log, carrying
// over its title, duration and description.
func (s *WorkoutService) LogGuidedWorkout(ctx context.Context, clerkID string, req *workout.LogGuidedWorkoutRequest) (*workout.WorkoutLog, error) {
	guidedID, err := uuid.Parse(req.GuidedWorkoutID)
	if err != nil {
		return nil, fmt.Errorf("invalid guided workout id")
	}

	var guided workout.GuidedWorkout
	query := `
	SELECT id, title, level, description, video_url, duration_minutes, created_at
	FROM guided_workouts
	WHERE id = $1
	`
	err = s.db.QueryRow(ctx, query, guidedID).Scan(
		&guided.ID, &guided.Title, &guided.Level, &guided.Description, &guided.VideoURL, &guided.DurationMinutes, &guided.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("guided workout not found")
		}
		return nil, fmt.Errorf("failed to get guided workout: %w", err)
	}

	duration := guided.DurationMinutes
	return s.CreateWorkoutLog(ctx, clerkID, &workout.CreateWorkoutLogRequest{
		WorkoutType:  workout.TypeCardio,
		ExerciseName: guided.Title,
		Duration:     &duration,
		Notes:        guided.Description,
		Date:         req.Date,
	})
}

// ListWorkouts returns the user's history, most recent first.
func (s *WorkoutService) ListWorkouts(ctx context.Context, clerkID string) ([]*workout.WorkoutLog, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, workout_type, exercise_name, sets, reps, weight, duration, notes, date, created_at
	FROM workout_logs
	WHERE user_id = $1
	ORDER BY date DESC, created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workouts: %w", err)
	}
	defer rows.Close()

	workouts := []*workout.WorkoutLog{}
	for rows.Next() {
		w := &workout.WorkoutLog{}
		err := rows.Scan(&w.ID, &w.UserID, &w.WorkoutType, &w.ExerciseName, &w.Sets, &w.Reps, &w.Weight, &w.Duration, &w.Notes, &w.Date, &w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workouts: %w", err)
	}

	return workouts, nil
}

// DeleteWorkoutLog removes a log without touching points.
func (s *WorkoutService) DeleteWorkoutLog(ctx context.Context, clerkID string, logID string) error {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(logID)
	if err != nil {
		return fmt.Errorf("invalid workout log id")
	}

	result, err := s.db.Exec(ctx, `DELETE FROM workout_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete workout log: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("workout log not found")
	}

	return nil
}

// ListGuidedWorkouts returns the catalogue, optionally filtered by level.
func (s *WorkoutService) ListGuidedWorkouts(ctx context.Context, level string) ([]*workout.GuidedWorkout, error) {
	query := `
	SELECT id, title, level, description, video_url, duration_minutes, created_at
	FROM guided_workouts
	WHERE ($1 = '' OR level = $1)
	ORDER BY title
	`

	rows, err := s.db.Query(ctx, query, level)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guided workouts: %w", err)
	}
	defer rows.Close()

	guided := []*workout.GuidedWorkout{}
	for rows.Next() {
		g := &workout.GuidedWorkout{}
		err := rows.Scan(&g.ID, &g.Title, &g.Level, &g.Description, &g.VideoURL, &g.DurationMinutes, &g.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guided workout: %w", err)
		}
		guided = append(guided, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guided workouts: %w", err)
	}

	return guided, nil
}

// RecentWorkoutSummaries formats the user's latest logs as plain strings for
// the recommendation provider.
func (s *WorkoutService) RecentWorkoutSummaries(ctx context.Context, clerkID string, limit int) ([]string, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT exercise_name, workout_type, date
	FROM workout_logs
	WHERE user_id = $1
	ORDER BY date DESC, created_at DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent workouts: %w", err)
	}
	defer rows.Close()

	summaries := []string{}
	for rows.Next() {
		var name, workoutType string
		var date time.Time
		if err := rows.Scan(&name, &workoutType, &date); err != nil {
			return nil, fmt.Errorf("failed to scan recent workout: %w", err)
		}
		summaries = append(summaries, fmt.Sprintf("%s (%s) on %s", name, workoutType, date.Format("2006-01-02")))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent workouts: %w", err)
	}

	return summaries, nil
}

func (s *WorkoutService) userIDByClerkID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrUserNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return userID, nil
}

func parseDateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}
