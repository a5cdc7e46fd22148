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

	"fitJacketAPI/internal/progress"
	"fitJacketAPI/internal/types/challenge"
	"fitJacketAPI/internal/types/dashboard"
)

// ProgressService is the scoring core: it merges profile points with awarded
// challenge points, advances the goal ladder, derives milestones, ranks the
// leaderboard and builds the chart series. Totals are recomputed on every
// read so they can never go stale.
type ProgressService struct {
	db *pgxpool.Pool
}

func NewProgressService(db *pgxpool.Pool) *ProgressService {
	return &ProgressService{db: db}
}

// TotalPoints recomputes profile points + completed challenge awards. Users
// with no completed participations simply contribute 0 from that side.
func (s *ProgressService) TotalPoints(ctx context.Context, userID uuid.UUID) (int, error) {
	var points, nextGoal int
	err := s.db.QueryRow(ctx, `SELECT points, next_goal FROM profiles WHERE user_id = $1`, userID).Scan(&points, &nextGoal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProfileNotFound
		}
		return 0, fmt.Errorf("failed to get profile points: %w", err)
	}

	challengePoints, err := s.challengePoints(ctx, userID)
	if err != nil {
		return 0, err
	}

	return points + challengePoints, nil
}

// AwardWorkoutPoints adds the fixed per-workout award as a single atomic
// increment. It must be called exactly once per created log, never on edits.
func (s *ProgressService) AwardWorkoutPoints(ctx context.Context, userID uuid.UUID) error {
	result, err := s.db.Exec(ctx,
		`UPDATE profiles SET points = points + $2, updated_at = NOW() WHERE user_id = $1`,
		userID, progress.WorkoutAward)
	if err != nil {
		return fmt.Errorf("failed to award workout points: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// CheckGoal compares the current total against the goal ladder and, when
// crossed, raises next_goal past the total in one conditional update. The
// WHERE clause doubles as a compare-and-set: if a concurrent request already
// bumped the goal, zero rows match and no duplicate celebration is emitted.
func (s *ProgressService) CheckGoal(ctx context.Context, userID uuid.UUID) ([]progress.GoalCrossing, int, error) {
	var points, nextGoal int
	err := s.db.QueryRow(ctx, `SELECT points, next_goal FROM profiles WHERE user_id = $1`, userID).Scan(&points, &nextGoal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrProfileNotFound
		}
		return nil, 0, fmt.Errorf("failed to get profile: %w", err)
	}

	challengePoints, err := s.challengePoints(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	total := points + challengePoints

	crossings, newGoal := progress.AdvanceGoal(total, nextGoal)
	if len(crossings) == 0 {
		return nil, nextGoal, nil
	}

	result, err := s.db.Exec(ctx,
		`UPDATE profiles SET next_goal = $3, updated_at = NOW() WHERE user_id = $1 AND next_goal = $2`,
		userID, nextGoal, newGoal)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to advance goal: %w", err)
	}
	if result.RowsAffected() == 0 {
		// Lost the race; the winner already celebrated these crossings.
		log.Printf("CheckGoal: concurrent goal bump for user %s, skipping", userID)
		return nil, newGoal, nil
	}

	return crossings, newGoal, nil
}

// MonthlyWorkoutLadder counts this calendar month's workout logs and runs
// them through the rolling 15-per-cycle ladder.
func (s *ProgressService) MonthlyWorkoutLadder(ctx context.Context, userID uuid.UUID) (progress.MonthlyLadder, error) {
	query := `
	SELECT COUNT(*)
	FROM workout_logs
	WHERE user_id = $1
		AND date >= DATE_TRUNC('month', CURRENT_DATE)
		AND date <= CURRENT_DATE
	`

	var done int
	if err := s.db.QueryRow(ctx, query, userID).Scan(&done); err != nil {
		return progress.MonthlyLadder{}, fmt.Errorf("failed to count monthly workouts: %w", err)
	}

	return progress.ComputeMonthlyLadder(done), nil
}

// WorkoutSeries returns windowDays consecutive daily buckets ending today,
// zero-filled where nothing was logged.
func (s *ProgressService) WorkoutSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]progress.WorkoutDay, error) {
	query := `
	SELECT date, COUNT(*), COALESCE(SUM(duration), 0)
	FROM workout_logs
	WHERE user_id = $1
		AND date >= CURRENT_DATE - ($2 - 1) * INTERVAL '1 day'
		AND date <= CURRENT_DATE
	GROUP BY date
	`

	rows, err := s.db.Query(ctx, query, userID, windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workout series: %w", err)
	}
	defer rows.Close()

	byDate := make(map[string]progress.WorkoutDay)
	for rows.Next() {
		var date time.Time
		var count, duration int
		if err := rows.Scan(&date, &count, &duration); err != nil {
			return nil, fmt.Errorf("failed to scan workout bucket: %w", err)
		}
		key := date.Format("2006-01-02")
		byDate[key] = progress.WorkoutDay{Date: key, Count: count, Duration: duration}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workout buckets: %w", err)
	}

	return progress.FillWorkoutSeries(byDate, time.Now(), windowDays), nil
}

// MealSeries is the calories-per-day counterpart of WorkoutSeries.
func (s *ProgressService) MealSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]progress.MealDay, error) {
	query := `
	SELECT date, COALESCE(SUM(calories), 0)
	FROM meals
	WHERE user_id = $1
		AND date >= CURRENT_DATE - ($2 - 1) * INTERVAL '1 day'
		AND date <= CURRENT_DATE
	GROUP BY date
	`

	rows, err := s.db.Query(ctx, query, userID, windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal series: %w", err)
	}
	defer rows.Close()

	byDate := make(map[string]progress.MealDay)
	for rows.Next() {
		var date time.Time
		var calories int
		if err := rows.Scan(&date, &calories); err != nil {
			return nil, fmt.Errorf("failed to scan meal bucket: %w", err)
		}
		key := date.Format("2006-01-02")
		byDate[key] = progress.MealDay{Date: key, Calories: calories}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meal buckets: %w", err)
	}

	return progress.FillMealSeries(byDate, time.Now(), windowDays), nil
}

// GetDashboard assembles the full main-page payload in one request scope.
func (s *ProgressService) GetDashboard(ctx context.Context, clerkID string) (*dashboard.Dashboard, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	total, err := s.TotalPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	crossings, nextGoal, err := s.CheckGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	ladder, err := s.MonthlyWorkoutLadder(ctx, userID)
	if err != nil {
		return nil, err
	}

	ongoing, err := s.ongoingParticipations(ctx, userID)
	if err != nil {
		return nil, err
	}

	workoutSeries, err := s.WorkoutSeries(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	mealSeries, err := s.MealSeries(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	if crossings == nil {
		crossings = []progress.GoalCrossing{}
	}

	return &dashboard.Dashboard{
		TotalPoints:         total,
		NextGoal:            nextGoal,
		ReachedGoals:        crossings,
		Milestones:          progress.Milestones(total),
		AchievementProgress: progress.AchievementProgress(total, nextGoal),
		MonthlyLadder:       ladder,
		OngoingChallenges:   ongoing,
		WorkoutSeries:       workoutSeries,
		MealSeries:          mealSeries,
	}, nil
}

// GetAchievementSummary backs the standalone achievements page. Unlike the
// dashboard it does not advance the ladder, it only reads.
func (s *ProgressService) GetAchievementSummary(ctx context.Context, clerkID string) (*dashboard.AchievementSummary, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	var points, nextGoal int
	err = s.db.QueryRow(ctx, `SELECT points, next_goal FROM profiles WHERE user_id = $1`, userID).Scan(&points, &nextGoal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	challengePoints, err := s.challengePoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := points + challengePoints

	return &dashboard.AchievementSummary{
		TotalPoints: total,
		NextGoal:    nextGoal,
		Milestones:  progress.Milestones(total),
		Progress:    progress.AchievementProgress(total, nextGoal),
	}, nil
}

// GetLeaderboard merges workout points and challenge points across every
// user with a profile, then ranks in memory. Users with only one source of
// points still appear; users with zero points land at the bottom.
func (s *ProgressService) GetLeaderboard(ctx context.Context, clerkID string) (*dashboard.Leaderboard, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT
		u.id,
		u.username,
		u.image_url,
		COALESCE(p.points, 0) + COALESCE(cp.total, 0) AS total
	FROM users u
	LEFT JOIN profiles p ON p.user_id = u.id
	LEFT JOIN (
		SELECT user_id, SUM(points_awarded) AS total
		FROM participations
		WHERE completed_at IS NOT NULL
		GROUP BY user_id
	) cp ON cp.user_id = u.id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*progress.LeaderboardRow
	for rows.Next() {
		row := &progress.LeaderboardRow{}
		var imageURL *string
		if err := rows.Scan(&row.UserID, &row.Username, &imageURL, &row.Points); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		if imageURL != nil {
			row.ImageURL = *imageURL
		}
		entries = append(entries, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard rows: %w", err)
	}

	entries = progress.RankRows(entries)

	var position *progress.LeaderboardRow
	for _, entry := range entries {
		if entry.UserID == userID.String() {
			position = entry
			break
		}
	}

	return &dashboard.Leaderboard{
		Entries:      entries,
		UserPosition: position,
		TotalUsers:   len(entries),
	}, nil
}

func (s *ProgressService) challengePoints(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	query := `
	SELECT COALESCE(SUM(points_awarded), 0)
	FROM participations
	WHERE user_id = $1 AND completed_at IS NOT NULL
	`
	if err := s.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum challenge points: %w", err)
	}
	return total, nil
}

func (s *ProgressService) ongoingParticipations(ctx context.Context, userID uuid.UUID) ([]*challenge.ParticipationWithChallenge, error) {
	query := `
	SELECT p.id, p.user_id, p.challenge_id, p.joined_at, c.title, c.difficulty, c.point_value
	FROM participations p
	JOIN challenges c ON c.id = p.challenge_id
	WHERE p.user_id = $1 AND p.completed_at IS NULL
	ORDER BY p.joined_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ongoing challenges: %w", err)
	}
	defer rows.Close()

	ongoing := []*challenge.ParticipationWithChallenge{}
	for rows.Next() {
		p := &challenge.ParticipationWithChallenge{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.ChallengeID, &p.JoinedAt, &p.ChallengeTitle, &p.Difficulty, &p.PointValue); err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		ongoing = append(ongoing, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participations: %w", err)
	}

	return ongoing, nil
}

func (s *ProgressService) userIDByClerkID(ctx context.Context, clerkID string) (uuid.UUID, error) {
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
