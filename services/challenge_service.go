package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitJacketAPI/internal/types/challenge"
)

type ChallengeService struct {
	db *pgxpool.Pool
}

func NewChallengeService(db *pgxpool.Pool) *ChallengeService {
	return &ChallengeService{db: db}
}

func (s *ChallengeService) ListChallenges(ctx context.Context) ([]*challenge.Challenge, error) {
	query := `
	SELECT id, title, description, difficulty, point_value, start_date, end_date, created_at
	FROM challenges
	ORDER BY point_value DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}
	defer rows.Close()

	challenges := []*challenge.Challenge{}
	for rows.Next() {
		c := &challenge.Challenge{}
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Difficulty, &c.PointValue, &c.StartDate, &c.EndDate, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating challenges: %w", err)
	}

	return challenges, nil
}

// JoinChallenge creates a participation. The (user, challenge) pair is
// unique; a second join is rejected, not duplicated.
func (s *ChallengeService) JoinChallenge(ctx context.Context, clerkID string, challengeID string) (*challenge.Participation, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	chID, err := uuid.Parse(challengeID)
	if err != nil {
		return nil, fmt.Errorf("invalid challenge id")
	}

	var exists bool
	err = s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM participations WHERE user_id = $1 AND challenge_id = $2)`,
		userID, chID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if exists {
		return nil, ErrAlreadyJoined
	}

	p := &challenge.Participation{
		ID:          uuid.New(),
		UserID:      userID,
		ChallengeID: chID,
	}

	query := `
	INSERT INTO participations (id, user_id, challenge_id, joined_at)
	VALUES ($1, $2, $3, NOW())
	RETURNING joined_at
	`

	if err := s.db.QueryRow(ctx, query, p.ID, p.UserID, p.ChallengeID).Scan(&p.JoinedAt); err != nil {
		return nil, fmt.Errorf("failed to join challenge: %w", err)
	}

	return p, nil
}

// CompleteChallenge marks a participation done and snapshots the
// challenge's point value into points_awarded in the same statement. The
// completed_at IS NULL guard makes completion terminal: a second attempt
// matches no rows and is answered with ErrAlreadyCompleted instead of a
// second award.
func (s *ChallengeService) CompleteChallenge(ctx context.Context, clerkID string, challengeID string) (*challenge.Participation, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	chID, err := uuid.Parse(challengeID)
	if err != nil {
		return nil, fmt.Errorf("invalid challenge id")
	}

	query := `
	UPDATE participations p
	SET completed_at = NOW(), points_awarded = c.point_value
	FROM challenges c
	WHERE p.challenge_id = c.id
		AND p.user_id = $1
		AND p.challenge_id = $2
		AND p.completed_at IS NULL
	RETURNING p.id, p.user_id, p.challenge_id, p.joined_at, p.completed_at, p.points_awarded
	`

	p := &challenge.Participation{}
	err = s.db.QueryRow(ctx, query, userID, chID).Scan(
		&p.ID, &p.UserID, &p.ChallengeID, &p.JoinedAt, &p.CompletedAt, &p.PointsAwarded,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either never joined or already completed; distinguish for the
			// caller.
			var completed bool
			checkErr := s.db.QueryRow(ctx,
				`SELECT completed_at IS NOT NULL FROM participations WHERE user_id = $1 AND challenge_id = $2`,
				userID, chID).Scan(&completed)
			if checkErr == nil && completed {
				return nil, ErrAlreadyCompleted
			}
			return nil, fmt.Errorf("participation not found")
		}
		return nil, fmt.Errorf("failed to complete challenge: %w", err)
	}

	return p, nil
}

func (s *ChallengeService) OngoingParticipations(ctx context.Context, clerkID string) ([]*challenge.ParticipationWithChallenge, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT p.id, p.user_id, p.challenge_id, p.joined_at, c.title, c.difficulty, c.point_value
	FROM participations p
	JOIN challenges c ON c.id = p.challenge_id
	WHERE p.user_id = $1 AND p.completed_at IS NULL
	ORDER BY p.joined_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participations: %w", err)
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

func (s *ChallengeService) userIDByClerkID(ctx context.Context, clerkID string) (uuid.UUID, error) {
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
