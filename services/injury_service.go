package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitJacketAPI/internal/types/injury"
)

type InjuryService struct {
	db *pgxpool.Pool
}

func NewInjuryService(db *pgxpool.Pool) *InjuryService {
	return &InjuryService{db: db}
}

func (s *InjuryService) AddInjury(ctx context.Context, clerkID string, req *injury.CreateInjuryRequest) (*injury.Injury, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, err
	}

	severity := req.Severity
	if severity == "" {
		severity = injury.SeverityMild
	}

	i := &injury.Injury{
		ID:       uuid.New(),
		UserID:   userID,
		BodyPart: req.BodyPart,
		Severity: severity,
		Notes:    req.Notes,
		Date:     date,
	}

	query := `
	INSERT INTO injuries (id, user_id, body_part, severity, notes, date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	RETURNING created_at
	`

	err = s.db.QueryRow(ctx, query, i.ID, i.UserID, i.BodyPart, i.Severity, i.Notes, i.Date).Scan(&i.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add injury: %w", err)
	}

	return i, nil
}

func (s *InjuryService) ListInjuries(ctx context.Context, clerkID string) ([]*injury.Injury, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, body_part, severity, notes, date, created_at
	FROM injuries
	WHERE user_id = $1
	ORDER BY date DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch injuries: %w", err)
	}
	defer rows.Close()

	injuries := []*injury.Injury{}
	for rows.Next() {
		i := &injury.Injury{}
		if err := rows.Scan(&i.ID, &i.UserID, &i.BodyPart, &i.Severity, &i.Notes, &i.Date, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan injury: %w", err)
		}
		injuries = append(injuries, i)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating injuries: %w", err)
	}

	return injuries, nil
}

func (s *InjuryService) DeleteInjury(ctx context.Context, clerkID string, injuryID string) error {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(injuryID)
	if err != nil {
		return fmt.Errorf("invalid injury id")
	}

	result, err := s.db.Exec(ctx, `DELETE FROM injuries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete injury: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("injury not found")
	}

	return nil
}

func (s *InjuryService) userIDByClerkID(ctx context.Context, clerkID string) (uuid.UUID, error) {
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
