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

	"fitJacketAPI/internal/notification"
	"fitJacketAPI/internal/types/reminder"
)

const (
	// ImminenceWindow is how close a reminder must be for the "next
	// reminder" response to flag it.
	ImminenceWindow = 5 * time.Minute

	// UpcomingWindow bounds the imminent-reminders listing.
	UpcomingWindow = 10 * time.Minute
)

// PushSender delivers reminder pushes; nil disables them.
type PushSender interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]string) error
}

type ReminderService struct {
	db   *pgxpool.Pool
	push PushSender
}

func NewReminderService(db *pgxpool.Pool) *ReminderService {
	return &ReminderService{db: db}
}

func (s *ReminderService) SetPushProvider(push PushSender) {
	s.push = push
}

// IsImminent reports whether remindAt falls within the imminence window
// from now. The check is an explicit second step after fetching the next
// reminder, not a side effect of the fetch.
func IsImminent(remindAt, now time.Time) bool {
	diff := remindAt.Sub(now)
	return diff >= 0 && diff <= ImminenceWindow
}

func (s *ReminderService) AddReminder(ctx context.Context, clerkID string, req *reminder.CreateReminderRequest) (*reminder.Reminder, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	r := &reminder.Reminder{
		ID:       uuid.New(),
		UserID:   userID,
		Text:     req.Text,
		RemindAt: req.RemindAt,
	}

	query := `
	INSERT INTO reminders (id, user_id, text, remind_at, completed, created_at)
	VALUES ($1, $2, $3, $4, false, NOW())
	RETURNING created_at
	`

	err = s.db.QueryRow(ctx, query, r.ID, r.UserID, r.Text, r.RemindAt).Scan(&r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add reminder: %w", err)
	}

	return r, nil
}

// NextReminder fetches the next upcoming reminder and evaluates imminence
// separately. No reminder pending is a nil payload, not an error.
func (s *ReminderService) NextReminder(ctx context.Context, clerkID string) (*reminder.NextReminderResponse, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, text, remind_at, completed, created_at
	FROM reminders
	WHERE user_id = $1 AND completed = false AND remind_at >= NOW()
	ORDER BY remind_at
	LIMIT 1
	`

	r := &reminder.Reminder{}
	err = s.db.QueryRow(ctx, query, userID).Scan(&r.ID, &r.UserID, &r.Text, &r.RemindAt, &r.Completed, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &reminder.NextReminderResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get next reminder: %w", err)
	}

	return &reminder.NextReminderResponse{
		Reminder: r,
		Imminent: IsImminent(r.RemindAt, time.Now()),
	}, nil
}

// ImminentReminders lists incomplete reminders due within the next ten
// minutes and pushes a notification for each when a provider is wired.
func (s *ReminderService) ImminentReminders(ctx context.Context, clerkID string) ([]*reminder.Reminder, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, text, remind_at, completed, created_at
	FROM reminders
	WHERE user_id = $1
		AND completed = false
		AND remind_at > NOW()
		AND remind_at <= NOW() + $2::interval
	ORDER BY remind_at
	`

	rows, err := s.db.Query(ctx, query, userID, UpcomingWindow.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch imminent reminders: %w", err)
	}
	defer rows.Close()

	reminders, err := scanReminders(rows)
	if err != nil {
		return nil, err
	}

	for _, r := range reminders {
		s.notify(ctx, userID, r)
	}

	return reminders, nil
}

func (s *ReminderService) ListReminders(ctx context.Context, clerkID string) ([]*reminder.Reminder, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, text, remind_at, completed, created_at
	FROM reminders
	WHERE user_id = $1 AND completed = false
	ORDER BY remind_at
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (s *ReminderService) MarkComplete(ctx context.Context, clerkID string, reminderID string) error {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(reminderID)
	if err != nil {
		return fmt.Errorf("invalid reminder id")
	}

	result, err := s.db.Exec(ctx,
		`UPDATE reminders SET completed = true WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("reminder not found")
	}

	return nil
}

// RegisterDevice stores a push token for the user, replacing an existing
// registration of the same token.
func (s *ReminderService) RegisterDevice(ctx context.Context, clerkID string, token, platform string) error {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO user_devices (user_id, token, platform, created_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (token)
	DO UPDATE SET user_id = $1, platform = $3
	`

	if _, err := s.db.Exec(ctx, query, userID, token, platform); err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}

	return nil
}

func (s *ReminderService) notify(ctx context.Context, userID uuid.UUID, r *reminder.Reminder) {
	if s.push == nil {
		return
	}

	rows, err := s.db.Query(ctx, `SELECT token, platform FROM user_devices WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("reminder notify: failed to load devices for %s: %v", userID, err)
		return
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.Token, &t.Platform); err != nil {
			continue
		}
		tokens = append(tokens, t)
	}

	err = s.push.SendPush(ctx, tokens, "Upcoming reminder", r.Text, map[string]string{
		"reminder_id": r.ID.String(),
		"remind_at":   r.RemindAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("reminder notify: push failed for %s: %v", userID, err)
	}
}

func scanReminders(rows pgx.Rows) ([]*reminder.Reminder, error) {
	reminders := []*reminder.Reminder{}
	for rows.Next() {
		r := &reminder.Reminder{}
		if err := rows.Scan(&r.ID, &r.UserID, &r.Text, &r.RemindAt, &r.Completed, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}
	return reminders, nil
}

func (s *ReminderService) userIDByClerkID(ctx context.Context, clerkID string) (uuid.UUID, error) {
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
