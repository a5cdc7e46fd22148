package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitJacketAPI/internal/types/meal"
)

type MealService struct {
	db *pgxpool.Pool
}

func NewMealService(db *pgxpool.Pool) *MealService {
	return &MealService{db: db}
}

// AddMeal records a dated calorie entry. Meals feed the calorie series only;
// they never award points.
func (s *MealService) AddMeal(ctx context.Context, clerkID string, req *meal.CreateMealRequest) (*meal.Meal, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, err
	}

	m := &meal.Meal{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     req.Name,
		MealType: req.MealType,
		Calories: req.Calories,
		Date:     date,
	}

	query := `
	INSERT INTO meals (id, user_id, name, meal_type, calories, date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	RETURNING created_at
	`

	err = s.db.QueryRow(ctx, query, m.ID, m.UserID, m.Name, m.MealType, m.Calories, m.Date).Scan(&m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add meal: %w", err)
	}

	return m, nil
}

func (s *MealService) ListMeals(ctx context.Context, clerkID string) ([]*meal.Meal, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, name, meal_type, calories, date, created_at
	FROM meals
	WHERE user_id = $1
	ORDER BY date DESC, created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meals: %w", err)
	}
	defer rows.Close()

	meals := []*meal.Meal{}
	for rows.Next() {
		m := &meal.Meal{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.MealType, &m.Calories, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meals: %w", err)
	}

	return meals, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, clerkID string, mealID string) error {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(mealID)
	if err != nil {
		return fmt.Errorf("invalid meal id")
	}

	result, err := s.db.Exec(ctx, `DELETE FROM meals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("meal not found")
	}

	return nil
}

func (s *MealService) userIDByClerkID(ctx context.Context, clerkID string) (uuid.UUID, error) {
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
