package meal

import (
	"time"

	"github.com/google/uuid"
)

type MealType string

const (
	TypeBreakfast MealType = "breakfast"
	TypeLunch     MealType = "lunch"
	TypeDinner    MealType = "dinner"
	TypeSnack     MealType = "snack"
)

// Meal is a read-side record: it feeds the calorie series and is never
// scored.
type Meal struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	MealType  MealType  `json:"meal_type" db:"meal_type"`
	Calories  int       `json:"calories" db:"calories"`
	Date      time.Time `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateMealRequest struct {
	Name     string   `json:"name"`
	MealType MealType `json:"meal_type"`
	Calories int      `json:"calories"`
	Date     string   `json:"date"`
}
