package recommendation

import "fitJacketAPI/internal/types/user"

// PlanRequest carries everything a plan provider needs, passed explicitly
// per call; there are no module-level defaults.
type PlanRequest struct {
	Level          user.Level `json:"level"`
	RecentWorkouts []string   `json:"recent_workouts"`
	Equipment      []string   `json:"equipment"`
	Duration       int        `json:"duration"`
	WorkoutType    string     `json:"workout_type"`
	FocusArea      string     `json:"focus_area"`
	Intensity      string     `json:"intensity"`
}

type Exercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Notes string `json:"notes"`
}

type WorkoutPlan struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	Tips        []string   `json:"tips"`
	Fallback    bool       `json:"fallback,omitempty"`
}
