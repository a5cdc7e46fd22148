package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fitJacketAPI/internal/types/recommendation"
	"fitJacketAPI/internal/types/user"
	"fitJacketAPI/middleware"
	"fitJacketAPI/services"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
	userService           *services.UserService
	workoutService        *services.WorkoutService
}

func NewRecommendationHandler(
	recommendationService *services.RecommendationService,
	userService *services.UserService,
	workoutService *services.WorkoutService,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		userService:           userService,
		workoutService:        workoutService,
	}
}

// GenerateWorkoutPlan builds the provider request from the caller's level
// and recent history plus the preferences in the body. The provider gets a
// longer timeout than the CRUD handlers because of retries.
func (h *RecommendationHandler) GenerateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		Equipment   []string `json:"equipment"`
		Duration    int      `json:"duration"`
		WorkoutType string   `json:"workout_type"`
		FocusArea   string   `json:"focus_area"`
		Intensity   string   `json:"intensity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	level := user.LevelBeginner
	if profile, err := h.userService.GetProfile(ctx, clerkID); err == nil {
		level = profile.Level
	}

	recent, err := h.workoutService.RecentWorkoutSummaries(ctx, clerkID, 5)
	if err != nil {
		// History is flavor for the plan, not a requirement.
		log.Printf("GenerateWorkoutPlan Handler: failed to load recent workouts: %v", err)
		recent = nil
	}

	planReq := &recommendation.PlanRequest{
		Level:          level,
		RecentWorkouts: recent,
		Equipment:      req.Equipment,
		Duration:       req.Duration,
		WorkoutType:    req.WorkoutType,
		FocusArea:      req.FocusArea,
		Intensity:      req.Intensity,
	}

	plan, err := h.recommendationService.GenerateWorkoutPlan(ctx, planReq)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, plan)
}
