package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fitJacketAPI/internal/types/meal"
	"fitJacketAPI/middleware"
	"fitJacketAPI/services"
)

type MealHandler struct {
	mealService *services.MealService
}

func NewMealHandler(mealService *services.MealService) *MealHandler {
	return &MealHandler{
		mealService: mealService,
	}
}

func (h *MealHandler) AddMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req meal.CreateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Calories < 0 {
		respondWithError(w, http.StatusBadRequest, "calories must not be negative")
		return
	}

	m, err := h.mealService.AddMeal(ctx, clerkID, &req)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, m)
}

func (h *MealHandler) GetMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	meals, err := h.mealService.ListMeals(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, meals)
}

func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	mealID := r.URL.Query().Get("id")
	if mealID == "" {
		respondWithError(w, http.StatusBadRequest, "Search query parameter 'id' is required")
		return
	}

	if err := h.mealService.DeleteMeal(ctx, clerkID, mealID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Meal deleted successfully"})
}
