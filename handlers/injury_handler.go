package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fitJacketAPI/internal/types/injury"
	"fitJacketAPI/middleware"
	"fitJacketAPI/services"
)

type InjuryHandler struct {
	injuryService *services.InjuryService
}

func NewInjuryHandler(injuryService *services.InjuryService) *InjuryHandler {
	return &InjuryHandler{
		injuryService: injuryService,
	}
}

func (h *InjuryHandler) AddInjury(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req injury.CreateInjuryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.BodyPart == "" {
		respondWithError(w, http.StatusBadRequest, "body_part is required")
		return
	}

	inj, err := h.injuryService.AddInjury(ctx, clerkID, &req)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, inj)
}

func (h *InjuryHandler) GetInjuries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	injuries, err := h.injuryService.ListInjuries(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, injuries)
}

func (h *InjuryHandler) DeleteInjury(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	injuryID := r.URL.Query().Get("id")
	if injuryID == "" {
		respondWithError(w, http.StatusBadRequest, "Search query parameter 'id' is required")
		return
	}

	if err := h.injuryService.DeleteInjury(ctx, clerkID, injuryID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Injury deleted successfully"})
}
