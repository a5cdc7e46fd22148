package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fitJacketAPI/middleware"
	"fitJacketAPI/services"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
	}
}

func (h *ChallengeHandler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challenges, err := h.challengeService.ListChallenges(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, challenges)
}

func (h *ChallengeHandler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challengeID := r.URL.Query().Get("id")
	if challengeID == "" {
		respondWithError(w, http.StatusBadRequest, "Search query parameter 'id' is required")
		return
	}

	participation, err := h.challengeService.JoinChallenge(ctx, clerkID, challengeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyJoined):
			respondWithError(w, http.StatusConflict, "Challenge already joined")
		case errors.Is(err, services.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, participation)
}

// CompleteChallenge awards the challenge's point value exactly once; a
// repeat call gets a conflict, never a second award.
func (h *ChallengeHandler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challengeID := r.URL.Query().Get("id")
	if challengeID == "" {
		respondWithError(w, http.StatusBadRequest, "Search query parameter 'id' is required")
		return
	}

	participation, err := h.challengeService.CompleteChallenge(ctx, clerkID, challengeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyCompleted):
			respondWithError(w, http.StatusConflict, "Challenge already completed")
		case errors.Is(err, services.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, participation)
}

func (h *ChallengeHandler) GetOngoingChallenges(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	ongoing, err := h.challengeService.OngoingParticipations(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ongoing)
}
