package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"fitJacketAPI/internal/types/recommendation"
)

// PlanProvider is the generative collaborator. It returns raw model text;
// this service owns parsing, retries and the fallback.
type PlanProvider interface {
	GeneratePlanText(ctx context.Context, req *recommendation.PlanRequest) (string, error)
}

type RecommendationService struct {
	provider    PlanProvider
	maxAttempts uint64
	backoff     time.Duration
}

func NewRecommendationService(provider PlanProvider) *RecommendationService {
	return &RecommendationService{
		provider:    provider,
		maxAttempts: 3,
		backoff:     500 * time.Millisecond,
	}
}

// GenerateWorkoutPlan asks the provider for a plan, retrying a bounded
// number of times on errors or unparseable output. When every attempt
// fails it degrades to a static default plan instead of surfacing an
// error; the caller always gets something usable.
func (s *RecommendationService) GenerateWorkoutPlan(ctx context.Context, req *recommendation.PlanRequest) (*recommendation.WorkoutPlan, error) {
	if s.provider == nil {
		return DefaultPlan(req), nil
	}

	var plan *recommendation.WorkoutPlan
	backoff := retry.WithMaxRetries(s.maxAttempts-1, retry.NewConstant(s.backoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		text, err := s.provider.GeneratePlanText(ctx, req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("provider call failed: %w", err))
		}

		parsed, err := ExtractPlanJSON(text)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("unparseable provider output: %w", err))
		}

		plan = parsed
		return nil
	})
	if err != nil {
		log.Printf("GenerateWorkoutPlan: all attempts failed, using fallback: %v", err)
		return DefaultPlan(req), nil
	}

	return plan, nil
}

var jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractPlanJSON pulls a workout plan out of loosely formatted model text:
// either the whole payload is JSON, or the first {...} block found in it is.
func ExtractPlanJSON(text string) (*recommendation.WorkoutPlan, error) {
	plan := &recommendation.WorkoutPlan{}
	if err := json.Unmarshal([]byte(text), plan); err == nil && plan.Title != "" {
		return plan, nil
	}

	block := jsonBlockRe.FindString(text)
	if block == "" {
		return nil, fmt.Errorf("no JSON object in provider output")
	}

	plan = &recommendation.WorkoutPlan{}
	if err := json.Unmarshal([]byte(block), plan); err != nil {
		return nil, fmt.Errorf("invalid plan JSON: %w", err)
	}
	if plan.Title == "" {
		return nil, fmt.Errorf("plan JSON missing title")
	}
	return plan, nil
}

// DefaultPlan is the static fallback used when the provider is down or
// keeps returning garbage.
func DefaultPlan(req *recommendation.PlanRequest) *recommendation.WorkoutPlan {
	workoutType := req.WorkoutType
	if workoutType == "" {
		workoutType = "strength"
	}
	focus := strings.ReplaceAll(req.FocusArea, "_", " ")
	if focus == "" {
		focus = "full body"
	}

	title := strings.ToUpper(workoutType[:1]) + workoutType[1:]
	return &recommendation.WorkoutPlan{
		Title:       fmt.Sprintf("%s %s workout", title, focus),
		Description: fmt.Sprintf("A %s workout focusing on %s.", workoutType, focus),
		Exercises: []recommendation.Exercise{
			{Name: "Push-ups", Sets: 3, Reps: "10-12", Notes: "Keep your core tight"},
			{Name: "Squats", Sets: 3, Reps: "12-15", Notes: "Keep your back straight"},
			{Name: "Plank", Sets: 3, Reps: "30 seconds", Notes: "Straight line from head to heels"},
		},
		Tips:     []string{"Focus on proper form", "Stay hydrated"},
		Fallback: true,
	}
}
