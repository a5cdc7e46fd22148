package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitJacketAPI/internal/types/recommendation"
	"fitJacketAPI/internal/types/user"
)

type fakeProvider struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeProvider) GeneratePlanText(_ context.Context, _ *recommendation.PlanRequest) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", fmt.Errorf("no scripted response")
}

func fastService(p PlanProvider) *RecommendationService {
	s := NewRecommendationService(p)
	s.backoff = time.Millisecond
	return s
}

func TestGenerateWorkoutPlanSuccess(t *testing.T) {
	provider := &fakeProvider{
		responses: []string{`{"title":"Leg Day","description":"legs","exercises":[{"name":"Squats","sets":4,"reps":"8","notes":"slow"}],"tips":["warm up"]}`},
	}

	plan, err := fastService(provider).GenerateWorkoutPlan(context.Background(), &recommendation.PlanRequest{Level: user.LevelAthlete})
	require.NoError(t, err)

	assert.Equal(t, "Leg Day", plan.Title)
	assert.False(t, plan.Fallback)
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateWorkoutPlanRetriesThenSucceeds(t *testing.T) {
	provider := &fakeProvider{
		errs:      []error{fmt.Errorf("timeout"), fmt.Errorf("timeout")},
		responses: []string{"", "", `Sure! Here is your plan: {"title":"Recovery Flow","exercises":[],"tips":[]}`},
	}

	plan, err := fastService(provider).GenerateWorkoutPlan(context.Background(), &recommendation.PlanRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Recovery Flow", plan.Title)
	assert.False(t, plan.Fallback)
	assert.Equal(t, 3, provider.calls)
}

func TestGenerateWorkoutPlanFallsBackAfterExhaustedRetries(t *testing.T) {
	provider := &fakeProvider{
		errs: []error{fmt.Errorf("down"), fmt.Errorf("down"), fmt.Errorf("down")},
	}

	plan, err := fastService(provider).GenerateWorkoutPlan(context.Background(), &recommendation.PlanRequest{WorkoutType: "cardio", FocusArea: "full_body"})
	require.NoError(t, err)

	// degraded, never a hard failure
	assert.True(t, plan.Fallback)
	assert.NotEmpty(t, plan.Exercises)
	assert.Equal(t, 3, provider.calls)
}

func TestGenerateWorkoutPlanFallsBackOnGarbageOutput(t *testing.T) {
	provider := &fakeProvider{
		responses: []string{"sorry, I cannot help", "still nothing", "nope"},
	}

	plan, err := fastService(provider).GenerateWorkoutPlan(context.Background(), &recommendation.PlanRequest{})
	require.NoError(t, err)
	assert.True(t, plan.Fallback)
}

func TestGenerateWorkoutPlanNilProvider(t *testing.T) {
	plan, err := NewRecommendationService(nil).GenerateWorkoutPlan(context.Background(), &recommendation.PlanRequest{})
	require.NoError(t, err)
	assert.True(t, plan.Fallback)
}

func TestExtractPlanJSONFromSurroundingText(t *testing.T) {
	text := "Here you go:\n```json\n{\"title\":\"HIIT Blast\",\"exercises\":[{\"name\":\"Burpees\",\"sets\":3,\"reps\":\"15\"}]}\n```\nEnjoy!"

	plan, err := ExtractPlanJSON(text)
	require.NoError(t, err)
	assert.Equal(t, "HIIT Blast", plan.Title)
	require.Len(t, plan.Exercises, 1)
	assert.Equal(t, "Burpees", plan.Exercises[0].Name)
}

func TestExtractPlanJSONRejectsMissingTitle(t *testing.T) {
	_, err := ExtractPlanJSON(`{"exercises":[]}`)
	assert.Error(t, err)
}

func TestExtractPlanJSONRejectsNonJSON(t *testing.T) {
	_, err := ExtractPlanJSON("no structured data here")
	assert.Error(t, err)
}
