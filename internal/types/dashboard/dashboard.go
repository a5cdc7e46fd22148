package dashboard

import (
	"fitJacketAPI/internal/progress"
	"fitJacketAPI/internal/types/challenge"
)

// Dashboard is the full pre-computed payload for the main page: plain
// numbers and lists only, no formatting.
type Dashboard struct {
	TotalPoints         int                                     `json:"total_points"`
	NextGoal            int                                     `json:"next_goal"`
	ReachedGoals        []progress.GoalCrossing                 `json:"reached_goals"`
	Milestones          []progress.Milestone                    `json:"milestones"`
	AchievementProgress int                                     `json:"achievement_progress"`
	MonthlyLadder       progress.MonthlyLadder                  `json:"monthly_ladder"`
	OngoingChallenges   []*challenge.ParticipationWithChallenge `json:"ongoing_challenges"`
	WorkoutSeries       []progress.WorkoutDay                   `json:"workout_series"`
	MealSeries          []progress.MealDay                      `json:"meal_series"`
}

// AchievementSummary backs the standalone achievements page.
type AchievementSummary struct {
	TotalPoints int                  `json:"total_points"`
	NextGoal    int                  `json:"next_goal"`
	Milestones  []progress.Milestone `json:"milestones"`
	Progress    int                  `json:"progress"`
}

// Leaderboard wraps the ranked rows with the caller's own position, if any.
type Leaderboard struct {
	Entries      []*progress.LeaderboardRow `json:"entries"`
	UserPosition *progress.LeaderboardRow   `json:"user_position"`
	TotalUsers   int                        `json:"total_users"`
}
