package progress

// Scoring rules for the achievement system. Workout points are awarded once
// at log creation; challenge points are snapshotted at completion and the
// total is always recomputed from both sources, never cached.
const (
	WorkoutAward    = 5
	GoalStep        = 100
	MilestoneStep   = 100
	MonthlyBaseGoal = 15
)

type RankSymbol string

const (
	SymbolBronze   RankSymbol = "bronze"
	SymbolSilver   RankSymbol = "silver"
	SymbolGold     RankSymbol = "gold"
	SymbolTrophy   RankSymbol = "trophy"
	SymbolStar     RankSymbol = "star"
	SymbolOverflow RankSymbol = "trident"
)

type Milestone struct {
	Threshold int        `json:"threshold"`
	Symbol    RankSymbol `json:"symbol"`
}

// GoalCrossing records a single crossed achievement goal, carrying the total
// that triggered it.
type GoalCrossing struct {
	ReachedGoal int `json:"reached_goal"`
	TotalPoints int `json:"total_points"`
}

// SymbolForRank maps milestone rank 1..5 to its symbol; everything above
// shares the overflow symbol.
func SymbolForRank(rank int) RankSymbol {
	switch rank {
	case 1:
		return SymbolBronze
	case 2:
		return SymbolSilver
	case 3:
		return SymbolGold
	case 4:
		return SymbolTrophy
	case 5:
		return SymbolStar
	default:
		return SymbolOverflow
	}
}

// Milestones returns every crossed 100-point checkpoint in ascending order.
// Length is totalPoints/100.
func Milestones(totalPoints int) []Milestone {
	if totalPoints < MilestoneStep {
		return []Milestone{}
	}

	count := totalPoints / MilestoneStep
	milestones := make([]Milestone, 0, count)
	for i := 1; i <= count; i++ {
		milestones = append(milestones, Milestone{
			Threshold: i * MilestoneStep,
			Symbol:    SymbolForRank(i),
		})
	}
	return milestones
}

// AdvanceGoal walks the goal ladder until it is ahead of totalPoints again,
// returning every crossing plus the settled next goal. A jump over several
// steps in one update emits one crossing per step, so the ladder never falls
// behind (next_goal > totalPoints on return).
func AdvanceGoal(totalPoints, nextGoal int) ([]GoalCrossing, int) {
	if nextGoal <= 0 {
		nextGoal = GoalStep
	}

	var crossings []GoalCrossing
	for totalPoints >= nextGoal {
		crossings = append(crossings, GoalCrossing{
			ReachedGoal: nextGoal,
			TotalPoints: totalPoints,
		})
		nextGoal += GoalStep
	}
	return crossings, nextGoal
}

// AchievementProgress is the percentage toward the next uncrossed goal,
// clamped to [0,100]. A zero or negative goal reads as 0, not an error.
func AchievementProgress(totalPoints, nextGoal int) int {
	if nextGoal <= 0 {
		return 0
	}
	percent := totalPoints * 100 / nextGoal
	return clampPercent(percent)
}

// MonthlyLadder is the rolling workout-count target for the current calendar
// month. Each time the count passes a multiple of the base goal the visible
// counter resets and the target moves to the next multiple, instead of
// plateauing at 100%.
type MonthlyLadder struct {
	TotalDone       int `json:"total_done"`
	Cycles          int `json:"cycles"`
	DisplayCount    int `json:"display_count"`
	CurrentGoal     int `json:"current_goal"`
	ProgressPercent int `json:"progress_percent"`
}

func ComputeMonthlyLadder(totalDone int) MonthlyLadder {
	if totalDone < 0 {
		totalDone = 0
	}

	cycles := totalDone / MonthlyBaseGoal
	display := totalDone - MonthlyBaseGoal*cycles
	goal := MonthlyBaseGoal * (cycles + 1)

	return MonthlyLadder{
		TotalDone:       totalDone,
		Cycles:          cycles,
		DisplayCount:    display,
		CurrentGoal:     goal,
		ProgressPercent: clampPercent(display * 100 / goal),
	}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
