package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestonesLengthAndOrder(t *testing.T) {
	for _, total := range []int{0, 99, 100, 250, 777, 1234} {
		milestones := Milestones(total)
		require.Len(t, milestones, total/100, "total=%d", total)

		for i, m := range milestones {
			assert.Equal(t, (i+1)*100, m.Threshold)
		}
	}
}

func TestMilestonesSymbols(t *testing.T) {
	milestones := Milestones(800)
	require.Len(t, milestones, 8)

	assert.Equal(t, SymbolBronze, milestones[0].Symbol)
	assert.Equal(t, SymbolSilver, milestones[1].Symbol)
	assert.Equal(t, SymbolGold, milestones[2].Symbol)
	assert.Equal(t, SymbolTrophy, milestones[3].Symbol)
	assert.Equal(t, SymbolStar, milestones[4].Symbol)

	// everything past rank 5 shares the overflow symbol
	for _, m := range milestones[5:] {
		assert.Equal(t, SymbolOverflow, m.Symbol)
	}
}

func TestMilestonesEmptyNotNil(t *testing.T) {
	assert.NotNil(t, Milestones(0))
	assert.Empty(t, Milestones(99))
}

func TestAdvanceGoalSingleCrossing(t *testing.T) {
	crossings, next := AdvanceGoal(105, 100)

	require.Len(t, crossings, 1)
	assert.Equal(t, 100, crossings[0].ReachedGoal)
	assert.Equal(t, 105, crossings[0].TotalPoints)
	assert.Equal(t, 200, next)
}

func TestAdvanceGoalCatchesUpOnBigJump(t *testing.T) {
	// 90 -> 250 in one update: both 100 and 200 are crossed and the ladder
	// settles ahead of the total.
	crossings, next := AdvanceGoal(250, 100)

	require.Len(t, crossings, 2)
	assert.Equal(t, 100, crossings[0].ReachedGoal)
	assert.Equal(t, 200, crossings[1].ReachedGoal)
	assert.Equal(t, 300, next)
	assert.Greater(t, next, 250)
}

func TestAdvanceGoalNoCrossing(t *testing.T) {
	crossings, next := AdvanceGoal(99, 100)

	assert.Empty(t, crossings)
	assert.Equal(t, 100, next)
}

func TestAdvanceGoalRecoversBadGoal(t *testing.T) {
	// A zeroed goal must not divide-by-zero or loop forever.
	crossings, next := AdvanceGoal(50, 0)
	assert.Equal(t, 200, next)
	require.Len(t, crossings, 1)
	assert.Equal(t, 100, crossings[0].ReachedGoal)
}

func TestAchievementProgress(t *testing.T) {
	assert.Equal(t, 0, AchievementProgress(0, 100))
	assert.Equal(t, 50, AchievementProgress(150, 300))
	assert.Equal(t, 99, AchievementProgress(199, 200))
	assert.Equal(t, 100, AchievementProgress(250, 200))
	assert.Equal(t, 0, AchievementProgress(500, 0))
}

func TestComputeMonthlyLadder(t *testing.T) {
	ladder := ComputeMonthlyLadder(17)

	assert.Equal(t, 1, ladder.Cycles)
	assert.Equal(t, 2, ladder.DisplayCount)
	assert.Equal(t, 30, ladder.CurrentGoal)
	assert.Equal(t, 6, ladder.ProgressPercent)
}

func TestComputeMonthlyLadderFirstCycle(t *testing.T) {
	ladder := ComputeMonthlyLadder(7)

	assert.Equal(t, 0, ladder.Cycles)
	assert.Equal(t, 7, ladder.DisplayCount)
	assert.Equal(t, 15, ladder.CurrentGoal)
	assert.Equal(t, 46, ladder.ProgressPercent)
}

func TestComputeMonthlyLadderExactMultipleResets(t *testing.T) {
	ladder := ComputeMonthlyLadder(15)

	assert.Equal(t, 1, ladder.Cycles)
	assert.Equal(t, 0, ladder.DisplayCount)
	assert.Equal(t, 30, ladder.CurrentGoal)
	assert.Equal(t, 0, ladder.ProgressPercent)
}

func TestComputeMonthlyLadderZero(t *testing.T) {
	ladder := ComputeMonthlyLadder(0)

	assert.Equal(t, 0, ladder.DisplayCount)
	assert.Equal(t, 15, ladder.CurrentGoal)
	assert.Equal(t, 0, ladder.ProgressPercent)
}
