package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRowsMergedPoints(t *testing.T) {
	// A has 50 challenge points, B has 80 workout points, C has nothing:
	// B leads, A trails at 62%, C stays listed at the bottom with 0%.
	rows := RankRows([]*LeaderboardRow{
		{Username: "alice", Points: 50},
		{Username: "bob", Points: 80},
		{Username: "carol", Points: 0},
	})

	require.Len(t, rows, 3)

	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 100, rows[0].Progress)

	assert.Equal(t, "alice", rows[1].Username)
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, 62, rows[1].Progress)

	assert.Equal(t, "carol", rows[2].Username)
	assert.Equal(t, 3, rows[2].Rank)
	assert.Equal(t, 0, rows[2].Progress)
}

func TestRankRowsTiesAreDeterministic(t *testing.T) {
	rows := RankRows([]*LeaderboardRow{
		{Username: "zoe", Points: 40},
		{Username: "ann", Points: 40},
		{Username: "mia", Points: 40},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, "ann", rows[0].Username)
	assert.Equal(t, "mia", rows[1].Username)
	assert.Equal(t, "zoe", rows[2].Username)
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Rank, rows[1].Rank, rows[2].Rank})
}

func TestRankRowsSingleUser(t *testing.T) {
	rows := RankRows([]*LeaderboardRow{{Username: "solo", Points: 10}})

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 100, rows[0].Progress)
}

func TestRankRowsAllZero(t *testing.T) {
	rows := RankRows([]*LeaderboardRow{
		{Username: "a", Points: 0},
		{Username: "b", Points: 0},
	})

	for _, row := range rows {
		assert.Equal(t, 0, row.Progress)
	}
}

func TestRankRowsEmpty(t *testing.T) {
	rows := RankRows(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
