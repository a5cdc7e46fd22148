package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillWorkoutSeriesGapsAreZero(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	twoDaysAgo := today.AddDate(0, 0, -2).Format("2006-01-02")

	series := FillWorkoutSeries(map[string]WorkoutDay{
		twoDaysAgo: {Date: twoDaysAgo, Count: 1, Duration: 30},
	}, today, 7)

	require.Len(t, series, 7)

	zeroDays := 0
	for _, day := range series {
		if day.Date == twoDaysAgo {
			assert.Equal(t, 1, day.Count)
			assert.Equal(t, 30, day.Duration)
			continue
		}
		assert.Equal(t, 0, day.Count)
		assert.Equal(t, 0, day.Duration)
		zeroDays++
	}
	assert.Equal(t, 6, zeroDays)
}

func TestFillWorkoutSeriesAscendingEndingToday(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	series := FillWorkoutSeries(nil, today, 7)

	require.Len(t, series, 7)
	assert.Equal(t, "2026-02-24", series[0].Date)
	assert.Equal(t, "2026-03-02", series[6].Date)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}
}

func TestFillMealSeries(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	yesterday := "2026-08-29"

	series := FillMealSeries(map[string]MealDay{
		yesterday: {Date: yesterday, Calories: 1850},
	}, today, 7)

	require.Len(t, series, 7)
	assert.Equal(t, 1850, series[5].Calories)
	assert.Equal(t, 0, series[6].Calories)
}

func TestFillSeriesZeroWindow(t *testing.T) {
	assert.Empty(t, FillWorkoutSeries(nil, time.Now(), 0))
	assert.Empty(t, FillMealSeries(nil, time.Now(), 0))
}
