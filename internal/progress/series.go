package progress

import "time"

const dateLayout = "2006-01-02"

// WorkoutDay is one bucket of the workouts-per-day chart series.
type WorkoutDay struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Duration int    `json:"duration"`
}

// MealDay is one bucket of the calories-per-day chart series.
type MealDay struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
}

// FillWorkoutSeries builds a fixed-length ascending series of windowDays
// consecutive days ending at `today`, pulling per-day aggregates from byDate
// and emitting zero buckets for days with no records.
func FillWorkoutSeries(byDate map[string]WorkoutDay, today time.Time, windowDays int) []WorkoutDay {
	series := make([]WorkoutDay, 0, windowDays)
	for _, date := range seriesDates(today, windowDays) {
		day := WorkoutDay{Date: date}
		if agg, ok := byDate[date]; ok {
			day.Count = agg.Count
			day.Duration = agg.Duration
		}
		series = append(series, day)
	}
	return series
}

// FillMealSeries is the calories counterpart of FillWorkoutSeries.
func FillMealSeries(byDate map[string]MealDay, today time.Time, windowDays int) []MealDay {
	series := make([]MealDay, 0, windowDays)
	for _, date := range seriesDates(today, windowDays) {
		day := MealDay{Date: date}
		if agg, ok := byDate[date]; ok {
			day.Calories = agg.Calories
		}
		series = append(series, day)
	}
	return series
}

func seriesDates(today time.Time, windowDays int) []string {
	if windowDays <= 0 {
		return nil
	}
	dates := make([]string, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		dates = append(dates, today.AddDate(0, 0, -i).Format(dateLayout))
	}
	return dates
}
