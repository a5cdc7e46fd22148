package progress

import "sort"

// LeaderboardRow is one ranked user. Points merge profile (workout) points
// with the sum of awarded challenge points.
type LeaderboardRow struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url,omitempty"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
	Progress int    `json:"progress"`
}

// RankRows sorts rows by points descending (ties broken by username so the
// order is deterministic), assigns sequential 1-based ranks, and fills in
// progress relative to the leader. Users with zero points stay in the list
// at the bottom with progress 0. An empty leaderboard stays empty.
func RankRows(rows []*LeaderboardRow) []*LeaderboardRow {
	if rows == nil {
		return []*LeaderboardRow{}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Username < rows[j].Username
	})

	top := 0
	if len(rows) > 0 {
		top = rows[0].Points
	}

	for i, row := range rows {
		row.Rank = i + 1
		if top > 0 {
			row.Progress = clampPercent(row.Points * 100 / top)
		} else {
			row.Progress = 0
		}
	}
	return rows
}
