package postgres

import "time"

type leaderboardTableModel struct {
	ID              int64     `db:"id"`
	User            string    `db:"username"`
	Team            string    `db:"team"`
	TotalPoints     int       `db:"total_points"`
	TotalActivities int       `db:"total_activities"`
	Rank            int       `db:"rank"`
	LastUpdated     time.Time `db:"last_updated"`
}

type leaderboardInsertModel struct {
	User            string    `db:"username"`
	Team            string    `db:"team"`
	TotalPoints     int       `db:"total_points"`
	TotalActivities int       `db:"total_activities"`
	Rank            int       `db:"rank"`
	LastUpdated     time.Time `db:"last_updated"`
}
