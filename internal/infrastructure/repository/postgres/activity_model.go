package postgres

import "time"

type activityTableModel struct {
	ID           int64     `db:"id"`
	User         string    `db:"username"`
	ActivityType string    `db:"activity_type"`
	Duration     int       `db:"duration"`
	Distance     float64   `db:"distance"`
	Calories     int       `db:"calories"`
	Points       int       `db:"points"`
	Date         time.Time `db:"date"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
}

type activityInsertModel struct {
	User         string    `db:"username"`
	ActivityType string    `db:"activity_type"`
	Duration     int       `db:"duration"`
	Distance     float64   `db:"distance"`
	Calories     int       `db:"calories"`
	Points       int       `db:"points"`
	Date         time.Time `db:"date"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
}
