package postgres

import "time"

type workoutTableModel struct {
	ID             int64      `db:"id"`
	Name           string     `db:"name"`
	Description    string     `db:"description"`
	Difficulty     string     `db:"difficulty"`
	Duration       int        `db:"duration"`
	Category       string     `db:"category"`
	Exercises      stringList `db:"exercises"`
	RecommendedFor string     `db:"recommended_for"`
	CreatedAt      time.Time  `db:"created_at"`
}

type workoutInsertModel struct {
	Name           string     `db:"name"`
	Description    string     `db:"description"`
	Difficulty     string     `db:"difficulty"`
	Duration       int        `db:"duration"`
	Category       string     `db:"category"`
	Exercises      stringList `db:"exercises"`
	RecommendedFor string     `db:"recommended_for"`
	CreatedAt      time.Time  `db:"created_at"`
}
