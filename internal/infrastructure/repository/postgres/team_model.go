package postgres

import (
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Captain     string         `db:"captain"`
	Members     pq.StringArray `db:"members"`
	TotalPoints int            `db:"total_points"`
	CreatedAt   time.Time      `db:"created_at"`
}

type teamInsertModel struct {
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Captain     string         `db:"captain"`
	Members     pq.StringArray `db:"members"`
	TotalPoints int            `db:"total_points"`
	CreatedAt   time.Time      `db:"created_at"`
}
