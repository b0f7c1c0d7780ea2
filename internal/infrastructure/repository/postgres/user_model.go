package postgres

import (
	"database/sql"
	"time"
)

type userTableModel struct {
	ID        int64          `db:"id"`
	Email     string         `db:"email"`
	Username  string         `db:"username"`
	Password  string         `db:"password"`
	FullName  string         `db:"full_name"`
	Team      sql.NullString `db:"team"`
	AvatarURL sql.NullString `db:"avatar_url"`
	CreatedAt time.Time      `db:"created_at"`
}

type userInsertModel struct {
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	FullName  string    `db:"full_name"`
	Team      *string   `db:"team"`
	AvatarURL *string   `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
}
