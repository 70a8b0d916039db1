package models

import "time"

// Company represents a row of the companies table.
type Company struct {
	Code        string    `db:"code"` // Primary Key
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
