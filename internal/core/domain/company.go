package domain

import "time"

// Company is a business identified by its short business code.
type Company struct {
	Code        string    `json:"code"`        // Primary Key, immutable after creation
	Name        string    `json:"name"`        // Required, unique
	Description string    `json:"description"` // Optional, empty when not given
	CreatedAt   time.Time `json:"createdAt"`   // Drives listing order
}

// CompanySummary is the company block embedded in an invoice detail.
type CompanySummary struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
