package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostIt carries no gorm tags: the stored table uses a single-character
// marker encoding for the pinned and completed flags, so the postgres
// adapter owns the column mapping (see repository/postgres).
type PostIt struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Weekday     Weekday   `json:"weekday"`
	Pinned      bool      `json:"pinned"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EnrichedPostIt is a post-it with its category's color resolved for
// display. Built fresh on every dashboard aggregation, never stored.
type EnrichedPostIt struct {
	PostIt
	ColorCode string `json:"colorCode"`
}
