package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoriesPerUser caps how many categories one user can own. Each is
// bound to a distinct color, so the cap matches the color palette size.
const MaxCategoriesPerUser = 8

type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_user_color,priority:1"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	ColorCode   string    `json:"colorCode" gorm:"not null;uniqueIndex:idx_user_color,priority:2"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
