package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultIcon is applied at registration when no icon is supplied.
const DefaultIcon = "https://icon-library.com/images/default-user-icon/default-user-icon-8.jpg"

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Icon         string    `json:"icon"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
