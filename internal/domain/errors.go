package domain

import "errors"

// Validation errors
var (
	ErrInvalidWeekday  = errors.New("invalid weekday")
	ErrInvalidUsername = errors.New("username must be 1 to 30 characters")
	ErrInvalidEmail    = errors.New("email must contain '@' and '.'")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)

// Category errors
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryLimit     = errors.New("category limit reached")
	ErrColorAlreadyTaken = errors.New("color is already assigned to another category")
)

// Post-it errors
var (
	ErrPostItNotFound = errors.New("post-it not found")
)
