package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mthompson/stickit/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	// ColorForCategory resolves the color of one category scoped to its
	// owner, used for dashboard enrichment.
	ColorForCategory(ctx context.Context, userID, categoryID uuid.UUID) (string, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostItRepository interface {
	Create(ctx context.Context, postIt *domain.PostIt) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PostIt, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.PostIt, error)
	FindByWeekdayAndOwner(ctx context.Context, weekday domain.Weekday, userID uuid.UUID, pinned bool) ([]*domain.PostIt, error)
	FindCompletedByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.PostIt, error)
	Update(ctx context.Context, postIt *domain.PostIt) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCategoryID(ctx context.Context, categoryID uuid.UUID) error
}

type Repositories struct {
	User     UserRepository
	Category CategoryRepository
	PostIt   PostItRepository
}
