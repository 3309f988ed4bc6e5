package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mthompson/stickit/internal/domain"
	"github.com/mthompson/stickit/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidTitle       = errors.New("title must be 1 to 50 characters")
	ErrInvalidDescription = errors.New("description must be at most 50 characters")
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
	postItRepo   repository.PostItRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, postItRepo repository.PostItRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		postItRepo:   postItRepo,
	}
}

type CategoryInput struct {
	Title       string
	Description string
	ColorCode   string
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, input CategoryInput) (*domain.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	count, err := s.categoryRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxCategoriesPerUser {
		return nil, domain.ErrCategoryLimit
	}

	if taken, err := s.colorTaken(ctx, userID, input.ColorCode, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrColorAlreadyTaken
	}

	category := &domain.Category{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		ColorCode:   input.ColorCode,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryRepo.GetByUserID(ctx, userID)
}

func (s *CategoryService) Get(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	// Ownership check: a user only sees their own categories.
	if category.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID uuid.UUID, input CategoryInput) (*domain.Category, error) {
	category, err := s.Get(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	if input.ColorCode != category.ColorCode {
		if taken, err := s.colorTaken(ctx, userID, input.ColorCode, categoryID); err != nil {
			return nil, err
		} else if taken {
			return nil, domain.ErrColorAlreadyTaken
		}
	}

	category.Title = input.Title
	category.Description = input.Description
	category.ColorCode = input.ColorCode
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and every post-it filed under it.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.postItRepo.DeleteByCategoryID(ctx, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, categoryID)
}

func (s *CategoryService) colorTaken(ctx context.Context, userID uuid.UUID, colorCode string, exclude uuid.UUID) (bool, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, c := range categories {
		if c.ColorCode == colorCode && c.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func validateCategoryInput(input CategoryInput) error {
	if input.Title == "" || len(input.Title) > 50 {
		return ErrInvalidTitle
	}
	if len(input.Description) > 50 {
		return ErrInvalidDescription
	}
	return nil
}
