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

type PostItService struct {
	postItRepo   repository.PostItRepository
	categoryRepo repository.CategoryRepository
}

func NewPostItService(postItRepo repository.PostItRepository, categoryRepo repository.CategoryRepository) *PostItService {
	return &PostItService{
		postItRepo:   postItRepo,
		categoryRepo: categoryRepo,
	}
}

type PostItInput struct {
	CategoryID  uuid.UUID
	Title       string
	Description string
	Weekday     string
	Pinned      bool
	Completed   bool
}

func (s *PostItService) Create(ctx context.Context, userID uuid.UUID, input PostItInput) (*domain.PostIt, error) {
	if input.Title == "" || len(input.Title) > 50 {
		return nil, ErrInvalidTitle
	}
	weekday, err := domain.ParseWeekday(input.Weekday)
	if err != nil {
		return nil, err
	}

	// The category must exist and belong to the same owner at creation
	// time; it is not re-verified afterward.
	if err := s.checkCategoryOwner(ctx, userID, input.CategoryID); err != nil {
		return nil, err
	}

	postIt := &domain.PostIt{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Weekday:     weekday,
		Pinned:      input.Pinned,
		Completed:   input.Completed,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.postItRepo.Create(ctx, postIt); err != nil {
		return nil, err
	}
	return postIt, nil
}

func (s *PostItService) List(ctx context.Context, userID uuid.UUID) ([]*domain.PostIt, error) {
	return s.postItRepo.GetByUserID(ctx, userID)
}

func (s *PostItService) ListCompleted(ctx context.Context, userID uuid.UUID) ([]*domain.PostIt, error) {
	return s.postItRepo.FindCompletedByOwner(ctx, userID)
}

func (s *PostItService) Get(ctx context.Context, userID, postItID uuid.UUID) (*domain.PostIt, error) {
	postIt, err := s.postItRepo.GetByID(ctx, postItID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostItNotFound
		}
		return nil, err
	}
	if postIt.UserID != userID {
		return nil, domain.ErrPostItNotFound
	}
	return postIt, nil
}

func (s *PostItService) Update(ctx context.Context, userID, postItID uuid.UUID, input PostItInput) (*domain.PostIt, error) {
	postIt, err := s.Get(ctx, userID, postItID)
	if err != nil {
		return nil, err
	}

	if input.Title == "" || len(input.Title) > 50 {
		return nil, ErrInvalidTitle
	}
	weekday, err := domain.ParseWeekday(input.Weekday)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != postIt.CategoryID {
		if err := s.checkCategoryOwner(ctx, userID, input.CategoryID); err != nil {
			return nil, err
		}
	}

	postIt.CategoryID = input.CategoryID
	postIt.Title = input.Title
	postIt.Description = input.Description
	postIt.Weekday = weekday
	postIt.Pinned = input.Pinned
	postIt.Completed = input.Completed
	postIt.UpdatedAt = time.Now()

	if err := s.postItRepo.Update(ctx, postIt); err != nil {
		return nil, err
	}
	return postIt, nil
}

func (s *PostItService) Delete(ctx context.Context, userID, postItID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, postItID); err != nil {
		return err
	}
	return s.postItRepo.Delete(ctx, postItID)
}

func (s *PostItService) checkCategoryOwner(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	if category.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	return nil
}
