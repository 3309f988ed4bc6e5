package service

import (
	"context"
	"errors"
	"time"

	"github.com/mthompson/stickit/internal/domain"
	"github.com/mthompson/stickit/internal/repository"
	"github.com/mthompson/stickit/internal/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileService struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	postItRepo   repository.PostItRepository
	sessions     session.Store
}

func NewProfileService(userRepo repository.UserRepository, categoryRepo repository.CategoryRepository, postItRepo repository.PostItRepository, sessions session.Store) *ProfileService {
	return &ProfileService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		postItRepo:   postItRepo,
		sessions:     sessions,
	}
}

// UpdateProfileInput carries the editable account fields. Blank fields
// are left untouched.
type UpdateProfileInput struct {
	Username string
	Password string
	Icon     string
}

func (s *ProfileService) Get(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update edits the account. A username change re-binds the caller's
// session to the new name so the login survives the rename; the returned
// token is non-empty only in that case and replaces the caller's cookie.
func (s *ProfileService) Update(ctx context.Context, currentToken, username string, input UpdateProfileInput) (*domain.User, string, error) {
	user, err := s.Get(ctx, username)
	if err != nil {
		return nil, "", err
	}

	renamed := false
	if input.Username != "" && input.Username != user.Username {
		if err := validateUsername(input.Username); err != nil {
			return nil, "", err
		}
		existing, err := s.userRepo.GetByUsername(ctx, input.Username)
		if err == nil && existing != nil {
			return nil, "", ErrUsernameExists
		}
		user.Username = input.Username
		renamed = true
	}

	if input.Password != "" {
		if err := validatePassword(input.Password); err != nil {
			return nil, "", err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = string(hashed)
	}

	if input.Icon != "" {
		user.Icon = input.Icon
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", err
	}

	if renamed {
		s.sessions.Revoke(currentToken)
		return user, s.sessions.Create(user.Username), nil
	}

	return user, "", nil
}

// Delete removes the account along with its categories and post-its, and
// revokes the caller's session.
func (s *ProfileService) Delete(ctx context.Context, currentToken, username string) error {
	user, err := s.Get(ctx, username)
	if err != nil {
		return err
	}

	categories, err := s.categoryRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, category := range categories {
		if err := s.postItRepo.DeleteByCategoryID(ctx, category.ID); err != nil {
			return err
		}
		if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
			return err
		}
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.sessions.Revoke(currentToken)
	return nil
}
