package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/mthompson/stickit/internal/domain"
	"github.com/mthompson/stickit/internal/repository"
	"gorm.io/gorm"
)

// SliceResult is the outcome of building one half of the dashboard. A
// store failure marks the slice failed instead of aborting the other
// half; callers can still tell "legitimately empty" from "failed to
// load".
type SliceResult struct {
	Notes []domain.EnrichedPostIt
	Err   error
}

func (r SliceResult) Failed() bool {
	return r.Err != nil
}

// Dashboard is the per-user, per-weekday view: the user's post-its for
// one day partitioned into pinned and unpinned, each annotated with its
// category color.
type Dashboard struct {
	Day      domain.Weekday
	IsToday  bool
	Pinned   SliceResult
	Unpinned SliceResult
}

type DashboardService struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	postItRepo   repository.PostItRepository
}

func NewDashboardService(userRepo repository.UserRepository, categoryRepo repository.CategoryRepository, postItRepo repository.PostItRepository) *DashboardService {
	return &DashboardService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		postItRepo:   postItRepo,
	}
}

// BuildDashboard assembles the full view for an authenticated username.
// An empty day selects the current weekday. The username must resolve to
// a user; a dangling session identity fails the whole build rather than
// rendering an empty dashboard. The pinned slice is fully built before
// the unpinned query is issued.
func (s *DashboardService) BuildDashboard(ctx context.Context, day string, username string) (*Dashboard, error) {
	var weekday domain.Weekday
	if day == "" {
		weekday = domain.CurrentWeekday()
	} else {
		parsed, err := domain.ParseWeekday(day)
		if err != nil {
			return nil, err
		}
		weekday = parsed
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pinned := s.BuildSlice(ctx, string(weekday), user.ID, true)
	unpinned := s.BuildSlice(ctx, string(weekday), user.ID, false)

	return &Dashboard{
		Day:      weekday,
		IsToday:  domain.IsCurrentWeekday(string(weekday)),
		Pinned:   pinned,
		Unpinned: unpinned,
	}, nil
}

// BuildSlice produces one pinned-state partition of the dashboard: the
// user's post-its for the weekday, each enriched with its category
// color. The weekday is matched case-insensitively and canonicalized
// before it reaches the store. Order is whatever the store returns.
//
// Failures never propagate: a store error is logged and marks the slice
// failed, leaving the caller's other slice untouched. A post-it whose
// category has been deleted out from under it keeps an unset color
// rather than sinking the whole build.
func (s *DashboardService) BuildSlice(ctx context.Context, day string, userID uuid.UUID, pinned bool) SliceResult {
	weekday, err := domain.ParseWeekday(day)
	if err != nil {
		log.Printf("ERROR [service.Dashboard] invalid weekday %q: %v", day, err)
		return SliceResult{Err: err}
	}

	postIts, err := s.postItRepo.FindByWeekdayAndOwner(ctx, weekday, userID, pinned)
	if err != nil {
		log.Printf("ERROR [service.Dashboard] failed to load post-its for %s (pinned=%t): %v", weekday, pinned, err)
		return SliceResult{Err: err}
	}

	notes := make([]domain.EnrichedPostIt, 0, len(postIts))
	for _, postIt := range postIts {
		color, err := s.categoryRepo.ColorForCategory(ctx, postIt.UserID, postIt.CategoryID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("ERROR [service.Dashboard] failed to resolve color for category %s: %v", postIt.CategoryID, err)
				return SliceResult{Err: err}
			}
			// Category gone; the note degrades to an unset color.
			color = ""
		}
		notes = append(notes, domain.EnrichedPostIt{PostIt: *postIt, ColorCode: color})
	}

	return SliceResult{Notes: notes}
}
