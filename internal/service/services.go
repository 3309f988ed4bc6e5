package service

import (
	"github.com/mthompson/stickit/internal/repository"
	"github.com/mthompson/stickit/internal/session"
)

type Services struct {
	Auth      *AuthService
	Dashboard *DashboardService
	Category  *CategoryService
	PostIt    *PostItService
	Profile   *ProfileService
}

func NewServices(repos *repository.Repositories, sessions session.Store) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, sessions),
		Dashboard: NewDashboardService(repos.User, repos.Category, repos.PostIt),
		Category:  NewCategoryService(repos.Category, repos.PostIt),
		PostIt:    NewPostItService(repos.PostIt, repos.Category),
		Profile:   NewProfileService(repos.User, repos.Category, repos.PostIt, sessions),
	}
}
