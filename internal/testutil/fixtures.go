package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mthompson/stickit/internal/api/middleware"
	"github.com/mthompson/stickit/internal/domain"
	repoPostgres "github.com/mthompson/stickit/internal/repository/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
	icon     string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		icon:     domain.DefaultIcon,
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Icon:         b.icon,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates a user in the database, logs it in through the
// API and returns the user plus the session token from the cookie.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    user.Email,
		"password": password,
	})
	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return user, cookie.Value
		}
	}

	t.Fatal("login response did not set a session cookie")
	return nil, ""
}

// CategoryBuilder creates test categories
type CategoryBuilder struct {
	userID      uuid.UUID
	title       string
	description string
	colorCode   string
}

func NewCategoryBuilder(userID uuid.UUID) *CategoryBuilder {
	return &CategoryBuilder{
		userID:      userID,
		title:       fmt.Sprintf("category_%s", uuid.New().String()[:8]),
		description: "test category",
		colorCode:   "FF0000",
	}
}

func (b *CategoryBuilder) WithTitle(title string) *CategoryBuilder {
	b.title = title
	return b
}

func (b *CategoryBuilder) WithColor(colorCode string) *CategoryBuilder {
	b.colorCode = colorCode
	return b
}

func (b *CategoryBuilder) Build(t *testing.T, db *gorm.DB) *domain.Category {
	t.Helper()

	category := &domain.Category{
		ID:          uuid.New(),
		UserID:      b.userID,
		Title:       b.title,
		Description: b.description,
		ColorCode:   b.colorCode,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	return category
}

// PostItBuilder creates test post-its through the postgres repository so
// the stored marker encoding is exercised.
type PostItBuilder struct {
	userID     uuid.UUID
	categoryID uuid.UUID
	title      string
	weekday    domain.Weekday
	pinned     bool
	completed  bool
}

func NewPostItBuilder(userID, categoryID uuid.UUID) *PostItBuilder {
	return &PostItBuilder{
		userID:     userID,
		categoryID: categoryID,
		title:      fmt.Sprintf("postit_%s", uuid.New().String()[:8]),
		weekday:    domain.Monday,
	}
}

func (b *PostItBuilder) WithTitle(title string) *PostItBuilder {
	b.title = title
	return b
}

func (b *PostItBuilder) WithWeekday(weekday domain.Weekday) *PostItBuilder {
	b.weekday = weekday
	return b
}

func (b *PostItBuilder) Pinned() *PostItBuilder {
	b.pinned = true
	return b
}

func (b *PostItBuilder) Completed() *PostItBuilder {
	b.completed = true
	return b
}

func (b *PostItBuilder) Build(t *testing.T, db *gorm.DB) *domain.PostIt {
	t.Helper()

	postIt := &domain.PostIt{
		ID:         uuid.New(),
		UserID:     b.userID,
		CategoryID: b.categoryID,
		Title:      b.title,
		Weekday:    b.weekday,
		Pinned:     b.pinned,
		Completed:  b.completed,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	repo := repoPostgres.NewPostItRepository(db)
	if err := repo.Create(t.Context(), postIt); err != nil {
		t.Fatalf("failed to create post-it: %v", err)
	}

	return postIt
}

// DoJSON sends an authenticated JSON request carrying the session cookie.
func DoJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
