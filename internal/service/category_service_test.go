package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mthompson/stickit/internal/domain"
	"github.com/mthompson/stickit/internal/repository/postgres"
	"github.com/mthompson/stickit/internal/service"
	"github.com/mthompson/stickit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	categoryService := service.NewCategoryService(repos.Category, repos.PostIt)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("successful creation", func(t *testing.T) {
		category, err := categoryService.Create(ctx, user.ID, service.CategoryInput{
			Title:     "Work",
			ColorCode: "FF0000",
		})
		require.NoError(t, err)
		assert.Equal(t, "Work", category.Title)
		assert.Equal(t, user.ID, category.UserID)
	})

	t.Run("duplicate color rejected", func(t *testing.T) {
		_, err := categoryService.Create(ctx, user.ID, service.CategoryInput{
			Title:     "Also red",
			ColorCode: "FF0000",
		})
		assert.ErrorIs(t, err, domain.ErrColorAlreadyTaken)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := categoryService.Create(ctx, user.ID, service.CategoryInput{
			Title:     "",
			ColorCode: "00FF00",
		})
		assert.ErrorIs(t, err, service.ErrInvalidTitle)
	})

	t.Run("long description rejected", func(t *testing.T) {
		_, err := categoryService.Create(ctx, user.ID, service.CategoryInput{
			Title:       "Health",
			Description: strings.Repeat("x", 51),
			ColorCode:   "00FF00",
		})
		assert.ErrorIs(t, err, service.ErrInvalidDescription)
	})
}

func TestCategoryService_CategoryLimit(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	categoryService := service.NewCategoryService(repos.Category, repos.PostIt)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	colors := []string{"111111", "222222", "333333", "444444", "555555", "666666", "777777", "888888"}
	require.Len(t, colors, domain.MaxCategoriesPerUser)

	for _, color := range colors {
		_, err := categoryService.Create(ctx, user.ID, service.CategoryInput{
			Title:     "cat " + color,
			ColorCode: color,
		})
		require.NoError(t, err)
	}

	_, err := categoryService.Create(ctx, user.ID, service.CategoryInput{
		Title:     "one too many",
		ColorCode: "999999",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryLimit)
}

func TestCategoryService_OwnershipScoping(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	categoryService := service.NewCategoryService(repos.Category, repos.PostIt)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	intruder, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	category := testutil.NewCategoryBuilder(owner.ID).Build(t, testDB.DB)

	_, err := categoryService.Get(ctx, intruder.ID, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	err = categoryService.Delete(ctx, intruder.ID, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	got, err := categoryService.Get(ctx, owner.ID, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, got.ID)
}

func TestCategoryService_DeleteCascadesPostIts(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	categoryService := service.NewCategoryService(repos.Category, repos.PostIt)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	category := testutil.NewCategoryBuilder(user.ID).Build(t, testDB.DB)
	testutil.NewPostItBuilder(user.ID, category.ID).Build(t, testDB.DB)
	testutil.NewPostItBuilder(user.ID, category.ID).Build(t, testDB.DB)

	require.NoError(t, categoryService.Delete(ctx, user.ID, category.ID))

	remaining, err := repos.PostIt.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCategoryService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	categoryService := service.NewCategoryService(repos.Category, repos.PostIt)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	category := testutil.NewCategoryBuilder(user.ID).WithColor("FF0000").Build(t, testDB.DB)
	testutil.NewCategoryBuilder(user.ID).WithColor("00FF00").Build(t, testDB.DB)

	t.Run("update fields", func(t *testing.T) {
		updated, err := categoryService.Update(ctx, user.ID, category.ID, service.CategoryInput{
			Title:       "Renamed",
			Description: "new description",
			ColorCode:   "0000FF",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "0000FF", updated.ColorCode)
	})

	t.Run("cannot steal another category's color", func(t *testing.T) {
		_, err := categoryService.Update(ctx, user.ID, category.ID, service.CategoryInput{
			Title:     "Renamed",
			ColorCode: "00FF00",
		})
		assert.ErrorIs(t, err, domain.ErrColorAlreadyTaken)
	})
}
