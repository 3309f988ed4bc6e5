package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mthompson/stickit/internal/repository/postgres"
	"github.com/mthompson/stickit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryRepository_ColorForCategory(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewCategoryRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	category := testutil.NewCategoryBuilder(user.ID).WithColor("FF0000").Build(t, testDB.DB)

	t.Run("resolves owner's category color", func(t *testing.T) {
		color, err := repo.ColorForCategory(ctx, user.ID, category.ID)
		require.NoError(t, err)
		assert.Equal(t, "FF0000", color)
	})

	t.Run("scoped to owner", func(t *testing.T) {
		// Another user cannot resolve someone else's category.
		_, err := repo.ColorForCategory(ctx, other.ID, category.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := repo.ColorForCategory(ctx, user.ID, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestCategoryRepository_GetByUserIDAndCount(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewCategoryRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewCategoryBuilder(user.ID).WithColor("FF0000").Build(t, testDB.DB)
	testutil.NewCategoryBuilder(user.ID).WithColor("00FF00").Build(t, testDB.DB)
	testutil.NewCategoryBuilder(other.ID).WithColor("0000FF").Build(t, testDB.DB)

	categories, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	count, err := repo.CountByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCategoryRepository_DuplicateColorPerUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewCategoryRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	first := testutil.NewCategoryBuilder(user.ID).WithColor("FF0000").Build(t, testDB.DB)

	// Same color, same user: rejected by the unique index.
	dup := *first
	dup.ID = uuid.New()
	assert.Error(t, repo.Create(ctx, &dup))

	// Same color, different user: fine.
	otherCat := testutil.NewCategoryBuilder(other.ID).WithColor("FF0000").Build(t, testDB.DB)
	assert.NotEqual(t, first.ID, otherCat.ID)
}
