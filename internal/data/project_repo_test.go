package data

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemates/website/internal/domain/model"
	"github.com/codemates/website/internal/testutil"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewProjectRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewProjectRequest().Build())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Project", created.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, created.Technologies)
	assert.False(t, created.Featured)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectRepo_DuplicateTitle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewProjectRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testutil.NewProjectRequest().WithTitle("Unique Title").Build())
	require.NoError(t, err)

	_, err = repo.Create(ctx, testutil.NewProjectRequest().WithTitle("Unique Title").Build())
	assert.ErrorIs(t, err, ErrProjectTitleExists)
}

func TestProjectRepo_List_FeaturedFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewProjectRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testutil.NewProjectRequest().WithTitle("Plain").Build())
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.NewProjectRequest().WithTitle("Featured").WithFeatured(true).Build())
	require.NoError(t, err)

	all, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Featured", all[0].Title)

	limited, err := repo.List(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestProjectRepo_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewProjectRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewProjectRequest().Build())
	require.NoError(t, err)

	newTitle := "Renamed Project"
	newStatus := model.ProjectStatusOngoing
	updated, err := repo.Update(ctx, created.ID, model.UpdateProjectRequest{
		Title:  &newTitle,
		Status: &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Project", updated.Title)
	assert.Equal(t, model.ProjectStatusOngoing, updated.Status)
	// Untouched fields survive partial updates.
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	_, err = repo.Update(ctx, uuid.NewString(), model.UpdateProjectRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectRepo_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewProjectRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewProjectRequest().Build())
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
