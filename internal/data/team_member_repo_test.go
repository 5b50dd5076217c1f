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

func TestTeamMemberRepo_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewTeamMemberRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewTeamMemberRequest().Build())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sam Test", created.Name)
	assert.Equal(t, "Engineer", created.Role)
	assert.Equal(t, 1, created.DisplayOrder, "first member gets order 1")

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrTeamMemberNotFound)
}

func TestTeamMemberRepo_DisplayOrderAssignment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewTeamMemberRepo(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, testutil.NewTeamMemberRequest().WithName("First").Build())
	require.NoError(t, err)
	assert.Equal(t, 1, first.DisplayOrder)

	second, err := repo.Create(ctx, testutil.NewTeamMemberRequest().WithName("Second").Build())
	require.NoError(t, err)
	assert.Equal(t, 2, second.DisplayOrder, "auto-assignment appends after the current maximum")

	pinned, err := repo.Create(ctx, testutil.NewTeamMemberRequest().WithName("Pinned").WithDisplayOrder(10).Build())
	require.NoError(t, err)
	assert.Equal(t, 10, pinned.DisplayOrder, "explicit order is kept as given")
}

func TestTeamMemberRepo_ListOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewTeamMemberRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testutil.NewTeamMemberRequest().WithName("Zoe").WithDisplayOrder(1).Build())
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.NewTeamMemberRequest().WithName("Beth").WithDisplayOrder(2).Build())
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.NewTeamMemberRequest().WithName("Adam").WithDisplayOrder(2).Build())
	require.NoError(t, err)

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Zoe", members[0].Name)
	// Ties on display order fall back to name.
	assert.Equal(t, "Adam", members[1].Name)
	assert.Equal(t, "Beth", members[2].Name)
}

func TestTeamMemberRepo_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewTeamMemberRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewTeamMemberRequest().Build())
	require.NoError(t, err)

	newRole := "Lead Engineer"
	newBio := "Builds the backends."
	updated, err := repo.Update(ctx, created.ID, model.UpdateTeamMemberRequest{
		Role: &newRole,
		Bio:  &newBio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lead Engineer", updated.Role)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Builds the backends.", *updated.Bio)
	assert.Equal(t, created.Name, updated.Name)

	_, err = repo.Update(ctx, uuid.NewString(), model.UpdateTeamMemberRequest{Role: &newRole})
	assert.ErrorIs(t, err, ErrTeamMemberNotFound)
}

func TestTeamMemberRepo_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewTeamMemberRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewTeamMemberRequest().Build())
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
