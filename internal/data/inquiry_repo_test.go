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

func TestInquiryRepo_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewInquiryRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewInquiryRequest().Build())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.InquiryStatusNew, created.Status)
	assert.Nil(t, created.ViewedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "jordan@example.com", got.Email)
	require.NotNil(t, got.Message)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestInquiryRepo_Create_QuoteRequest(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewInquiryRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewInquiryRequest().AsQuoteRequest().Build())
	require.NoError(t, err)
	assert.True(t, created.IsQuoteRequest)
	require.NotNil(t, created.Company)
	assert.Equal(t, "Test Company", *created.Company)
	assert.Nil(t, created.Message)
}

func TestInquiryRepo_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewInquiryRepo(db)
	ctx := context.Background()

	for _, email := range []string{"first@example.com", "second@example.com", "third@example.com"} {
		_, err := repo.Create(ctx, testutil.NewInquiryRequest().WithEmail(email).Build())
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "third@example.com", all[0].Email)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second@example.com", page[0].Email)
}

func TestInquiryRepo_UpdateStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewInquiryRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewInquiryRequest().Build())
	require.NoError(t, err)

	viewed, err := repo.UpdateStatus(ctx, model.UpdateInquiryStatusRequest{
		ID:     created.ID,
		Status: model.InquiryStatusViewed,
	})
	require.NoError(t, err)
	assert.Equal(t, model.InquiryStatusViewed, viewed.Status)
	require.NotNil(t, viewed.ViewedAt, "first transition away from New must stamp viewed_at")

	firstViewedAt := *viewed.ViewedAt
	responded, err := repo.UpdateStatus(ctx, model.UpdateInquiryStatusRequest{
		ID:     created.ID,
		Status: model.InquiryStatusResponded,
	})
	require.NoError(t, err)
	assert.Equal(t, model.InquiryStatusResponded, responded.Status)
	require.NotNil(t, responded.ViewedAt)
	assert.True(t, responded.ViewedAt.Equal(firstViewedAt), "viewed_at must not move on later transitions")

	_, err = repo.UpdateStatus(ctx, model.UpdateInquiryStatusRequest{
		ID:     uuid.NewString(),
		Status: model.InquiryStatusViewed,
	})
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestInquiryRepo_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewInquiryRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testutil.NewInquiryRequest().Build())
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
