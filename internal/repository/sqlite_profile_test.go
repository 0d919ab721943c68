package repository

import (
	"context"
	"testing"

	"github.com/amandev/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_Get_NotFoundWhenEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_PutAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile()
	require.NoError(t, repo.Put(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProfileRepo_PutReplaces(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testutil.NewTestProfile()))

	p := testutil.NewTestProfile()
	p.Name = "Renamed"
	p.Headline = []string{"Only line."}
	require.NoError(t, repo.Put(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, []string{"Only line."}, got.Headline)
}
