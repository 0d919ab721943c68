package repository

import (
	"context"
	"testing"

	"github.com/amandev/folio/internal/domain"
	"github.com/amandev/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSkillRepo(db)
	ctx := context.Background()

	want := []*domain.Skill{
		testutil.NewTestSkill(domain.SkillTools, false),
		testutil.NewTestSkill(domain.SkillSecurity, true),
		testutil.NewTestSkill(domain.SkillBackend, false),
	}
	for _, s := range want {
		require.NoError(t, repo.Create(ctx, s))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, *want[i], got[i])
	}
}

func TestSkillRepo_StoresCategoryKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSkillRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Skill{Name: "Docker", Category: domain.SkillTools}))

	var category string
	require.NoError(t, db.QueryRow(`SELECT category FROM skills`).Scan(&category))
	assert.Equal(t, "tools", category)
}
