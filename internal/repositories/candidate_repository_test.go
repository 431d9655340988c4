package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
)

func newCandidate(id, name, email string) *models.CandidateProfile {
	c := &models.CandidateProfile{
		User: models.User{
			ID:        id,
			Name:      name,
			Email:     email,
			Role:      models.RoleCandidate,
			CreatedAt: models.NowMillis(),
		},
		Status: models.CandidateStatusPending,
	}
	c.Touch()
	return c
}

func TestCandidateRepository_SaveIsUpsert(t *testing.T) {
	t.Parallel()
	repo := NewCandidateRepository(recordstore.NewMemoryStore())
	ctx := context.Background()

	c := newCandidate("c1", "Alice", "alice@example.com")
	require.NoError(t, repo.Save(ctx, c))

	c.CVFileName = "resume.pdf"
	require.NoError(t, repo.Save(ctx, c))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "resume.pdf", all[0].CVFileName)
}

func TestCandidateRepository_GetByEmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	repo := NewCandidateRepository(recordstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newCandidate("c1", "Alice", "Alice@Example.com")))

	got, err := repo.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)
}

func TestCandidateRepository_UpdateStatus(t *testing.T) {
	t.Parallel()
	repo := NewCandidateRepository(recordstore.NewMemoryStore())
	ctx := context.Background()

	c := newCandidate("c1", "Alice", "alice@example.com")
	require.NoError(t, repo.Save(ctx, c))
	before := c.LastUpdated

	updated, err := repo.UpdateStatus(ctx, "c1", models.CandidateStatusVerified)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.CandidateStatusVerified, updated.Status)
	assert.Greater(t, updated.LastUpdated, before)
}

func TestCandidateRepository_UpdateStatusUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()
	repo := NewCandidateRepository(recordstore.NewMemoryStore())
	ctx := context.Background()

	c := newCandidate("c1", "Alice", "alice@example.com")
	require.NoError(t, repo.Save(ctx, c))

	updated, err := repo.UpdateStatus(ctx, "ghost", models.CandidateStatusRejected)
	require.NoError(t, err)
	assert.Nil(t, updated)

	// Nothing changed for the existing candidate.
	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusPending, got.Status)
	assert.Equal(t, c.LastUpdated, got.LastUpdated)
}

func TestCandidateProfile_TouchIsStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	c := newCandidate("c1", "Alice", "alice@example.com")
	prev := c.LastUpdated
	for i := 0; i < 10; i++ {
		c.Touch()
		assert.Greater(t, c.LastUpdated, prev)
		prev = c.LastUpdated
	}
}
