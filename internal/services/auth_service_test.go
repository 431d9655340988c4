package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/config"
	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
	"hrnexus_backend/internal/repositories"
	"hrnexus_backend/internal/session"
)

type authFixture struct {
	svc        AuthService
	users      repositories.UserRepository
	candidates repositories.CandidateRepository
	activity   repositories.ActivityRepository
	sessions   *session.Manager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := recordstore.NewMemoryStore()
	users := repositories.NewUserRepository(store)
	candidates := repositories.NewCandidateRepository(store)
	activity := repositories.NewActivityRepository(store)
	sessions := session.NewManager(store, users)

	cfg := config.AdminConfig{AccessCode: "ADMIN_2024"}
	return &authFixture{
		svc:        NewAuthService(cfg, users, candidates, activity, sessions),
		users:      users,
		candidates: candidates,
		activity:   activity,
		sessions:   sessions,
	}
}

func TestAuthService_RegisterCandidate(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	user, err := f.svc.RegisterCandidate(ctx, &dto.RegisterCandidateRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleCandidate, user.Role)

	// The pipeline profile shares the account id and starts PENDING.
	profile, err := f.candidates.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, models.CandidateStatusPending, profile.Status)
	assert.Positive(t, profile.LastUpdated)

	// Registration signs the candidate in.
	current := f.sessions.Current()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	// And leaves an audit entry.
	entries, err := f.activity.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionRegister, entries[0].Action)
}

func TestAuthService_RegisterCandidateDuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.RegisterCandidate(ctx, &dto.RegisterCandidateRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = f.svc.RegisterCandidate(ctx, &dto.RegisterCandidateRequest{
		Name: "Mallory", Email: "ALICE@example.com", Password: "secret2",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_LoginCandidateIgnoresPassword(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.svc.RegisterCandidate(ctx, &dto.RegisterCandidateRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx))

	// A matching email is all it takes; the password is not checked.
	user, err := f.svc.LoginCandidate(ctx, &dto.LoginCandidateRequest{
		Email: "Alice@Example.COM", Password: "completely-wrong",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_LoginCandidateUnknownEmail(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	_, err := f.svc.LoginCandidate(context.Background(), &dto.LoginCandidateRequest{
		Email: "nobody@example.com", Password: "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, f.sessions.Current())
}

func TestAuthService_RegisterAdminAccessCode(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.RegisterAdmin(ctx, &dto.RegisterAdminRequest{
		Name: "Eve", Email: "eve@example.com", Password: "secret1", AccessCode: "WRONG",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccessCode)

	// The code is matched case-insensitively.
	user, err := f.svc.RegisterAdmin(ctx, &dto.RegisterAdminRequest{
		Name: "Hana", Email: "hana@example.com", Password: "secret1", AccessCode: "admin_2024",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleHRAdmin, user.Role)

	current := f.sessions.Current()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestAuthService_LoginAdminRequiresAdminRole(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.RegisterCandidate(ctx, &dto.RegisterCandidateRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx))

	// A candidate account cannot enter through the admin door.
	_, err = f.svc.LoginAdmin(ctx, &dto.LoginAdminRequest{
		Email: "alice@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)

	_, err = f.svc.LoginAdmin(ctx, &dto.LoginAdminRequest{
		Email: "nobody@example.com", Password: "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
}

func TestAuthService_QuickLoginDemoSeedsOnce(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	user, err := f.svc.QuickLoginDemo(ctx)
	require.NoError(t, err)
	assert.Equal(t, DemoAdminID, user.ID)
	assert.Equal(t, DemoAdminEmail, user.Email)
	assert.Equal(t, models.RoleHRAdmin, user.Role)

	// A second quick login reuses the seeded account.
	_, err = f.svc.QuickLoginDemo(ctx)
	require.NoError(t, err)

	all, err := f.users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
