package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/config"
	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/email"
	"hrnexus_backend/internal/llm"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
	"hrnexus_backend/internal/repositories"
)

// fakeMailer records sent messages and can be told to fail.
type fakeMailer struct {
	sent []email.Message
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, msg *email.Message) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, *msg)
	return nil
}

type inviteFixture struct {
	svc        InviteService
	candidates repositories.CandidateRepository
	activity   repositories.ActivityRepository
	mailer     *fakeMailer
}

func newInviteFixture(t *testing.T) *inviteFixture {
	t.Helper()
	store := recordstore.NewMemoryStore()
	candidates := repositories.NewCandidateRepository(store)
	activity := repositories.NewActivityRepository(store)
	mailer := &fakeMailer{}

	// Provider "none" makes every generation attempt fail, which is
	// what the fallback path is for.
	composer := llm.NewClient(config.LLMConfig{Provider: "none"})

	return &inviteFixture{
		svc:        NewInviteService(candidates, activity, composer, mailer),
		candidates: candidates,
		activity:   activity,
		mailer:     mailer,
	}
}

func TestInviteService_DraftFallsBackWhenGenerationFails(t *testing.T) {
	t.Parallel()
	f := newInviteFixture(t)
	seedCandidate(t, f.candidates, "c1")

	draft, err := f.svc.Draft(context.Background(), "c1", &dto.DraftInviteRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Error generating email. Please try manual composition.", draft.Body)
}

func TestInviteService_DraftUnknownCandidate(t *testing.T) {
	t.Parallel()
	f := newInviteFixture(t)

	_, err := f.svc.Draft(context.Background(), "ghost", &dto.DraftInviteRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCandidateNotFound)
}

func TestInviteService_SendRejectsEmptyBody(t *testing.T) {
	t.Parallel()
	f := newInviteFixture(t)
	seedCandidate(t, f.candidates, "c1")

	_, err := f.svc.Send(context.Background(), "admin1", "c1", &dto.SendInviteRequest{
		Body: "   \n ",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmptyEmailBody)
	assert.Empty(t, f.mailer.sent)
}

func TestInviteService_SendAutoVerifiesPendingCandidate(t *testing.T) {
	t.Parallel()
	f := newInviteFixture(t)
	ctx := context.Background()
	seedCandidate(t, f.candidates, "c1")

	profile, err := f.svc.Send(ctx, "admin1", "c1", &dto.SendInviteRequest{
		Body: "Dear Alice, we would like to invite you to an interview.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusVerified, profile.Status)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "c1@example.com", f.mailer.sent[0].To)
	assert.Equal(t, DefaultInviteSubject, f.mailer.sent[0].Subject)

	entries, err := f.activity.GetByUserID(ctx, "admin1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionInviteSent, entries[0].Action)
}

func TestInviteService_SendKeepsTriagedStatus(t *testing.T) {
	t.Parallel()
	f := newInviteFixture(t)
	ctx := context.Background()
	seedCandidate(t, f.candidates, "c1")

	_, err := f.candidates.UpdateStatus(ctx, "c1", models.CandidateStatusRejected)
	require.NoError(t, err)

	profile, err := f.svc.Send(ctx, "admin1", "c1", &dto.SendInviteRequest{
		Subject: "Second thoughts",
		Body:    "We reconsidered.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusRejected, profile.Status)
	assert.Equal(t, "Second thoughts", f.mailer.sent[0].Subject)
}

func TestInviteService_SendMailerFailure(t *testing.T) {
	t.Parallel()
	f := newInviteFixture(t)
	ctx := context.Background()
	seedCandidate(t, f.candidates, "c1")
	f.mailer.fail = true

	_, err := f.svc.Send(ctx, "admin1", "c1", &dto.SendInviteRequest{Body: "Hello"})
	require.Error(t, err)

	// Delivery failed, so the candidate stays PENDING.
	profile, getErr := f.candidates.GetByID(ctx, "c1")
	require.NoError(t, getErr)
	assert.Equal(t, models.CandidateStatusPending, profile.Status)
}
