package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
	"hrnexus_backend/internal/repositories"
)

type cvFixture struct {
	svc        CVService
	candidates repositories.CandidateRepository
	cvs        repositories.CVRepository
}

func newCVFixture(t *testing.T) *cvFixture {
	t.Helper()
	store := recordstore.NewMemoryStore()
	candidates := repositories.NewCandidateRepository(store)
	cvs := repositories.NewCVRepository(store)
	activity := repositories.NewActivityRepository(store)

	return &cvFixture{
		svc:        NewCVService(cvs, candidates, activity),
		candidates: candidates,
		cvs:        cvs,
	}
}

func seedCandidate(t *testing.T, repo repositories.CandidateRepository, id string) *models.CandidateProfile {
	t.Helper()
	c := &models.CandidateProfile{
		User: models.User{
			ID:        id,
			Name:      "Alice",
			Email:     id + "@example.com",
			Role:      models.RoleCandidate,
			CreatedAt: models.NowMillis(),
		},
		Status: models.CandidateStatusPending,
	}
	c.Touch()
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func TestCVService_UploadRejectsNonPDF(t *testing.T) {
	t.Parallel()
	f := newCVFixture(t)
	seedCandidate(t, f.candidates, "c1")

	_, err := f.svc.Upload(context.Background(), "c1", &dto.UploadCVRequest{
		FileName: "resume.docx",
		Content:  "data:application/msword;base64,AAAA",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestCVService_UploadRepointsProfile(t *testing.T) {
	t.Parallel()
	f := newCVFixture(t)
	ctx := context.Background()
	before := seedCandidate(t, f.candidates, "c1")

	cv, err := f.svc.Upload(ctx, "c1", &dto.UploadCVRequest{
		FileName: "resume.pdf",
		Content:  "data:application/pdf;base64,JVBERi0xLjQ=",
	})
	require.NoError(t, err)
	require.NotEmpty(t, cv.ID)

	profile, err := f.candidates.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, cv.ID, profile.CVUrl)
	assert.Equal(t, "resume.pdf", profile.CVFileName)
	assert.Greater(t, profile.LastUpdated, before.LastUpdated)
}

func TestCVService_ReUploadKeepsEarlierDocuments(t *testing.T) {
	t.Parallel()
	f := newCVFixture(t)
	ctx := context.Background()
	seedCandidate(t, f.candidates, "c1")

	first, err := f.svc.Upload(ctx, "c1", &dto.UploadCVRequest{
		FileName: "v1.pdf", Content: "data:application/pdf;base64,AQ==",
	})
	require.NoError(t, err)

	second, err := f.svc.Upload(ctx, "c1", &dto.UploadCVRequest{
		FileName: "v2.pdf", Content: "data:application/pdf;base64,Ag==",
	})
	require.NoError(t, err)

	all, err := f.cvs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// The profile points at the latest upload only.
	profile, err := f.candidates.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, profile.CVUrl)
	assert.NotEqual(t, first.ID, profile.CVUrl)
}

func TestCVService_GetForCandidate(t *testing.T) {
	t.Parallel()
	f := newCVFixture(t)
	ctx := context.Background()
	seedCandidate(t, f.candidates, "c1")

	uploaded, err := f.svc.Upload(ctx, "c1", &dto.UploadCVRequest{
		FileName: "resume.pdf", Content: "data:application/pdf;base64,AQ==",
	})
	require.NoError(t, err)

	got, err := f.svc.GetForCandidate(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, uploaded.ID, got.ID)
}

func TestCVService_GetForCandidateFallsBackToCandidateID(t *testing.T) {
	t.Parallel()
	f := newCVFixture(t)
	ctx := context.Background()
	seedCandidate(t, f.candidates, "c1")

	// A document filed before profiles carried the pointer.
	legacy := &models.CVMetadata{
		ID:          "legacy-cv",
		CandidateID: "c1",
		FileName:    "old.pdf",
		UploadDate:  models.NowMillis(),
	}
	require.NoError(t, f.cvs.Save(ctx, legacy))

	got, err := f.svc.GetForCandidate(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "legacy-cv", got.ID)
}

func TestCVService_GetForCandidateNoCV(t *testing.T) {
	t.Parallel()
	f := newCVFixture(t)
	seedCandidate(t, f.candidates, "c1")

	_, err := f.svc.GetForCandidate(context.Background(), "c1")
	assert.ErrorIs(t, err, apperrors.ErrCVNotFound)
}

func TestCVService_UnknownCandidate(t *testing.T) {
	t.Parallel()
	f := newCVFixture(t)

	_, err := f.svc.Upload(context.Background(), "ghost", &dto.UploadCVRequest{
		FileName: "resume.pdf", Content: "data:application/pdf;base64,AQ==",
	})
	assert.ErrorIs(t, err, apperrors.ErrCandidateNotFound)
}
