package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/repositories"
)

// CVService handles resume uploads and retrieval.
type CVService interface {
	Upload(ctx context.Context, candidateID string, req *dto.UploadCVRequest) (*models.CVMetadata, error)
	GetForCandidate(ctx context.Context, candidateID string) (*models.CVMetadata, error)
}

type cvService struct {
	cvs        repositories.CVRepository
	candidates repositories.CandidateRepository
	activity   repositories.ActivityRepository
}

func NewCVService(
	cvs repositories.CVRepository,
	candidates repositories.CandidateRepository,
	activity repositories.ActivityRepository,
) CVService {
	return &cvService{
		cvs:        cvs,
		candidates: candidates,
		activity:   activity,
	}
}

// isPDF accepts PDF data URIs and .pdf file names. Everything else is
// rejected before anything is stored.
func isPDF(req *dto.UploadCVRequest) bool {
	if strings.HasPrefix(req.Content, "data:application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(req.FileName), ".pdf")
}

// Upload stores the document and repoints the candidate's profile at
// it. Earlier uploads stay in the collection; the profile only ever
// references the latest.
func (s *cvService) Upload(ctx context.Context, candidateID string, req *dto.UploadCVRequest) (*models.CVMetadata, error) {
	if !isPDF(req) {
		return nil, apperrors.ErrInvalidFileType
	}

	profile, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	cv := &models.CVMetadata{
		ID:          uuid.New().String(),
		CandidateID: candidateID,
		FileName:    req.FileName,
		UploadDate:  models.NowMillis(),
		Content:     req.Content,
	}

	if err := s.cvs.Save(ctx, cv); err != nil {
		return nil, err
	}

	profile.CVUrl = cv.ID
	profile.CVFileName = cv.FileName
	profile.Touch()

	if err := s.candidates.Save(ctx, profile); err != nil {
		return nil, err
	}

	entry := &models.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    candidateID,
		Action:    models.ActionCVUpload,
		Timestamp: models.NowMillis(),
	}
	if err := s.activity.Save(ctx, entry); err != nil {
		logger.CtxWithError(ctx, "failed to record activity", err, "action", models.ActionCVUpload)
	}

	logger.CtxInfo(ctx, "cv uploaded", "candidate_id", candidateID, "cv_id", cv.ID)
	return cv, nil
}

// GetForCandidate resolves the candidate's current document through the
// profile pointer, falling back to the first document filed under the
// candidate id for profiles written before the pointer existed.
func (s *cvService) GetForCandidate(ctx context.Context, candidateID string) (*models.CVMetadata, error) {
	profile, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	if profile.CVUrl != "" {
		cv, err := s.cvs.GetByID(ctx, profile.CVUrl)
		if err != nil {
			return nil, err
		}
		if cv != nil {
			return cv, nil
		}
	}

	cvs, err := s.cvs.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if len(cvs) == 0 {
		return nil, apperrors.ErrCVNotFound
	}

	cv := cvs[0]
	return &cv, nil
}
