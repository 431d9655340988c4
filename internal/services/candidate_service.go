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

// CandidateService covers profile reads and the admin triage listing.
type CandidateService interface {
	GetProfile(ctx context.Context, userID string) (*models.CandidateProfile, error)
	List(ctx context.Context, search string, status string) (*dto.CandidateListResponse, error)
	UpdateStatus(ctx context.Context, adminID, candidateID string, status string) (*models.CandidateProfile, error)
}

type candidateService struct {
	candidates repositories.CandidateRepository
	activity   repositories.ActivityRepository
}

func NewCandidateService(
	candidates repositories.CandidateRepository,
	activity repositories.ActivityRepository,
) CandidateService {
	return &candidateService{
		candidates: candidates,
		activity:   activity,
	}
}

func (s *candidateService) GetProfile(ctx context.Context, userID string) (*models.CandidateProfile, error) {
	profile, err := s.candidates.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrCandidateNotFound
	}
	return profile, nil
}

// List returns candidates filtered by a case-insensitive name or email
// substring and an optional exact pipeline status.
func (s *candidateService) List(ctx context.Context, search string, status string) (*dto.CandidateListResponse, error) {
	all, err := s.candidates.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if status == "ALL" {
		status = ""
	}

	filtered := make([]models.CandidateProfile, 0, len(all))
	for _, c := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		if status != "" && string(c.Status) != status {
			continue
		}
		filtered = append(filtered, c)
	}

	return &dto.CandidateListResponse{
		Candidates: filtered,
		Total:      len(filtered),
	}, nil
}

// UpdateStatus moves a candidate to VERIFIED or REJECTED. Unknown ids
// are a silent no-op and return the candidate as nil.
func (s *candidateService) UpdateStatus(ctx context.Context, adminID, candidateID string, status string) (*models.CandidateProfile, error) {
	target := models.CandidateStatus(status)
	if target != models.CandidateStatusVerified && target != models.CandidateStatusRejected {
		return nil, apperrors.ErrInvalidStatus
	}

	profile, err := s.candidates.UpdateStatus(ctx, candidateID, target)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		logger.CtxWarn(ctx, "status update for unknown candidate ignored", "candidate_id", candidateID)
		return nil, nil
	}

	entry := &models.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    adminID,
		Action:    models.ActionStatusChange,
		Timestamp: models.NowMillis(),
	}
	if err := s.activity.Save(ctx, entry); err != nil {
		logger.CtxWithError(ctx, "failed to record activity", err, "action", models.ActionStatusChange)
	}

	return profile, nil
}
