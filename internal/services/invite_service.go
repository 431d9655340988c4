package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/email"
	"hrnexus_backend/internal/llm"
	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/repositories"
)

// DefaultRoleTitle is used for drafts when no role is given.
const DefaultRoleTitle = "Fullstack Developer"

// DefaultInviteSubject is used for sends with no subject.
const DefaultInviteSubject = "Interview Invitation - TechNexus Solutions"

// Fallback bodies returned to the drafting UI. Draft never surfaces
// generation failures as errors; admins edit the fallback by hand.
const (
	fallbackEmptyDraft  = "Failed to generate email content."
	fallbackFailedDraft = "Error generating email. Please try manual composition."
)

// InviteService drafts and sends interview invitations.
type InviteService interface {
	Draft(ctx context.Context, candidateID string, req *dto.DraftInviteRequest) (*dto.DraftInviteResponse, error)
	Send(ctx context.Context, adminID, candidateID string, req *dto.SendInviteRequest) (*models.CandidateProfile, error)
}

type inviteService struct {
	candidates repositories.CandidateRepository
	activity   repositories.ActivityRepository
	composer   *llm.Client
	mailer     email.Provider
}

func NewInviteService(
	candidates repositories.CandidateRepository,
	activity repositories.ActivityRepository,
	composer *llm.Client,
	mailer email.Provider,
) InviteService {
	return &inviteService{
		candidates: candidates,
		activity:   activity,
		composer:   composer,
		mailer:     mailer,
	}
}

// Draft asks the model for an invitation body. Generation failures are
// mapped to fixed fallback text so the drafting flow always completes;
// only an unknown candidate is an error.
func (s *inviteService) Draft(ctx context.Context, candidateID string, req *dto.DraftInviteRequest) (*dto.DraftInviteResponse, error) {
	profile, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	roleTitle := strings.TrimSpace(req.RoleTitle)
	if roleTitle == "" {
		roleTitle = DefaultRoleTitle
	}

	body, err := s.composer.ComposeInterviewEmail(ctx, profile.Name, roleTitle)
	if err != nil {
		logger.CtxWithError(ctx, "invite draft generation failed", err, "candidate_id", candidateID)
		return &dto.DraftInviteResponse{Body: fallbackFailedDraft}, nil
	}
	if body == "" {
		return &dto.DraftInviteResponse{Body: fallbackEmptyDraft}, nil
	}

	return &dto.DraftInviteResponse{Body: body}, nil
}

// Send delivers the invitation and moves a PENDING candidate to
// VERIFIED. Candidates already triaged keep their status.
func (s *inviteService) Send(ctx context.Context, adminID, candidateID string, req *dto.SendInviteRequest) (*models.CandidateProfile, error) {
	profile, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, apperrors.ErrEmptyEmailBody
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = DefaultInviteSubject
	}

	msg := &email.Message{
		To:      profile.Email,
		Subject: subject,
		Body:    body,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, apperrors.ExternalServiceError(err, "Failed to send invitation email")
	}

	if profile.Status == models.CandidateStatusPending {
		updated, err := s.candidates.UpdateStatus(ctx, candidateID, models.CandidateStatusVerified)
		if err != nil {
			return nil, err
		}
		if updated != nil {
			profile = updated
		}
	}

	entry := &models.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    adminID,
		Action:    models.ActionInviteSent,
		Timestamp: models.NowMillis(),
	}
	if err := s.activity.Save(ctx, entry); err != nil {
		logger.CtxWithError(ctx, "failed to record activity", err, "action", models.ActionInviteSent)
	}

	logger.CtxInfo(ctx, "invitation sent", "candidate_id", candidateID, "admin_id", adminID)
	return profile, nil
}
