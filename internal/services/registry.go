package services

import (
	"hrnexus_backend/internal/config"
	"hrnexus_backend/internal/email"
	"hrnexus_backend/internal/llm"
	"hrnexus_backend/internal/repositories"
	"hrnexus_backend/internal/session"
)

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	Auth      AuthService
	Candidate CandidateService
	CV        CVService
	Invite    InviteService
}

// NewServiceContainer wires the service layer.
func NewServiceContainer(
	cfg *config.Config,
	users repositories.UserRepository,
	candidates repositories.CandidateRepository,
	cvs repositories.CVRepository,
	activity repositories.ActivityRepository,
	sessions *session.Manager,
) *ServiceContainer {
	composer := llm.NewClient(cfg.LLM)
	mailer := email.NewProvider(cfg.Email)

	return &ServiceContainer{
		Auth:      NewAuthService(cfg.Admin, users, candidates, activity, sessions),
		Candidate: NewCandidateService(candidates, activity),
		CV:        NewCVService(cvs, candidates, activity),
		Invite:    NewInviteService(candidates, activity, composer, mailer),
	}
}
