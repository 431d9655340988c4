package handlers

import (
	"hrnexus_backend/internal/services"
	"hrnexus_backend/internal/session"
	"hrnexus_backend/internal/validator"
)

// AppHandlers bundles all handlers for route registration.
type AppHandlers struct {
	Auth      *AuthHandler
	Candidate *CandidateHandler
	Admin     *AdminHandler
}

// NewAppHandlers wires the handler layer.
func NewAppHandlers(v *validator.Validator, svcs *services.ServiceContainer, sessions *session.Manager) *AppHandlers {
	return &AppHandlers{
		Auth:      NewAuthHandler(v, svcs.Auth, sessions),
		Candidate: NewCandidateHandler(v, svcs.Candidate, svcs.CV),
		Admin:     NewAdminHandler(v, svcs.Candidate, svcs.CV, svcs.Invite),
	}
}
