package dto

import "hrnexus_backend/internal/models"

// AuthResponse is returned from all login and registration endpoints.
type AuthResponse struct {
	User *models.User `json:"user"`
}

// CandidateListResponse wraps the admin dashboard listing.
type CandidateListResponse struct {
	Candidates []models.CandidateProfile `json:"candidates"`
	Total      int                       `json:"total"`
}

// DraftInviteResponse carries the generated email body.
type DraftInviteResponse struct {
	Body string `json:"body"`
}

// MessageResponse is a generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
