package dto

// RegisterCandidateRequest is the candidate sign-up payload.
type RegisterCandidateRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	CountryCode string `json:"countryCode" validate:"omitempty,max=8"`
}

// LoginCandidateRequest is the candidate sign-in payload.
type LoginCandidateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterAdminRequest is the HR admin sign-up payload. AccessCode must
// match the configured master code.
type RegisterAdminRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	AccessCode string `json:"accessCode" validate:"required"`
}

// LoginAdminRequest is the HR admin sign-in payload.
type LoginAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateStatusRequest moves a candidate through the pipeline.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UploadCVRequest carries one resume document. Content is a data URI.
type UploadCVRequest struct {
	FileName string `json:"fileName" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// DraftInviteRequest asks for an AI-generated invitation draft.
type DraftInviteRequest struct {
	RoleTitle string `json:"roleTitle" validate:"omitempty,max=100"`
}

// SendInviteRequest delivers an interview invitation.
type SendInviteRequest struct {
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Body    string `json:"body"`
}
