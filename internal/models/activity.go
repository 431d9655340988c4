package models

// Audit actions recorded by the services.
const (
	ActionRegister     = "REGISTER"
	ActionLogin        = "LOGIN"
	ActionLogout       = "LOGOUT"
	ActionStatusChange = "STATUS_CHANGE"
	ActionCVUpload     = "CV_UPLOAD"
	ActionInviteSent   = "INVITE_SENT"
)

// ActivityLog is one audit trail entry.
type ActivityLog struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}
