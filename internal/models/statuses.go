package models

type Role string
type CandidateStatus string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleHRAdmin   Role = "HR_ADMIN"

	CandidateStatusPending  CandidateStatus = "PENDING"
	CandidateStatusVerified CandidateStatus = "VERIFIED"
	CandidateStatusRejected CandidateStatus = "REJECTED"
)

// ValidCandidateStatus reports whether s is one of the known pipeline states.
func ValidCandidateStatus(s CandidateStatus) bool {
	switch s {
	case CandidateStatusPending, CandidateStatusVerified, CandidateStatusRejected:
		return true
	}
	return false
}
