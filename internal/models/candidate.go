package models

// CandidateProfile is the pipeline view of a candidate: the identity
// fields plus triage state and resume pointers. CVUrl holds the id of
// the current document in the CV collection, not a location.
type CandidateProfile struct {
	User

	Status      CandidateStatus `json:"status"`
	CVUrl       string          `json:"cvUrl,omitempty"`
	CVFileName  string          `json:"cvFileName,omitempty"`
	LastUpdated int64           `json:"lastUpdated"`
}

// Touch advances LastUpdated. The value is strictly increasing even
// when the wall clock has not moved since the previous change, so
// pollers comparing markers always observe the write.
func (c *CandidateProfile) Touch() {
	now := NowMillis()
	if now <= c.LastUpdated {
		now = c.LastUpdated + 1
	}
	c.LastUpdated = now
}
