package models

// CVMetadata is one uploaded resume document. Content holds the file
// as a data URI (data:application/pdf;base64,...).
type CVMetadata struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidateId"`
	FileName    string `json:"fileName"`
	UploadDate  int64  `json:"uploadDate"`
	Content     string `json:"content"`
}
