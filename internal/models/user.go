package models

// User is the identity record shared by candidates and HR admins.
// ID is generated at creation and never changes; Email is the natural
// lookup key (uniqueness is enforced by the user repository).
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Phone       string `json:"phone,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}
