package email

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}
