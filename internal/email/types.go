package email

// Email is one outgoing message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}
