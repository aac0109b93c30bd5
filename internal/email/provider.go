package email

// Provider sends plain outbound mail.
type Provider interface {
	Send(to, subject, body string) error
}
