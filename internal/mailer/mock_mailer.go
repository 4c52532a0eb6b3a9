package mailer

import "sync"

// MockMailer records sent mails instead of dialing an SMTP server.
type MockMailer struct {
	mu   sync.Mutex
	Sent []SentMail
}

type SentMail struct {
	Recipient    string
	TemplateFile string
	Data         any
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, SentMail{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// SentMails returns a snapshot of everything sent so far.
func (m *MockMailer) SentMails() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]SentMail(nil), m.Sent...)
}

// Reset clears the recorded mails.
func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = nil
}
