package mail

import (
	"errors"
	"strings"
	"sync"

	"gopkg.in/gomail.v2"
)

// ErrBadMessage is returned when an outgoing message is malformed, for
// example a header field containing a newline. Callers treat sending as
// best-effort and swallow it.
var ErrBadMessage = errors.New("malformed mail message")

// Message is an outbound notification email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Validate rejects messages whose header fields would be malformed.
func (m Message) Validate() error {
	if m.To == "" || m.From == "" {
		return ErrBadMessage
	}
	for _, field := range []string{m.From, m.To, m.Subject} {
		if strings.ContainsAny(field, "\r\n") {
			return ErrBadMessage
		}
	}
	return nil
}

// Mailer sends notification emails.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer sends messages through an SMTP server.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers the message over SMTP.
func (s *SMTPMailer) Send(msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	return s.dialer.DialAndSend(m)
}

// Recorder is a Mailer that keeps sent messages in memory. Tests use it
// as the outbox inspection point.
type Recorder struct {
	mutex    sync.Mutex
	messages []Message
}

// NewRecorder creates a new Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Send records the message after validating it.
func (r *Recorder) Send(msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

// Messages returns a copy of the recorded outbox.
func (r *Recorder) Messages() []Message {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
