// Package mail formats and delivers the order notification emails: one to
// the store operator, one to the customer. Delivery is best-effort;
// failures are logged and never propagated to the triggering request.
package mail

import (
	"context"
	"sync"

	gomail "gopkg.in/gomail.v2"
)

// Message is a single outbound HTML email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer is the transport port. The SMTP implementation is used in
// production; tests substitute Capture.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

var _ Mailer = (*SMTPMailer)(nil)

// SMTPMailer delivers messages over SMTP via gomail. A fresh connection is
// dialed per send; order volume does not justify connection pooling.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, username, password)}
}

func (s *SMTPMailer) Send(_ context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return s.dialer.DialAndSend(m)
}

var _ Mailer = (*Capture)(nil)

// Capture is a Mailer that records messages instead of sending them.
type Capture struct {
	mu   sync.Mutex
	sent []Message

	// Fail, when non-nil, is returned from every Send call.
	Fail error
}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Send(_ context.Context, msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return c.Fail
	}
	c.sent = append(c.sent, msg)
	return nil
}

// Sent returns a copy of every captured message in send order.
func (c *Capture) Sent() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.sent))
	copy(out, c.sent)
	return out
}
