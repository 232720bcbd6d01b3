// Package mailer sends the few emails the API produces: verification links
// and contact form messages for support.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/instaguard/instaguard/internal/logging"
)

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Mailer delivers messages.
//
// Contract:
//   - Send either hands the message to the transport or returns an error.
//     It does not retry.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

var sendMail = smtp.SendMail

// SMTPMailer sends through an SMTP relay with PLAIN auth. net/smtp
// upgrades to STARTTLS when the relay offers it.
type SMTPMailer struct {
	addr string
	host string
	user string
	pass string
	from string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		addr: net.JoinHostPort(host, strconv.Itoa(port)),
		host: host,
		user: user,
		pass: pass,
		from: from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var a smtp.Auth
	if m.user != "" {
		a = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := sendMail(m.addr, a, m.from, []string{msg.To}, compose(m.from, msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

func compose(from string, msg Message) []byte {
	contentType := "text/plain"
	if msg.HTML {
		contentType = "text/html"
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=\"utf-8\"\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return b.Bytes()
}

// LogMailer writes messages to the log instead of sending them. It is used
// when no SMTP host is configured.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(l logging.Logger) *LogMailer {
	return &LogMailer{logger: l}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info(ctx, "mail not sent, no SMTP host configured", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}
