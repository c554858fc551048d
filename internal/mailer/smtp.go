package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SMTPSender delivers mail through an authenticated SMTP relay
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates an SMTP sender using PLAIN auth
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sendMail: smtp.SendMail,
	}
}

// Send implements Sender. net/smtp has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	envelopeFrom := msg.From
	if addr, err := mail.ParseAddress(msg.From); err == nil {
		envelopeFrom = addr.Address
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	body := buildMIME(id, msg)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	if err := s.sendMail(addr, auth, envelopeFrom, msg.To, body); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return id, nil
}

func buildMIME(messageID string, msg *Message) []byte {
	boundary := "----=_Part_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	var b strings.Builder
	to := make([]string, len(msg.To))
	for i, addr := range msg.To {
		to[i] = formatAddress(addr)
	}
	fmt.Fprintf(&b, "From: %s\r\n", formatAddress(msg.From))
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", formatAddress(msg.ReplyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", headerSafe(msg.Subject)))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.Text + "\r\n")

	if msg.HTML != "" {
		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		b.WriteString(msg.HTML + "\r\n")
	}

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

// formatAddress renders an address header value, RFC 2047 encoding a
// non-ASCII display name.
func formatAddress(v string) string {
	addr, err := mail.ParseAddress(headerSafe(v))
	if err != nil {
		return mime.QEncoding.Encode("utf-8", headerSafe(v))
	}
	return addr.String()
}
