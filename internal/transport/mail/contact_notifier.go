package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

// DefaultSendTimeout bounds one notification from dial to QUIT when the
// caller's context carries no earlier deadline.
const DefaultSendTimeout = 10 * time.Second

type sendFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// ContactNotifier e-mails the site operators when a contact message arrives.
type ContactNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       []string
	timeout  time.Duration

	send sendFunc
}

func NewContactNotifier(host, port, username, password, from string, to []string) *ContactNotifier {
	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	m := &ContactNotifier{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		to:       recipients,
		timeout:  DefaultSendTimeout,
	}
	m.send = m.sendMail
	return m
}

// Configured reports whether enough settings are present to send mail.
func (m *ContactNotifier) Configured() bool {
	return m != nil && m.host != "" && m.port != "" && m.from != "" && len(m.to) > 0
}

func (m *ContactNotifier) NotifyContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	if !m.Configured() {
		return errors.New("mailer missing configuration")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	body := buildContactMessage(m.from, m.to, msg)

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if err := m.send(ctx, addr, auth, m.from, m.to, body); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

// sendMail runs the SMTP exchange on a connection whose deadline follows
// ctx, so a silent server cannot hold the caller past it.
func (m *ContactNotifier) sendMail(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return withContextErr(ctx, err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return withContextErr(ctx, err)
		}
	}
	if auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(auth); err != nil {
				return withContextErr(ctx, err)
			}
		}
	}
	if err := c.Mail(from); err != nil {
		return withContextErr(ctx, err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return withContextErr(ctx, err)
		}
	}
	w, err := c.Data()
	if err != nil {
		return withContextErr(ctx, err)
	}
	if _, err := w.Write(msg); err != nil {
		return withContextErr(ctx, err)
	}
	if err := w.Close(); err != nil {
		return withContextErr(ctx, err)
	}
	return withContextErr(ctx, c.Quit())
}

// withContextErr reports the context error when it is what cut the
// connection short.
func withContextErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(ctxErr, err)
	}
	return err
}

func buildContactMessage(from string, to []string, msg *domain.ContactMessage) []byte {
	name := headerSafe(msg.Name)
	replyTo := headerSafe(msg.Email)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	if replyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&b, "Subject: New contact message from %s\r\n", name)
	fmt.Fprintf(&b, "Date: %s\r\n", msg.CreatedAt.UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\nReceived: %s\r\n\r\n", name, replyTo, msg.CreatedAt.UTC().Format(time.RFC3339))
	b.WriteString(crlf(msg.Message))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// crlf rewrites any mix of CRLF, bare CR and bare LF to CRLF.
func crlf(v string) string {
	v = strings.ReplaceAll(v, "\r\n", "\n")
	v = strings.ReplaceAll(v, "\r", "\n")
	return strings.ReplaceAll(v, "\n", "\r\n")
}

// headerSafe strips line breaks so user input cannot add headers.
func headerSafe(v string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(v))
}
