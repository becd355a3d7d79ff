package mailer

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
)

// sendMailFunc matches [smtp.SendMail].
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPTransport relays mail through an SMTP server with STARTTLS and PLAIN
// auth when credentials are configured.
type SMTPTransport struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

func NewSMTPTransport(cfg config.Mail) *SMTPTransport {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTPTransport{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
	}
}

func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := t.sendMail(t.addr, t.auth, t.from, []string{msg.To}, buildMessage(t.from, msg)); err != nil {
		log.Err(err).Str("func", "*SMTPTransport.Send").Str("subject", msg.Subject).Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	log.Debug().Str("func", "*SMTPTransport.Send").Str("subject", msg.Subject).Msg("mail sent")
	return nil
}

func buildMessage(from string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}

// LogTransport records that a mail would have been sent. The body carries
// raw tokens and is never logged.
type LogTransport struct{}

func NewLogTransport() *LogTransport {
	return &LogTransport{}
}

func (t *LogTransport) Send(ctx context.Context, msg Message) error {
	logger.FromContext(ctx).Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("mail delivery disabled, message dropped")
	return nil
}
