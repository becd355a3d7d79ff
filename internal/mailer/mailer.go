// Package mailer delivers the transactional mails of the auth flows:
// email verification, password reset and class invitations.
//
// [NewMailer] returns an SMTP-backed [Mailer] when a relay host is
// configured and one that only logs recipients and subjects otherwise.
package mailer

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
)

// Mailer sends rendered messages to a single recipient.
type Mailer interface {
	SendVerification(ctx context.Context, to, rawToken string) error
	SendPasswordReset(ctx context.Context, to, rawToken string) error
	SendInvitation(ctx context.Context, to, inviteToken string) error
}

// Transport delivers one HTML message.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a rendered mail.
type Message struct {
	To      string
	Subject string
	HTML    string
}

type mailer struct {
	transport  Transport
	serverURL  string
	appBaseURL string
}

// NewMailer builds a [Mailer] over SMTP when cfg.Mail.Host is set and over the
// log otherwise.
func NewMailer(cfg config.StructuredConfig, log *logger.Logger) Mailer {
	var transport Transport
	if cfg.Mail.Host == "" {
		log.Warn().Msg("mail host is not configured, mails will only be logged")
		transport = NewLogTransport()
	} else {
		transport = NewSMTPTransport(cfg.Mail)
	}

	return New(transport, cfg.App.ServerURL, cfg.App.AppBaseURL)
}

// New builds a [Mailer] that renders links against serverURL (verification)
// and appBaseURL (reset and invitation pages).
func New(transport Transport, serverURL, appBaseURL string) Mailer {
	return &mailer{
		transport:  transport,
		serverURL:  strings.TrimRight(serverURL, "/"),
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

func (m *mailer) SendVerification(ctx context.Context, to, rawToken string) error {
	link := m.serverURL + "/api/verify?token=" + url.QueryEscape(rawToken)
	return m.send(ctx, to, verificationTemplate, link)
}

func (m *mailer) SendPasswordReset(ctx context.Context, to, rawToken string) error {
	link := m.appBaseURL + "/reset?token=" + url.QueryEscape(rawToken)
	return m.send(ctx, to, resetTemplate, link)
}

func (m *mailer) SendInvitation(ctx context.Context, to, inviteToken string) error {
	link := m.appBaseURL + "/join?token=" + url.QueryEscape(inviteToken)
	return m.send(ctx, to, invitationTemplate, link)
}

func (m *mailer) send(ctx context.Context, to string, tpl mailTemplate, link string) error {
	html, err := tpl.render(link)
	if err != nil {
		return err
	}

	return m.transport.Send(ctx, Message{
		To:      to,
		Subject: tpl.subject,
		HTML:    html,
	})
}
