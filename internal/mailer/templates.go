package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

type mailTemplate struct {
	subject string
	body    *template.Template
}

var (
	verificationTemplate = mailTemplate{
		subject: "Confirm your LMS account",
		body: template.Must(template.New("verification").Parse(
			`<p>Welcome to LMS! Please verify your email:</p>
<a href="{{.Link}}">{{.Link}}</a>`)),
	}

	resetTemplate = mailTemplate{
		subject: "Reset your LMS password",
		body: template.Must(template.New("reset").Parse(
			`<p>Reset your LMS password by clicking:</p>
<a href="{{.Link}}">{{.Link}}</a>
<p>The link expires in one hour. If you did not ask for a reset, ignore this mail.</p>`)),
	}

	invitationTemplate = mailTemplate{
		subject: "You're invited to join a class on LMS",
		body: template.Must(template.New("invitation").Parse(
			`<p>Hi there,</p>
<p>You've been invited to join a class on LMS. Click below to accept:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>If you don't have an account yet, you'll be prompted to sign up.</p>`)),
	}
)

func (t mailTemplate) render(link string) (string, error) {
	var buf bytes.Buffer
	if err := t.body.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}
	return buf.String(), nil
}
