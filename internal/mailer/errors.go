package mailer

import "errors"

var (
	ErrRenderingTemplate = errors.New("error rendering mail template")
	ErrSendingMail       = errors.New("error sending mail")
)
