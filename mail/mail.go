package mail

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type Sender interface {
	Send(to string, subject string, htmlBody string) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username string, password string, from string) Sender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to string, subject string, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// ResetEmail wraps the reset link in the storefront's email chrome.
func ResetEmail(frontendURL string, resetToken string) string {
	link := fmt.Sprintf("%s/reset?resetToken=%s", frontendURL, html.EscapeString(resetToken))
	return fmt.Sprintf(`
	<div style="border: 1px solid black; padding: 20px; font-family: sans-serif; line-height: 2; font-size: 20px;">
		<h2>Hello There!</h2>
		<p>Your password reset token is here!</p>
		<p><a href="%s">Click here to reset your password</a></p>
		<p>The link is valid for one hour.</p>
	</div>`, link)
}
