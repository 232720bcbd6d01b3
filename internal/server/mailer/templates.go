package mailer

import (
	"fmt"
	"strings"
)

const verificationBody = `<html>
<body>
    <h3>Hello!</h3>
    <p>Thanks for registering on <b>InstaGuard</b>.</p>
    <p>Please click the button below to verify your email:</p>
    <a href="%s" style="padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none;">Verify Email</a>
    <p>If you didn't create this account, please ignore this email.</p>
</body>
</html>`

// Verification is the email sent after signup. baseURL is where
// /verify-email is served.
func Verification(to, baseURL, token string) Message {
	link := strings.TrimRight(baseURL, "/") + "/verify-email/" + token
	return Message{
		To:      to,
		Subject: "Verify your email - InstaGuard",
		Body:    fmt.Sprintf(verificationBody, link),
		HTML:    true,
	}
}

// Support forwards a contact form submission to the support inbox.
func Support(to, name, email, message string) Message {
	return Message{
		To:      to,
		Subject: "User Support",
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\nMessage:\n%s", name, email, message),
	}
}
