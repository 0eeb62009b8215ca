package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// ForgotPasswordSubject is the subject line of reset emails.
const ForgotPasswordSubject = "Reset Your Password - Uptraa"

var forgotPasswordTmpl = template.Must(template.New("forgot-password").Parse(`
    <h1>Uptraa - Reset Password</h1>
    <p>Hello {{.Name}},</p>
    <p>You are receiving this email because you (or someone else) have requested a password reset for your account.</p>
    <p>Please click the button below to reset your password:</p>
    <a href="{{.ResetURL}}" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Reset Password</a><br><br>
    <p>If you did not request a password reset, please ignore this email.</p>
    <p>Thank you!</p>
    <p>Best regards,</p>
    <p>Uptraa Team</p>
`))

// ResetURL is the frontend page that accepts token.
func ResetURL(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/reset/" + token
}

// ForgotPasswordEmail renders the reset email body.
func ForgotPasswordEmail(name, resetURL string) (string, error) {
	var buf strings.Builder
	err := forgotPasswordTmpl.Execute(&buf, struct {
		Name     string
		ResetURL string
	}{name, resetURL})
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
