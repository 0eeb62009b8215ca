package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordEmail(t *testing.T) {
	url := ResetURL("https://app.uptraa.test/", "abc.def.ghi")
	assert.Equal(t, "https://app.uptraa.test/reset/abc.def.ghi", url)

	html, err := ForgotPasswordEmail("<Ann>", url)
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://app.uptraa.test/reset/abc.def.ghi"`)
	assert.Contains(t, html, "Hello &lt;Ann&gt;,")
	assert.NotContains(t, html, "<Ann>")
}

func TestSMTPSenderRejectsEmptyRecipient(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 2525, From: "Uptraa <noreply@uptraa.test>"})
	err := s.Send(context.Background(), Message{Subject: "x", HTML: "y"})
	require.EqualError(t, err, "no recipients specified")
}
