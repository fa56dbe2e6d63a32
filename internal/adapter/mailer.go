package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/harborline/moorage/internal/config"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/utils"
)

// mailAddress is one addressee in the provider's wire format.
type mailAddress struct {
	Email string `json:"email"`
}

// mailContent is one body part of an outgoing message.
type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// mailPersonalization groups recipients of one message.
type mailPersonalization struct {
	To []mailAddress `json:"to"`
}

// mailSendRequest is the payload of POST /v3/mail/send.
type mailSendRequest struct {
	Personalizations []mailPersonalization `json:"personalizations"`
	From             mailAddress           `json:"from"`
	Subject          string                `json:"subject"`
	Content          []mailContent         `json:"content"`
}

// sendGridNotifier is a [Notifier] backed by the SendGrid v3 mail API.
type sendGridNotifier struct {
	client *utils.HTTPClient
	sender string
	logger *logger.Logger
}

// NewSendGridNotifier constructs a [Notifier] that delivers mail through the
// SendGrid v3 REST API. The API key is attached as a bearer token on every
// request. Returns an error if the base URL or API key is empty.
func NewSendGridNotifier(cfg config.Mail, logger *logger.Logger) (Notifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("mail gateway: empty base URL")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("mail gateway: empty API key")
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey)

	return &sendGridNotifier{client: client, sender: cfg.Sender, logger: logger}, nil
}

// SendActivationCode implements [Notifier].
func (n *sendGridNotifier) SendActivationCode(ctx context.Context, email, code string) error {
	return n.send(ctx, email,
		"Confirm your account",
		fmt.Sprintf("Your activation code is %s. It expires in 15 minutes.", code),
	)
}

// SendResetCode implements [Notifier].
func (n *sendGridNotifier) SendResetCode(ctx context.Context, email, code string) error {
	return n.send(ctx, email,
		"Reset your password",
		fmt.Sprintf("Your password reset code is %s. It expires in 15 minutes.", code),
	)
}

func (n *sendGridNotifier) send(ctx context.Context, to, subject, text string) error {
	log := logger.FromContext(ctx)

	payload := mailSendRequest{
		Personalizations: []mailPersonalization{{To: []mailAddress{{Email: to}}}},
		From:             mailAddress{Email: n.sender},
		Subject:          subject,
		Content:          []mailContent{{Type: "text/plain", Value: text}},
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v3/mail/send")
	if err != nil {
		log.Err(err).Str("func", "*sendGridNotifier.send").Msg("mail request failed")
		return fmt.Errorf("%w: %s", ErrNotificationFailed, err)
	}

	// SendGrid answers 202 Accepted on success
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		log.Error().
			Str("func", "*sendGridNotifier.send").
			Int("status", resp.StatusCode()).
			Msg("mail provider rejected the message")
		return fmt.Errorf("%w: http %d: %s", ErrNotificationFailed, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	return nil
}
