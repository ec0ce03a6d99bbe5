// Package notify implements outbound notifications for contact form
// submissions. Delivery is fire-and-forget: failures are logged, never
// surfaced to the submitting client.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/db/models"
)

const (
	defaultAPIBaseURL = "https://api.telegram.org"
	requestTimeout    = 10 * time.Second
)

// Notifier delivers a contact submission to an external channel.
type Notifier interface {
	ContactSubmitted(submission *models.ContactSubmission)
}

// Telegram sends contact submissions to a Telegram chat via the bot API.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

var _ Notifier = (*Telegram)(nil)

// NewTelegram creates a Telegram notifier from config. Returns nil when the
// relay is disabled or not fully configured; a nil *Telegram is safe to use
// and delivers nothing.
func NewTelegram(cfg config.Telegram) *Telegram {
	if !cfg.Enabled || cfg.Token == "" || cfg.ChatID == "" {
		return nil
	}

	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	return &Telegram{
		token:   cfg.Token,
		chatID:  cfg.ChatID,
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// ContactSubmitted delivers the submission in a background goroutine.
// Errors are logged with the submission id for correlation.
func (t *Telegram) ContactSubmitted(submission *models.ContactSubmission) {
	if t == nil {
		return
	}

	go func() {
		if err := t.send(formatContactMessage(submission)); err != nil {
			log.Error().Err(err).
				Uint64("submissionID", submission.ID).
				Msg("failed to deliver contact notification")
		}
	}()
}

// send posts one message to the Telegram sendMessage endpoint.
func (t *Telegram) send(text string) error {
	body, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode telegram message")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build telegram request")
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach telegram api")
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("telegram api returned status %d", resp.StatusCode)
	}

	return nil
}

func formatContactMessage(submission *models.ContactSubmission) string {
	return fmt.Sprintf(
		"*New Contact Form Submission*\n\n*Name:* %s\n*Email:* %s\n*Subject:* %s\n*Message:* %s",
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
	)
}
