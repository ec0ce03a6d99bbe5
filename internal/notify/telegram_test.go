package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/db/models"
)

func TestNewTelegramDisabled(t *testing.T) {
	testCases := []struct {
		name string
		cfg  config.Telegram
	}{
		{name: "disabled", cfg: config.Telegram{Enabled: false, Token: "t", ChatID: "c"}},
		{name: "missing token", cfg: config.Telegram{Enabled: true, ChatID: "c"}},
		{name: "missing chat id", cfg: config.Telegram{Enabled: true, Token: "t"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := NewTelegram(tc.cfg)
			assert.Nil(t, notifier)

			// a nil notifier must be safe to call
			notifier.ContactSubmitted(&models.ContactSubmission{ID: 1})
		})
	}
}

func TestTelegramSend(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]string
	)

	received := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.WriteHeader(http.StatusOK)
		close(received)
	}))
	defer srv.Close()

	notifier := NewTelegram(config.Telegram{
		Enabled:    true,
		Token:      "test-token",
		ChatID:     "12345",
		APIBaseURL: srv.URL,
	})
	require.NotNil(t, notifier)

	notifier.ContactSubmitted(&models.ContactSubmission{
		ID:      7,
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "We need a new site.",
	})

	<-received

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotBody["chat_id"])
	assert.Equal(t, "Markdown", gotBody["parse_mode"])
	assert.True(t, strings.Contains(gotBody["text"], "jane@example.com"))
	assert.True(t, strings.Contains(gotBody["text"], "Project inquiry"))
}
