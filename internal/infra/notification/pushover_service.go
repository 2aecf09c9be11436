package notification

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chime/internal/domain/service"

	"github.com/pkg/errors"
)

const pushoverMessagesURL = "https://api.pushover.net/1/messages.json"

type pushoverService struct {
	token      string
	user       string
	httpClient *http.Client
}

// NewPushoverService creates a Notifier that delivers through the Pushover API.
func NewPushoverService(token, user string) service.Notifier {
	return &pushoverService{
		token: token,
		user:  user,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Notify sends a single Pushover message.
func (s *pushoverService) Notify(ctx context.Context, title, body string) error {
	params := url.Values{}
	params.Set("token", s.token)
	params.Set("user", s.user)
	params.Set("title", title)
	params.Set("message", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pushoverMessagesURL, strings.NewReader(params.Encode()))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)

		return errors.Errorf("pushover api error: status %s, body %s", resp.Status, string(respBody))
	}

	return nil
}
