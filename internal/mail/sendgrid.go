package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"financial-saver-go/internal/config"
)

const sendGridURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridClient dispatches transactional email. Any non-2xx response is an
// error so callers can surface failed delivery instead of pretending success.
type SendGridClient struct {
	cfg  *config.Config
	http *http.Client
}

func NewSendGridClient(cfg *config.Config) *SendGridClient {
	return &SendGridClient{cfg: cfg, http: &http.Client{}}
}

func (c *SendGridClient) Send(ctx context.Context, to, subject, text, html string) error {
	if c.cfg.SendGridKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY missing")
	}

	content := []map[string]string{
		{"type": "text/plain", "value": text},
	}
	if html != "" {
		content = append(content, map[string]string{"type": "text/html", "value": html})
	}

	body := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": to}}, "subject": subject},
		},
		"from": map[string]string{
			"email": c.cfg.SendGridFrom,
			"name":  c.cfg.SendGridName,
		},
		"content": content,
	}

	b, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, "POST", sendGridURL, bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.cfg.SendGridKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		bs, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid error: %s", string(bs))
	}
	return nil
}
