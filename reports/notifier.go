package reports

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type Summary struct {
	Filename   string    `json:"filename"`
	OrderCount int       `json:"order_count"`
	TotalCents int64     `json:"total_cents"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

type Notifier interface {
	Notify(ctx context.Context, summary Summary) error
}

// WebhookNotifier POSTs the day-end summary as JSON.
type WebhookNotifier struct {
	url    string
	client *resty.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, summary Summary) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(summary).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("post day-end summary: %w", err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("day-end webhook answered %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
