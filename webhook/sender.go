// Package webhook delivers scraped article records to the configured
// destination endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"vemabot/config"
	"vemabot/types"
)

// Sender posts article records to one destination URL. It performs no
// retries; a failed delivery is counted and reported, never repeated.
type Sender struct {
	hookURL string
	client  *http.Client
}

// NewSender creates a sender for hookURL with the given per-request
// timeout.
func NewSender(hookURL string, timeout time.Duration) *Sender {
	if timeout <= 0 {
		timeout = config.ArticleTimeout
	}
	return &Sender{
		hookURL: hookURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SendEach posts one JSON object per record and reports how many
// succeeded and how many failed. A single failed delivery does not
// abort the remaining ones.
func (s *Sender) SendEach(ctx context.Context, articles []types.Article) (sent, failed int) {
	for _, article := range articles {
		if err := s.post(ctx, article); err != nil {
			log.Printf("✗ delivery failed for %q: %v", article.Title, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

// SendBatch posts all records as a single batch payload. The batch
// succeeds or fails atomically.
func (s *Sender) SendBatch(ctx context.Context, articles []types.Article) error {
	return s.post(ctx, types.NewBatchPayload(articles))
}

// post serializes payload and POSTs it to the destination. Any non-2xx
// response counts as a failure.
func (s *Sender) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.hookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
