package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// WebhookNotifier posts completed validation records to an external webhook
// (warehouse dashboard, spreadsheet bridge). It implements
// validation.Notifier; failures are the reconciler's to log, never to
// propagate.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a notifier posting to the given URL.
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, record *model.ValidationRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding validation record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting validation webhook: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// LogNotifier writes a structured summary of each validation to the service
// log. Useful as the only notifier in environments without a webhook.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a notifier writing to the given logger.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, record *model.ValidationRecord) error {
	n.log.Info().
		Str("order", record.ReferenceOrderID).
		Int("predicted_pallets", record.PredictedPallets).
		Int("actual_pallets", record.ActualPallets).
		Float64("weight_delta", record.Variance.WeightDelta).
		Bool("exact", record.Variance.Exact).
		Str("validated_by", record.ValidatedBy).
		Msg("shipment validation")
	return nil
}
