package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// ESMSGateway sends brandname SMS through the eSMS REST API
type ESMSGateway struct {
	cfg    models.SMSConfig
	client *http.Client
}

// NewESMSGateway creates the eSMS gateway
func NewESMSGateway(cfg models.SMSConfig) *ESMSGateway {
	return &ESMSGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type esmsRequest struct {
	APIKey    string `json:"ApiKey"`
	Content   string `json:"Content"`
	Phone     string `json:"Phone"`
	SecretKey string `json:"SecretKey"`
	Brandname string `json:"Brandname"`
	SmsType   string `json:"SmsType"`
}

type esmsResponse struct {
	CodeResult   string `json:"CodeResult"`
	ErrorMessage string `json:"ErrorMessage"`
}

// Configured reports whether SMS credentials are present. Without them every
// send is logged and dropped.
func (g *ESMSGateway) Configured() bool {
	return g.cfg.APIKey != "" && g.cfg.SecretKey != ""
}

// SendSMS delivers one brandname message. CodeResult "100" is the provider's
// accepted code.
func (g *ESMSGateway) SendSMS(ctx context.Context, phone, message string) error {
	if !g.Configured() {
		return fmt.Errorf("%w: sms provider not configured", models.ErrProviderUnavailable)
	}

	body, err := json.Marshal(esmsRequest{
		APIKey:    g.cfg.APIKey,
		Content:   message,
		Phone:     phone,
		SecretKey: g.cfg.SecretKey,
		Brandname: g.cfg.BrandName,
		SmsType:   "2",
	})
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: sms request failed: %s", models.ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	var result esmsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: invalid sms response", models.ErrProviderUnavailable)
	}
	if result.CodeResult != "100" {
		return fmt.Errorf("%w: sms rejected: %s", models.ErrProviderUnavailable, result.ErrorMessage)
	}
	return nil
}
