package gateway

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/payment"
)

// ZaloPayGateway talks to the ZaloPay gateway API
type ZaloPayGateway struct {
	cfg         models.ZaloPayConfig
	callbackURL string
	client      *http.Client
}

// NewZaloPayGateway creates the ZaloPay gateway
func NewZaloPayGateway(cfg models.ZaloPayConfig, callbackURL string) *ZaloPayGateway {
	return &ZaloPayGateway{
		cfg:         cfg,
		callbackURL: callbackURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type zaloPayCreateResponse struct {
	ReturnCode    int    `json:"return_code"`
	ReturnMessage string `json:"return_message"`
	OrderURL      string `json:"order_url"`
}

// zaloPayCallback wraps the settlement payload: data is a JSON string signed
// with key2.
type zaloPayCallback struct {
	Data string `json:"data"`
	Mac  string `json:"mac"`
	Type int    `json:"type"`
}

type zaloPayCallbackData struct {
	AppTransID string `json:"app_trans_id"`
	Amount     int64  `json:"amount"`
}

// CreatePayment opens a ZaloPay order and returns the checkout URL. The
// provider requires app_trans_id to carry a yymmdd date prefix.
func (g *ZaloPayGateway) CreatePayment(ctx context.Context, order payment.Order) (string, error) {
	if g.cfg.AppID == "" {
		return "", fmt.Errorf("%w: zalopay is not configured", models.ErrProviderUnavailable)
	}

	appTransID := fmt.Sprintf("%s_%s", time.Now().Format("060102"), order.OrderID)
	appTime := time.Now().UnixMilli()
	const appUser, embedData, item = "travelcar", "{}", "[]"

	mac := hmacSHA256Hex(g.cfg.Key1, fmt.Sprintf("%s|%s|%s|%d|%d|%s|%s",
		g.cfg.AppID, appTransID, appUser, order.Amount, appTime, embedData, item))

	form := url.Values{}
	form.Set("app_id", g.cfg.AppID)
	form.Set("app_trans_id", appTransID)
	form.Set("app_user", appUser)
	form.Set("app_time", fmt.Sprintf("%d", appTime))
	form.Set("amount", fmt.Sprintf("%d", order.Amount))
	form.Set("item", item)
	form.Set("embed_data", embedData)
	form.Set("description", order.Description)
	form.Set("callback_url", g.callbackURL)
	form.Set("mac", mac)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build zalopay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: zalopay request failed: %s", models.ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	var result zaloPayCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: invalid zalopay response", models.ErrProviderUnavailable)
	}
	if result.ReturnCode != 1 {
		return "", fmt.Errorf("%w: zalopay rejected the order: %s", models.ErrProviderUnavailable, result.ReturnMessage)
	}
	return result.OrderURL, nil
}

// VerifyCallback checks the key2 MAC over the data payload and extracts the
// order reference. ZaloPay only calls back on successful payments.
func (g *ZaloPayGateway) VerifyCallback(body []byte) (*models.CallbackResult, error) {
	var cb zaloPayCallback
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("%w: invalid zalopay callback body", models.ErrValidation)
	}

	expected := hmacSHA256Hex(g.cfg.Key2, cb.Data)
	if !hmac.Equal([]byte(expected), []byte(cb.Mac)) {
		return nil, fmt.Errorf("%w: zalopay callback signature mismatch", models.ErrInvalidSignature)
	}

	var data zaloPayCallbackData
	if err := json.Unmarshal([]byte(cb.Data), &data); err != nil {
		return nil, fmt.Errorf("%w: invalid zalopay callback data", models.ErrValidation)
	}

	// Strip the yymmdd_ prefix added at order creation
	orderID := data.AppTransID
	if parts := strings.SplitN(orderID, "_", 2); len(parts) == 2 {
		orderID = parts[1]
	}

	return &models.CallbackResult{
		OrderID: orderID,
		Success: true,
		RawBody: body,
	}, nil
}
