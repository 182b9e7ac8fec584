package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/payment"
)

// MomoGateway talks to the Momo wallet API
type MomoGateway struct {
	cfg       models.MomoConfig
	notifyURL string
	client    *http.Client
}

// NewMomoGateway creates the Momo gateway
func NewMomoGateway(cfg models.MomoConfig, notifyURL string) *MomoGateway {
	return &MomoGateway{
		cfg:       cfg,
		notifyURL: notifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type momoCreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	PartnerName string `json:"partnerName"`
	StoreID     string `json:"storeId"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IpnURL      string `json:"ipnUrl"`
	Lang        string `json:"lang"`
	RequestType string `json:"requestType"`
	ExtraData   string `json:"extraData"`
	Signature   string `json:"signature"`
}

type momoCreateResponse struct {
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
}

// momoCallback is the IPN body Momo posts after the customer pays
type momoCallback struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
}

// CreatePayment opens a hosted Momo checkout and returns the pay URL
func (g *MomoGateway) CreatePayment(ctx context.Context, order payment.Order) (string, error) {
	if g.cfg.PartnerCode == "" {
		return "", fmt.Errorf("%w: momo is not configured", models.ErrProviderUnavailable)
	}

	const requestType = "payWithMethod"
	raw := fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		g.cfg.AccessKey, order.Amount, "", g.notifyURL, order.OrderID,
		order.Description, g.cfg.PartnerCode, order.ReturnURL, order.OrderID, requestType,
	)

	body, err := json.Marshal(momoCreateRequest{
		PartnerCode: g.cfg.PartnerCode,
		PartnerName: "TravelCar",
		StoreID:     "TravelCarStore",
		RequestID:   order.OrderID,
		Amount:      order.Amount,
		OrderID:     order.OrderID,
		OrderInfo:   order.Description,
		RedirectURL: order.ReturnURL,
		IpnURL:      g.notifyURL,
		Lang:        "vi",
		RequestType: requestType,
		ExtraData:   "",
		Signature:   hmacSHA256Hex(g.cfg.SecretKey, raw),
	})
	if err != nil {
		return "", fmt.Errorf("failed to build momo request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build momo request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: momo request failed: %s", models.ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	var result momoCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: invalid momo response", models.ErrProviderUnavailable)
	}
	if result.ResultCode != 0 {
		return "", fmt.Errorf("%w: momo rejected the order: %s", models.ErrProviderUnavailable, result.Message)
	}
	return result.PayURL, nil
}

// VerifyCallback checks the IPN signature and extracts the settlement result.
// ResultCode 0 means the customer paid.
func (g *MomoGateway) VerifyCallback(body []byte) (*models.CallbackResult, error) {
	var cb momoCallback
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("%w: invalid momo callback body", models.ErrValidation)
	}

	raw := fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=%s&message=%s&orderId=%s&orderInfo=%s&orderType=%s&partnerCode=%s&payType=%s&requestId=%s&responseTime=%d&resultCode=%d&transId=%d",
		g.cfg.AccessKey, cb.Amount, cb.ExtraData, cb.Message, cb.OrderID,
		cb.OrderInfo, cb.OrderType, cb.PartnerCode, cb.PayType, cb.RequestID,
		cb.ResponseTime, cb.ResultCode, cb.TransID,
	)
	expected := hmacSHA256Hex(g.cfg.SecretKey, raw)
	if !hmac.Equal([]byte(expected), []byte(cb.Signature)) {
		return nil, fmt.Errorf("%w: momo callback signature mismatch", models.ErrInvalidSignature)
	}

	return &models.CallbackResult{
		OrderID: cb.OrderID,
		Success: cb.ResultCode == 0,
		RawBody: body,
	}, nil
}

func hmacSHA256Hex(key, message string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}
