package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/payment"
)

// VNPayGateway builds VNPay hosted checkout URLs and verifies IPN callbacks
type VNPayGateway struct {
	cfg       models.VNPayConfig
	returnURL string
}

// NewVNPayGateway creates the VNPay gateway
func NewVNPayGateway(cfg models.VNPayConfig, returnURL string) *VNPayGateway {
	return &VNPayGateway{cfg: cfg, returnURL: returnURL}
}

// BuildPayURL signs the checkout parameters and returns the redirect URL.
// VNPay amounts are in VND multiplied by 100.
func (g *VNPayGateway) BuildPayURL(order payment.Order) (string, error) {
	if g.cfg.TmnCode == "" {
		return "", fmt.Errorf("%w: vnpay is not configured", models.ErrProviderUnavailable)
	}

	clientIP := order.ClientIP
	if clientIP == "" {
		clientIP = "127.0.0.1"
	}
	returnURL := order.ReturnURL
	if returnURL == "" {
		returnURL = g.returnURL
	}

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    g.cfg.TmnCode,
		"vnp_Locale":     "vn",
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     order.OrderID,
		"vnp_OrderInfo":  order.Description,
		"vnp_OrderType":  "other",
		"vnp_Amount":     fmt.Sprintf("%d", order.Amount*100),
		"vnp_ReturnUrl":  returnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": time.Now().UTC().Format("20060102150405"),
	}

	query := canonicalQuery(params)
	secureHash := hmacSHA512Hex(g.cfg.HashSecret, query)
	return fmt.Sprintf("%s?%s&vnp_SecureHash=%s", g.cfg.PayURL, query, secureHash), nil
}

// VerifyCallback re-signs the received parameters and compares hashes.
// vnp_ResponseCode "00" means the customer paid.
func (g *VNPayGateway) VerifyCallback(values url.Values) (*models.CallbackResult, error) {
	received := values.Get("vnp_SecureHash")
	if received == "" {
		return nil, fmt.Errorf("%w: missing vnp_SecureHash", models.ErrInvalidSignature)
	}

	params := make(map[string]string, len(values))
	for key := range values {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		params[key] = values.Get(key)
	}

	expected := hmacSHA512Hex(g.cfg.HashSecret, canonicalQuery(params))
	if !hmac.Equal([]byte(strings.ToLower(received)), []byte(expected)) {
		return nil, fmt.Errorf("%w: vnpay callback signature mismatch", models.ErrInvalidSignature)
	}

	orderID := values.Get("vnp_TxnRef")
	if orderID == "" {
		return nil, fmt.Errorf("%w: missing vnp_TxnRef", models.ErrValidation)
	}

	return &models.CallbackResult{
		OrderID: orderID,
		Success: values.Get("vnp_ResponseCode") == "00",
		RawBody: []byte(values.Encode()),
	}, nil
}

// canonicalQuery sorts keys and URL-encodes values the way VNPay signs them
func canonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+url.QueryEscape(params[key]))
	}
	return strings.Join(parts, "&")
}

func hmacSHA512Hex(key, message string) string {
	mac := hmac.New(sha512.New, []byte(key))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}
