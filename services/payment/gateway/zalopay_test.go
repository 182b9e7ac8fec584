package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

func testZaloPayGateway() *ZaloPayGateway {
	return NewZaloPayGateway(models.ZaloPayConfig{
		AppID:    "2553",
		Key1:     "key1secret",
		Key2:     "key2secret",
		Endpoint: "https://sb-openapi.zalopay.vn/v2/create",
	}, "https://travelcar.vn/payments/callback/zalopay")
}

func signedZaloPayCallback(t *testing.T, key2 string, data zaloPayCallbackData) []byte {
	t.Helper()
	dataJSON, err := json.Marshal(data)
	require.NoError(t, err)
	body, err := json.Marshal(zaloPayCallback{
		Data: string(dataJSON),
		Mac:  hmacSHA256Hex(key2, string(dataJSON)),
		Type: 1,
	})
	require.NoError(t, err)
	return body
}

func TestZaloPayVerifyCallback_StripsDatePrefix(t *testing.T) {
	g := testZaloPayGateway()

	body := signedZaloPayCallback(t, "key2secret", zaloPayCallbackData{
		AppTransID: "260831_TC1756600000000_abcd1234",
		Amount:     351000,
	})

	result, err := g.VerifyCallback(body)

	require.NoError(t, err)
	assert.Equal(t, "TC1756600000000_abcd1234", result.OrderID)
	assert.True(t, result.Success)
}

func TestZaloPayVerifyCallback_WrongKey(t *testing.T) {
	g := testZaloPayGateway()

	body := signedZaloPayCallback(t, "nottherightkey", zaloPayCallbackData{
		AppTransID: "260831_TC1756600000000_abcd1234",
		Amount:     351000,
	})

	_, err := g.VerifyCallback(body)

	assert.ErrorIs(t, err, models.ErrInvalidSignature)
}

func TestZaloPayVerifyCallback_MalformedBody(t *testing.T) {
	g := testZaloPayGateway()

	_, err := g.VerifyCallback([]byte("{broken"))

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestZaloPayVerifyCallback_MalformedData(t *testing.T) {
	g := testZaloPayGateway()

	body, err := json.Marshal(zaloPayCallback{
		Data: "not json",
		Mac:  hmacSHA256Hex("key2secret", "not json"),
	})
	require.NoError(t, err)

	_, err = g.VerifyCallback(body)

	assert.ErrorIs(t, err, models.ErrValidation)
}
