package handler

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetepay/globete-server/internal/verifier"
)

func newGlobeteRouter() http.Handler {
	v := verifier.New(verifier.Config{
		Scope:        "globete-pay-staging",
		MockPassport: true,
		MinimumAge:   18,
	})
	g := NewGlobeteHandler(v)

	r := mux.NewRouter()
	r.HandleFunc("/globete-api/transactions", g.Transactions).Methods(http.MethodGet)
	r.HandleFunc("/globete-api/identity-verification", g.VerifyIdentity).Methods(http.MethodPost)
	r.HandleFunc("/globete-api/identity-verification", g.VerifierStatus).Methods(http.MethodGet)
	r.HandleFunc("/globete-api/payment-request", g.PaymentRequest).Methods(http.MethodPost)
	return r
}

func TestTransactionsFeed(t *testing.T) {
	router := newGlobeteRouter()

	w, body := doJSON(t, router, http.MethodGet, "/globete-api/transactions", "")
	assert.Equal(t, http.StatusOK, w.Code)

	txs, ok := body["transactions"].([]any)
	require.True(t, ok)
	require.Len(t, txs, 6)

	first := txs[0].(map[string]any)
	assert.Equal(t, "tx-001", first["id"])
	assert.Equal(t, "sent", first["direction"])
	hashes := first["hashes"].(map[string]any)
	assert.Equal(t, "INT-001", hashes["internalRef"])
}

func TestVerifyIdentitySuccess(t *testing.T) {
	router := newGlobeteRouter()

	body := `{
		"attestationId": 1,
		"proof": {"pi_a": ["0x1", "0x2"]},
		"publicSignals": ["0xaa"],
		"userContextData": "0xdeadbeef"
	}`
	w, resp := doJSON(t, router, http.MethodPost, "/globete-api/identity-verification", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, true, resp["result"])

	subject, ok := resp["credentialSubject"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "passport", subject["documentType"])
}

func TestVerifyIdentityMissingProof(t *testing.T) {
	router := newGlobeteRouter()

	body := `{"attestationId": 1, "publicSignals": ["0xaa"], "userContextData": "0xdeadbeef"}`
	w, resp := doJSON(t, router, http.MethodPost, "/globete-api/identity-verification", body)
	assert.Equal(t, http.StatusOK, w.Code)

	msg, ok := resp["message"].(string)
	require.True(t, ok, "expected a message body, got %v", resp)
	assert.Contains(t, msg, "required")
}

func TestVerifyIdentityMalformedBody(t *testing.T) {
	router := newGlobeteRouter()

	w, resp := doJSON(t, router, http.MethodPost, "/globete-api/identity-verification", `{broken`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, resp["message"], "required")
}

func TestVerifyIdentityFailure(t *testing.T) {
	router := newGlobeteRouter()

	body := `{
		"attestationId": 99,
		"proof": {"pi_a": ["0x1"]},
		"publicSignals": ["0xaa"],
		"userContextData": "0xdeadbeef"
	}`
	w, resp := doJSON(t, router, http.MethodPost, "/globete-api/identity-verification", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, false, resp["result"])
	assert.Equal(t, "VERIFICATION_FAILED", resp["error_code"])
	assert.NotNil(t, resp["details"])
}

func TestVerifierStatus(t *testing.T) {
	router := newGlobeteRouter()

	w, resp := doJSON(t, router, http.MethodGet, "/globete-api/identity-verification", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "globete-pay-staging", resp["scope"])
}

func TestPaymentRequest(t *testing.T) {
	router := newGlobeteRouter()

	body := `{"address":"0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0","amount":"50000","token":"cCOP","note":"Almuerzo"}`
	w, resp := doJSON(t, router, http.MethodPost, "/globete-api/payment-request", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp["requestId"])

	uri, ok := resp["uri"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(uri, "celo:0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0?"))
	assert.Contains(t, uri, "token=cCOP")
	assert.Contains(t, uri, "value=50000000000000000000000")

	png, err := base64.StdEncoding.DecodeString(resp["qrPng"].(string))
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPaymentRequestInvalidAddress(t *testing.T) {
	router := newGlobeteRouter()

	w, resp := doJSON(t, router, http.MethodPost, "/globete-api/payment-request", `{"address":"banana"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INVALID_ADDRESS", resp["code"])
}
