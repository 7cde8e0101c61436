package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/globetepay/globete-server/internal/common"
	"github.com/globetepay/globete-server/internal/httputil"
	"github.com/globetepay/globete-server/internal/model"
	"github.com/globetepay/globete-server/internal/verifier"
	"github.com/globetepay/globete-server/wallet"
)

// GlobeteHandler serves the Globete API: the transaction feed, identity
// verification and payment requests.
type GlobeteHandler struct {
	verifier *verifier.Verifier
}

// NewGlobeteHandler creates a GlobeteHandler around an explicitly constructed
// verifier instance (one per process).
func NewGlobeteHandler(v *verifier.Verifier) *GlobeteHandler {
	return &GlobeteHandler{verifier: v}
}

// Transactions handles GET /globete-api/transactions
// @Summary      Get the transaction list
// @Description  Returns the demo transaction feed, newest first
// @Tags         globete
// @Produce      json
// @Success      200  {object}  model.TransactionsResponse
// @Router       /globete-api/transactions [get]
func (h *GlobeteHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.TransactionsResponse{
		Transactions: wallet.MockTransactions(time.Now()),
	})
}

// VerifyIdentity handles POST /globete-api/identity-verification
// @Summary      Verify an identity proof bundle
// @Description  Delegates to the verifier; logical failure is signaled in the body, the HTTP status is always 200
// @Tags         globete
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.VerifySuccessResponse
// @Router       /globete-api/identity-verification [post]
func (h *GlobeteHandler) VerifyIdentity(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.VerifyRequest
	if r.Body != nil {
		// Malformed bodies fall through as an empty bundle and surface as the
		// missing-fields message below.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := h.verifier.Verify(r.Context(), verifier.Request{
		AttestationID:   req.AttestationID,
		Proof:           req.Proof,
		PublicSignals:   req.PublicSignals,
		UserContextData: req.UserContextData,
	})
	if err != nil {
		if errors.Is(err, verifier.ErrMissingFields) {
			httputil.WriteJSON(w, http.StatusOK, model.MessageResponse{
				Message: "Proof, publicSignals, attestationId and userContextData are required",
			})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, model.VerifyErrorResponse{
			Status:    "error",
			Result:    false,
			Reason:    err.Error(),
			ErrorCode: "UNKNOWN_ERROR",
		})
		return
	}

	if !result.Valid {
		httputil.WriteJSON(w, http.StatusOK, model.VerifyErrorResponse{
			Status:    "error",
			Result:    false,
			Reason:    "Verification failed",
			ErrorCode: "VERIFICATION_FAILED",
			Details:   result.Details,
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.VerifySuccessResponse{
		Status:            "success",
		Result:            true,
		CredentialSubject: result.Disclosed,
	})
}

// VerifierStatus handles GET /globete-api/identity-verification
// @Summary      Identity verification endpoint status
// @Tags         globete
// @Produce      json
// @Success      200  {object}  model.VerifierStatusResponse
// @Router       /globete-api/identity-verification [get]
func (h *GlobeteHandler) VerifierStatus(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.VerifierStatusResponse{
		OK:      true,
		Message: "Identity verification endpoint",
		Scope:   h.verifier.Scope(),
	})
}

// PaymentRequest handles POST /globete-api/payment-request
// @Summary      Create a shareable payment request
// @Description  Builds a payment URI for the given address and returns it with a QR code
// @Tags         globete
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.PaymentRequestResponse
// @Router       /globete-api/payment-request [post]
func (h *GlobeteHandler) PaymentRequest(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	var input model.PaymentRequestInput
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&input)
	}
	if !common.IsValidAddress(input.Address) {
		httputil.WriteJSON(w, http.StatusOK, model.ErrorResponse{
			Error: "a valid 0x address is required",
			Code:  "INVALID_ADDRESS",
		})
		return
	}

	uri := paymentURI(input)
	png, err := qrcode.Encode(uri, qrcode.Medium, 256)
	if err != nil {
		httputil.WriteJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error: "failed to generate QR code",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.PaymentRequestResponse{
		RequestID: uuid.NewString(),
		URI:       uri,
		QRPng:     base64.StdEncoding.EncodeToString(png),
		CreatedAt: time.Now().UTC(),
	})
}

// paymentURI renders a celo: payment URI with optional amount, token and note
func paymentURI(input model.PaymentRequestInput) string {
	params := url.Values{}
	if input.Amount != "" {
		if cop, err := strconv.ParseFloat(input.Amount, 64); err == nil && cop > 0 {
			params.Set("value", common.CopToTokenUnits(cop, common.TokenDecimals))
		}
	}
	token := input.Token
	if token == "" {
		token = string(wallet.TokenCCOP)
	}
	params.Set("token", token)
	if input.Note != "" {
		params.Set("note", input.Note)
	}
	return "celo:" + input.Address + "?" + params.Encode()
}
