package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/globetepay/globete-server/internal/httputil"
	"github.com/globetepay/globete-server/internal/model"
)

// BankingHandler serves the mock banking/settlement endpoints. Each endpoint
// is stateless and non-authoritative: canned JSON, no ledger, no persistence.
// They exist so the frontend can exercise its payment flows.
type BankingHandler struct{}

// NewBankingHandler creates a new BankingHandler
func NewBankingHandler() *BankingHandler {
	return &BankingHandler{}
}

// ResolveDirectory handles POST /banking-api/directory/resolve
// @Summary      Resolve a payment directory key
// @Description  Returns a mock recipient profile for the given llave
// @Tags         banking
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.ResolveResponse
// @Router       /banking-api/directory/resolve [post]
func (h *BankingHandler) ResolveDirectory(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	llave := "+57-3000000000"
	if body, ok := httputil.DecodeLenient(r).(map[string]any); ok {
		if v, ok := body["llave"].(string); ok && v != "" {
			llave = v
		}
	}

	httputil.WriteJSON(w, http.StatusOK, model.ResolveResponse{
		Recipient: model.Recipient{
			Llave:       llave,
			DisplayName: "Mock Recipient",
			Institution: model.RecipientInstitution{ID: "BANK_MOCK", Name: "Banco Mock"},
			Account:     model.RecipientAccount{Type: "SAVINGS", MaskedNumber: "****1234"},
			Validations: model.RecipientValidations{
				IsPayable: true,
				Limits:    model.RecipientLimits{MaxPerTx: 11552000, InstitutionalMaxPerTx: 5000000},
			},
		},
	})
}

// Token handles POST /banking-api/transfiya/token
// @Summary      Issue a mock OAuth2 client-credentials token
// @Tags         banking
// @Produce      json
// @Success      200  {object}  model.TokenResponse
// @Router       /banking-api/transfiya/token [post]
func (h *BankingHandler) Token(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	// Input ignored by design: the simulated OAuth2 token endpoint always
	// issues the same one-hour token.
	httputil.WriteJSON(w, http.StatusOK, model.TokenResponse{
		AccessToken: "mock_access_token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Scope:       "transfers action credentials",
	})
}

// SignAction handles POST /banking-api/transfiya/action
// @Summary      Sign a Transfiya action
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.SignActionResponse
// @Router       /banking-api/transfiya/action [post]
func (h *BankingHandler) SignAction(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.SignActionResponse{
		Signature: "mock_signature",
		Algorithm: "RS256",
		SignedAt:  time.Now().UTC(),
		Received:  httputil.DecodeLenient(r),
	})
}

// Credentials handles POST /banking-api/transfiya/credentials
// @Summary      Issue a mock Transfiya credential
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.CredentialsResponse
// @Router       /banking-api/transfiya/credentials [post]
func (h *BankingHandler) Credentials(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.CredentialsResponse{
		CredentialID: "cred_mock_001",
		Status:       "ACTIVE",
		CreatedAt:    time.Now().UTC(),
		Received:     httputil.DecodeLenient(r),
	})
}

// SubmitTransfer handles POST /banking-api/transfiya/transfer
// @Summary      Submit a Transfiya transfer
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.TransferResponse
// @Router       /banking-api/transfiya/transfer [post]
func (h *BankingHandler) SubmitTransfer(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.TransferResponse{
		TransferRef: "TFY-MOCK-REF",
		State:       "SUBMITTED",
		Received:    httputil.DecodeLenient(r),
	})
}

// TransferStatus handles GET /banking-api/transfiya/transfer/{ref}
// @Summary      Look up a transfer by reference
// @Produce      json
// @Param        ref  path  string  true  "Transfer reference"
// @Success      200  {object}  model.TransferStatusResponse
// @Router       /banking-api/transfiya/transfer/{ref} [get]
func (h *BankingHandler) TransferStatus(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.TransferStatusResponse{
		TransferRef: mux.Vars(r)["ref"],
		State:       "CREDITED",
		CreditedAt:  time.Now().UTC(),
		Bank:        model.TransferBank{Src: "BANK_GLOBETE", Dst: "BANK_MOCK"},
	})
}

// Action handles POST /banking-api/v1/action
// @Summary      Acknowledge a banking action
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.ActionResponse
// @Router       /banking-api/v1/action [post]
func (h *BankingHandler) Action(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.ActionResponse{
		ActionAccepted: true,
		Received:       httputil.DecodeLenient(r),
	})
}

// Credit handles POST /banking-api/v1/credit
// @Summary      Simulate a credit leg
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.CreditResponse
// @Router       /banking-api/v1/credit [post]
func (h *BankingHandler) Credit(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.CreditResponse{
		CreditRef: "BANK-CREDIT-MOCK",
		State:     "CREDITED",
		Received:  httputil.DecodeLenient(r),
	})
}

// Debit handles POST /banking-api/v1/debit
// @Summary      Simulate a debit leg
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.DebitResponse
// @Router       /banking-api/v1/debit [post]
func (h *BankingHandler) Debit(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.DebitResponse{
		DebitRef: "BANK-DEBIT-MOCK",
		State:    "DEBITED",
		Received: httputil.DecodeLenient(r),
	})
}

// StatusAck handles POST /banking-api/v1/status
// @Summary      Acknowledge a status callback
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.StatusAckResponse
// @Router       /banking-api/v1/status [post]
func (h *BankingHandler) StatusAck(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.StatusAckResponse{
		Received:   true,
		ReceivedAt: time.Now().UTC(),
		Payload:    httputil.DecodeLenient(r),
	})
}
