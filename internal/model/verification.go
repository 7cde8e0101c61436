package model

// VerifyRequest represents request for POST /globete-api/identity-verification.
// Fields are untyped: the proof bundle comes straight from the client SDK and
// is validated by the verifier, not the transport layer.
type VerifyRequest struct {
	AttestationID   any `json:"attestationId"`
	Proof           any `json:"proof"`
	PublicSignals   any `json:"publicSignals"`
	UserContextData any `json:"userContextData"`
}

// VerifySuccessResponse is returned when the proof bundle verifies
type VerifySuccessResponse struct {
	Status            string         `json:"status"`
	Result            bool           `json:"result"`
	CredentialSubject map[string]any `json:"credentialSubject"`
}

// VerifyErrorResponse is returned on verification failure or malformed input.
// The HTTP status stays 200; logical failure lives in the body.
type VerifyErrorResponse struct {
	Status    string `json:"status"`
	Result    bool   `json:"result"`
	Reason    string `json:"reason"`
	ErrorCode string `json:"error_code"`
	Details   any    `json:"details,omitempty"`
}

// MessageResponse is a plain informational body
type MessageResponse struct {
	Message string `json:"message"`
}

// VerifierStatusResponse represents response for GET /globete-api/identity-verification
type VerifierStatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Scope   string `json:"scope"`
}
