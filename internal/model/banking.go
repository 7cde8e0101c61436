package model

import "time"

// Shapes returned by the mock banking/settlement endpoints. Several carry the
// request body back verbatim under "received" for traceability.

// RecipientInstitution identifies the receiving bank
type RecipientInstitution struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecipientAccount is the masked destination account
type RecipientAccount struct {
	Type         string `json:"type"`
	MaskedNumber string `json:"maskedNumber"`
}

// RecipientLimits are the per-transaction limits of the recipient
type RecipientLimits struct {
	MaxPerTx              int64 `json:"maxPerTx"`
	InstitutionalMaxPerTx int64 `json:"institutionalMaxPerTx"`
}

// RecipientValidations carries payability flags and limits
type RecipientValidations struct {
	IsPayable bool            `json:"isPayable"`
	Limits    RecipientLimits `json:"limits"`
}

// Recipient is a directory-resolved recipient profile
type Recipient struct {
	Llave       string               `json:"llave"`
	DisplayName string               `json:"displayName"`
	Institution RecipientInstitution `json:"institution"`
	Account     RecipientAccount     `json:"account"`
	Validations RecipientValidations `json:"validations"`
}

// ResolveResponse represents response for POST /banking-api/directory/resolve
type ResolveResponse struct {
	Recipient Recipient `json:"recipient"`
}

// TokenResponse represents response for POST /banking-api/transfiya/token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// SignActionResponse represents response for POST /banking-api/transfiya/action
type SignActionResponse struct {
	Signature string    `json:"signature"`
	Algorithm string    `json:"algorithm"`
	SignedAt  time.Time `json:"signedAt"`
	Received  any       `json:"received"`
}

// CredentialsResponse represents response for POST /banking-api/transfiya/credentials
type CredentialsResponse struct {
	CredentialID string    `json:"credentialId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Received     any       `json:"received"`
}

// TransferResponse represents response for POST /banking-api/transfiya/transfer
type TransferResponse struct {
	TransferRef string `json:"transferRef"`
	State       string `json:"state"`
	Received    any    `json:"received"`
}

// TransferBank identifies the source and destination banks of a transfer
type TransferBank struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// TransferStatusResponse represents response for GET /banking-api/transfiya/transfer/{ref}
type TransferStatusResponse struct {
	TransferRef string       `json:"transferRef"`
	State       string       `json:"state"`
	CreditedAt  time.Time    `json:"creditedAt"`
	Bank        TransferBank `json:"bank"`
}

// ActionResponse represents response for POST /banking-api/v1/action
type ActionResponse struct {
	ActionAccepted bool `json:"actionAccepted"`
	Received       any  `json:"received"`
}

// CreditResponse represents response for POST /banking-api/v1/credit
type CreditResponse struct {
	CreditRef string `json:"creditRef"`
	State     string `json:"state"`
	Received  any    `json:"received"`
}

// DebitResponse represents response for POST /banking-api/v1/debit
type DebitResponse struct {
	DebitRef string `json:"debitRef"`
	State    string `json:"state"`
	Received any    `json:"received"`
}

// StatusAckResponse represents response for POST /banking-api/v1/status
type StatusAckResponse struct {
	Received   bool      `json:"received"`
	ReceivedAt time.Time `json:"receivedAt"`
	Payload    any       `json:"payload"`
}
