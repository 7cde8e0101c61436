// Package verifier implements the identity-verification backend used by the
// onboarding flow. It mirrors the contract of the Self protocol backend
// verifier: a proof bundle (attestation id, proof, public signals, user
// context) is checked and, on success, the disclosed credential fields are
// returned. In mock-passport mode no cryptographic verification happens;
// well-formed bundles are accepted so the frontend can exercise its flows.
package verifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Attestation ids of the supported document types
const (
	AttestationPassport = 1
	AttestationEUIDCard = 2
	AttestationAadhaar  = 3
)

// ErrMissingFields is returned when the proof bundle is incomplete
var ErrMissingFields = errors.New("proof, publicSignals, attestationId and userContextData are required")

// Config is the explicit construction-time configuration of a Verifier.
type Config struct {
	Scope        string // application scope, e.g. "globete-pay-staging"
	Endpoint     string // verification callback endpoint
	MockPassport bool   // staging mode: accept well-formed bundles
	MinimumAge   int
}

// Verifier validates identity proof bundles. Construct one per process with
// New and share it; it is stateless after construction.
type Verifier struct {
	cfg Config
}

// Request is the proof bundle submitted by the client SDK. Fields are opaque
// to the transport; the verifier decides what is acceptable.
type Request struct {
	AttestationID   any
	Proof           any
	PublicSignals   any
	UserContextData any
}

// Details itemizes the validity checks of a verification attempt
type Details struct {
	IsValid           bool `json:"isValid"`
	IsMinimumAgeValid bool `json:"isMinimumAgeValid"`
	IsOfacValid       bool `json:"isOfacValid"`
}

// Result is the outcome of a verification attempt
type Result struct {
	SessionID string
	Valid     bool
	Details   Details
	Disclosed map[string]any
}

// New creates a Verifier from explicit configuration.
func New(cfg Config) *Verifier {
	if cfg.MinimumAge <= 0 {
		cfg.MinimumAge = 18
	}
	return &Verifier{cfg: cfg}
}

// Scope returns the configured application scope
func (v *Verifier) Scope() string {
	return v.cfg.Scope
}

// Verify checks a proof bundle. ErrMissingFields is returned when required
// fields are absent; an invalid (but complete) bundle yields Valid=false with
// details rather than an error.
func (v *Verifier) Verify(ctx context.Context, req Request) (*Result, error) {
	if isEmpty(req.Proof) || isEmpty(req.PublicSignals) || isEmpty(req.AttestationID) || isEmpty(req.UserContextData) {
		return nil, ErrMissingFields
	}

	result := &Result{SessionID: uuid.NewString()}

	docType, ok := attestationDocType(req.AttestationID)
	if !ok || !v.cfg.MockPassport {
		// Outside mock-passport mode there is no on-chain verifier wired into
		// this demo backend, so every bundle fails closed.
		result.Details = Details{IsValid: false, IsMinimumAgeValid: false, IsOfacValid: false}
		return result, nil
	}

	result.Valid = true
	result.Details = Details{IsValid: true, IsMinimumAgeValid: true, IsOfacValid: true}
	result.Disclosed = map[string]any{
		"nationality":    "COL",
		"olderThan":      fmt.Sprintf("%d", v.cfg.MinimumAge),
		"documentType":   docType,
		"userIdentifier": result.SessionID,
	}
	return result, nil
}

// attestationDocType maps a known attestation id to its document type name.
// JSON numbers arrive as float64; string ids are tolerated.
func attestationDocType(id any) (string, bool) {
	var n int
	switch v := id.(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case string:
		switch v {
		case "1":
			n = AttestationPassport
		case "2":
			n = AttestationEUIDCard
		case "3":
			n = AttestationAadhaar
		default:
			return "", false
		}
	default:
		return "", false
	}

	switch n {
	case AttestationPassport:
		return "passport", true
	case AttestationEUIDCard:
		return "eu_id_card", true
	case AttestationAadhaar:
		return "aadhaar", true
	}
	return "", false
}

// isEmpty reports whether a bundle field is absent or empty
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}
