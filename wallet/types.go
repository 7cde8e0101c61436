// Package wallet holds the Globete Pay session state: wallet connection,
// selected network, balances and the transaction list. A single Store owns
// all of it; every mutation goes through the Store's operations.
package wallet

import "time"

// NetworkType identifies one of the known Celo networks
type NetworkType string

const (
	NetworkAlfajores NetworkType = "alfajores"
	NetworkMainnet   NetworkType = "mainnet"
)

// Network describes a Celo network
type Network struct {
	Name    string      `json:"name"`
	ChainID int64       `json:"chainId"`
	Type    NetworkType `json:"type"`
}

// Networks is the immutable set of known networks
var Networks = map[NetworkType]Network{
	NetworkAlfajores: {Name: "Celo Alfajores", ChainID: 44787, Type: NetworkAlfajores},
	NetworkMainnet:   {Name: "Celo Mainnet", ChainID: 42220, Type: NetworkMainnet},
}

// NetworkByType looks up a known network by its type string
func NetworkByType(t NetworkType) (Network, bool) {
	n, ok := Networks[t]
	return n, ok
}

// NetworkByChainID looks up a known network by chain id
func NetworkByChainID(chainID int64) (Network, bool) {
	for _, n := range Networks {
		if n.ChainID == chainID {
			return n, true
		}
	}
	return Network{}, false
}

// CameraPermission is the persisted camera permission state
type CameraPermission string

const (
	CameraGranted CameraPermission = "granted"
	CameraDenied  CameraPermission = "denied"
	CameraPrompt  CameraPermission = "prompt"
	CameraUnknown CameraPermission = "unknown"
)

// Session is the per-tab record of wallet connection and preference state
type Session struct {
	WalletAddress    string           `json:"walletAddress,omitempty"`
	IsConnected      bool             `json:"isConnected"`
	Network          Network          `json:"network"`
	CameraPermission CameraPermission `json:"cameraPermission"`
}

// Token is one of the Mento stable token symbols
type Token string

const (
	TokenCCOP Token = "cCOP"
	TokenCUSD Token = "cUSD"
	TokenCEUR Token = "cEUR"
)

// Balance maps each token to its base-unit amount as a decimal string.
// Strings avoid float precision loss on 18-decimal amounts.
type Balance struct {
	CCOP string `json:"cCOP"`
	CUSD string `json:"cUSD"`
	CEUR string `json:"cEUR"`
}

// ZeroBalance returns the all-zero balance
func ZeroBalance() Balance {
	return Balance{CCOP: "0", CUSD: "0", CEUR: "0"}
}

// BalanceUpdate is a partial balance update; nil fields are left untouched
type BalanceUpdate struct {
	CCOP *string
	CUSD *string
	CEUR *string
}

// TransactionDirection says whether the wallet sent or received the payment
type TransactionDirection string

const (
	DirectionSent     TransactionDirection = "sent"
	DirectionReceived TransactionDirection = "received"
)

// TransactionStatus is the settlement state of a payment
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusSettled   TransactionStatus = "settled"
	StatusFailed    TransactionStatus = "failed"
)

// Counterparty is the other party in a transaction
type Counterparty struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
	Alias   string `json:"alias,omitempty"`
}

// TransactionHashes groups the reference hashes of a transaction.
// InternalRef is always present and unique per transaction.
type TransactionHashes struct {
	TxHash      string `json:"txHash,omitempty"`
	BrebRef     string `json:"brebRef,omitempty"`
	InternalRef string `json:"internalRef"`
}

// Transaction represents a payment. ID is the sole lookup key for detail views.
type Transaction struct {
	ID           string               `json:"id"`
	Direction    TransactionDirection `json:"direction"`
	Amount       string               `json:"amount"` // token base units (wei)
	AmountCOP    float64              `json:"amountCOP"`
	Token        Token                `json:"token"`
	Counterparty Counterparty         `json:"counterparty"`
	Status       TransactionStatus    `json:"status"`
	Timestamp    time.Time            `json:"timestamp"`
	Note         string               `json:"note,omitempty"`
	Hashes       TransactionHashes    `json:"hashes"`
	Fee          string               `json:"fee,omitempty"` // token base units
}
