package model

import "github.com/globetepay/globete-server/wallet"

// TransactionsResponse represents response for GET /globete-api/transactions
type TransactionsResponse struct {
	Transactions []wallet.Transaction `json:"transactions"`
}
