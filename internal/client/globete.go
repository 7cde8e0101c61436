package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/globetepay/globete-server/wallet"
)

// GlobeteClient fetches data from the Globete API
type GlobeteClient struct {
	baseURL string
	client  *http.Client
}

// NewGlobeteClient creates a new Globete API client
func NewGlobeteClient(baseURL string, timeout time.Duration) *GlobeteClient {
	return &GlobeteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchTransactions gets the transaction list from GET /globete-api/transactions.
// The endpoint may return either a bare array or {"transactions": [...]};
// any other shape yields an empty list.
func (c *GlobeteClient) FetchTransactions(ctx context.Context) ([]wallet.Transaction, error) {
	url := c.baseURL + "/globete-api/transactions"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch transactions: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var wrapped struct {
		Transactions []wallet.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Transactions != nil {
		return wrapped.Transactions, nil
	}

	var list []wallet.Transaction
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	return []wallet.Transaction{}, nil
}
