package client

import (
	"context"
	"sync"
)

// MockProvider is an in-process stand-in for an injected browser wallet
// provider. It answers account/chain queries and fans out accounts-changed
// and chain-changed notifications to subscribers.
type MockProvider struct {
	mu          sync.Mutex
	accounts    []string
	chainID     int64
	accountSubs []func(accounts []string)
	chainSubs   []func(chainID int64)
}

// NewMockProvider creates a provider reporting the given accounts and chain
func NewMockProvider(accounts []string, chainID int64) *MockProvider {
	return &MockProvider{accounts: accounts, chainID: chainID}
}

// Accounts returns the provider's current account list
func (p *MockProvider) Accounts(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.accounts))
	copy(out, p.accounts)
	return out, nil
}

// ChainID returns the provider's current chain id
func (p *MockProvider) ChainID(ctx context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.chainID, nil
}

// OnAccountsChanged registers a callback for account changes
func (p *MockProvider) OnAccountsChanged(fn func(accounts []string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accountSubs = append(p.accountSubs, fn)
}

// OnChainChanged registers a callback for chain changes
func (p *MockProvider) OnChainChanged(fn func(chainID int64)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chainSubs = append(p.chainSubs, fn)
}

// EmitAccountsChanged replaces the account list and notifies subscribers
func (p *MockProvider) EmitAccountsChanged(accounts []string) {
	p.mu.Lock()
	p.accounts = accounts
	subs := append([]func([]string){}, p.accountSubs...)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(accounts)
	}
}

// EmitChainChanged switches the chain id and notifies subscribers
func (p *MockProvider) EmitChainChanged(chainID int64) {
	p.mu.Lock()
	p.chainID = chainID
	subs := append([]func(int64){}, p.chainSubs...)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(chainID)
	}
}
