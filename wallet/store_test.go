package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetepay/globete-server/internal/storage"
)

type fakeProvider struct {
	accounts    []string
	chainID     int64
	accountsErr error

	onAccounts func([]string)
	onChain    func(int64)
}

func (f *fakeProvider) Accounts(ctx context.Context) ([]string, error) {
	return f.accounts, f.accountsErr
}

func (f *fakeProvider) ChainID(ctx context.Context) (int64, error) {
	return f.chainID, nil
}

func (f *fakeProvider) OnAccountsChanged(fn func([]string)) { f.onAccounts = fn }
func (f *fakeProvider) OnChainChanged(fn func(int64))       { f.onChain = fn }

type fakeSource struct {
	txs     []Transaction
	err     error
	release chan struct{}
}

func (f *fakeSource) FetchTransactions(ctx context.Context) ([]Transaction, error) {
	if f.release != nil {
		<-f.release
	}
	return f.txs, f.err
}

func waitForLoad(t *testing.T, s *Store) {
	t.Helper()
	require.Eventually(t, func() bool { return !s.TransactionsLoading() }, time.Second, time.Millisecond)
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{})

	sess := s.Session()
	assert.False(t, sess.IsConnected)
	assert.Empty(t, sess.WalletAddress)
	assert.Equal(t, NetworkAlfajores, sess.Network.Type)
	assert.Equal(t, CameraUnknown, sess.CameraPermission)
	assert.Equal(t, ZeroBalance(), s.Balances())
	assert.Empty(t, s.Transactions())
}

func TestSetWalletAddress(t *testing.T) {
	s := New(Config{})
	s.SetWalletAddress("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0")

	sess := s.Session()
	assert.True(t, sess.IsConnected)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0", sess.WalletAddress)
}

func TestSetNetworkAndCameraPermission(t *testing.T) {
	mem := storage.NewMemory()
	s := New(Config{Storage: mem})

	s.SetNetwork(Networks[NetworkMainnet])
	s.SetCameraPermission(CameraGranted)

	sess := s.Session()
	assert.Equal(t, int64(42220), sess.Network.ChainID)
	assert.Equal(t, CameraGranted, sess.CameraPermission)

	// Preferences survive a fresh store over the same storage
	s2 := New(Config{Storage: mem})
	s2.Init(context.Background())
	sess2 := s2.Session()
	assert.Equal(t, NetworkMainnet, sess2.Network.Type)
	assert.Equal(t, CameraGranted, sess2.CameraPermission)
}

func TestUpdateBalancesPartialMerge(t *testing.T) {
	s := New(Config{})
	ccop := "500000000000000000000"
	s.UpdateBalances(BalanceUpdate{CCOP: &ccop})

	b := s.Balances()
	assert.Equal(t, ccop, b.CCOP)
	assert.Equal(t, "0", b.CUSD)
	assert.Equal(t, "0", b.CEUR)

	cusd := "100000000000000000000"
	s.UpdateBalances(BalanceUpdate{CUSD: &cusd})
	b = s.Balances()
	assert.Equal(t, ccop, b.CCOP)
	assert.Equal(t, cusd, b.CUSD)
}

func TestAddTransactionPrepends(t *testing.T) {
	s := New(Config{})
	for _, tx := range MockTransactions(time.Now()) {
		s.AddTransaction(tx)
	}
	before := len(s.Transactions())

	tx := Transaction{ID: "tx-new", Direction: DirectionSent, Amount: "1", Token: TokenCCOP,
		Hashes: TransactionHashes{InternalRef: "INT-NEW"}}
	s.AddTransaction(tx)

	list := s.Transactions()
	require.Len(t, list, before+1)
	assert.Equal(t, "tx-new", list[0].ID)
}

func TestDisconnect(t *testing.T) {
	mem := storage.NewMemory()
	provider := &fakeProvider{accounts: []string{"0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0"}}

	s := New(Config{Storage: mem, Provider: provider})
	s.Init(context.Background())
	require.True(t, s.Session().IsConnected)

	ccop := "500000000000000000000"
	s.UpdateBalances(BalanceUpdate{CCOP: &ccop})
	s.AddTransaction(Transaction{ID: "tx-x", Hashes: TransactionHashes{InternalRef: "INT-X"}})

	s.Disconnect()
	assert.False(t, s.Session().IsConnected)
	assert.Empty(t, s.Session().WalletAddress)
	assert.Equal(t, ZeroBalance(), s.Balances())
	assert.Empty(t, s.Transactions())

	// A fresh store over the same storage must not silently reconnect even
	// though the provider still reports an account.
	s2 := New(Config{Storage: mem, Provider: provider})
	s2.Init(context.Background())
	assert.False(t, s2.Session().IsConnected)
	assert.Empty(t, s2.Session().WalletAddress)

	// An explicit reconnect clears the manual disconnect flag.
	s2.SetWalletAddress(provider.accounts[0])
	s3 := New(Config{Storage: mem, Provider: provider})
	s3.Init(context.Background())
	assert.True(t, s3.Session().IsConnected)
}

func TestEagerConnect(t *testing.T) {
	provider := &fakeProvider{
		accounts: []string{"0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0", "0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc"},
		chainID:  42220,
	}
	s := New(Config{Provider: provider})
	s.Init(context.Background())

	sess := s.Session()
	assert.True(t, sess.IsConnected)
	assert.Equal(t, provider.accounts[0], sess.WalletAddress)
	assert.Equal(t, NetworkMainnet, sess.Network.Type)
}

func TestEagerConnectProviderError(t *testing.T) {
	provider := &fakeProvider{accountsErr: errors.New("no injected provider")}
	s := New(Config{Provider: provider})
	s.Init(context.Background())

	assert.False(t, s.Session().IsConnected)
}

func TestProviderEvents(t *testing.T) {
	provider := &fakeProvider{}
	s := New(Config{Provider: provider})
	s.Init(context.Background())
	require.NotNil(t, provider.onAccounts)
	require.NotNil(t, provider.onChain)

	provider.onAccounts([]string{"0x8ba1f109551bD432803012645Ac136ddd64DBA72"})
	assert.True(t, s.Session().IsConnected)

	provider.onChain(44787)
	assert.Equal(t, NetworkAlfajores, s.Session().Network.Type)

	// Unrecognized chain ids are ignored
	provider.onChain(1)
	assert.Equal(t, NetworkAlfajores, s.Session().Network.Type)

	// Empty account list means the wallet disconnected
	provider.onAccounts(nil)
	assert.False(t, s.Session().IsConnected)
}

func TestLoadTransactions(t *testing.T) {
	source := &fakeSource{txs: MockTransactions(time.Now())}
	s := New(Config{Source: source})
	s.Init(context.Background())
	waitForLoad(t, s)

	assert.Len(t, s.Transactions(), 6)
}

func TestLoadTransactionsFailure(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	s := New(Config{Source: source})
	s.Init(context.Background())
	waitForLoad(t, s)

	assert.Empty(t, s.Transactions())
}

func TestLoadTransactionsDiscardedAfterClose(t *testing.T) {
	source := &fakeSource{txs: MockTransactions(time.Now()), release: make(chan struct{})}
	s := New(Config{Source: source})
	s.Init(context.Background())

	s.Close()
	close(source.release)

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, s.Transactions())
}

func TestFilterTransactions(t *testing.T) {
	s := New(Config{})
	for _, tx := range MockTransactions(time.Now()) {
		s.AddTransaction(tx)
	}

	sent := s.FilterTransactions(DirectionSent, "")
	for _, tx := range sent {
		assert.Equal(t, DirectionSent, tx.Direction)
	}
	assert.Len(t, sent, 4)

	pending := s.FilterTransactions("", StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "tx-006", pending[0].ID)

	all := s.FilterTransactions("", "")
	assert.Len(t, all, 6)

	none := s.FilterTransactions(DirectionReceived, StatusPending)
	assert.Empty(t, none)
}

func TestTransactionByID(t *testing.T) {
	s := New(Config{})
	for _, tx := range MockTransactions(time.Now()) {
		s.AddTransaction(tx)
	}

	tx, ok := s.TransactionByID("tx-003")
	require.True(t, ok)
	assert.Equal(t, "INT-003", tx.Hashes.InternalRef)

	_, ok = s.TransactionByID("tx-999")
	assert.False(t, ok)
}

func TestRestorePersisted(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Set("wallet_address", "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0"))
	require.NoError(t, mem.Set("network", "mainnet"))
	require.NoError(t, mem.Set("camera_permission", "denied"))

	s := New(Config{Storage: mem})
	s.Init(context.Background())

	sess := s.Session()
	assert.True(t, sess.IsConnected)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0", sess.WalletAddress)
	assert.Equal(t, NetworkMainnet, sess.Network.Type)
	assert.Equal(t, CameraDenied, sess.CameraPermission)
}
