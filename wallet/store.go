package wallet

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/globetepay/globete-server/internal/storage"
)

// Persisted storage keys. Absence implies defaults.
const (
	keyWalletAddress    = "wallet_address"
	keyNetwork          = "network"
	keyCameraPermission = "camera_permission"
	keyManualDisconnect = "manual_disconnect"
)

// Provider is the injected wallet provider the store passively syncs with.
type Provider interface {
	Accounts(ctx context.Context) ([]string, error)
	ChainID(ctx context.Context) (int64, error)
	OnAccountsChanged(fn func(accounts []string))
	OnChainChanged(fn func(chainID int64))
}

// TransactionSource supplies the initial transaction list.
type TransactionSource interface {
	FetchTransactions(ctx context.Context) ([]Transaction, error)
}

// Config carries the explicit dependencies of a Store.
type Config struct {
	Storage        storage.Storage
	Provider       Provider
	Source         TransactionSource
	DefaultNetwork NetworkType
	Logger         zerolog.Logger
}

// Store is the single source of truth for session, balance and transaction
// state. All mutation goes through its operations; reads return snapshots.
type Store struct {
	mu       sync.Mutex
	storage  storage.Storage
	provider Provider
	source   TransactionSource
	log      zerolog.Logger

	session      Session
	balances     Balance
	transactions []Transaction
	loading      bool
	closed       bool
}

// New creates a Store with default (disconnected) state. Call Init to restore
// persisted state and start background synchronization.
func New(cfg Config) *Store {
	st := cfg.Storage
	if st == nil {
		st = storage.NewMemory()
	}
	network, ok := NetworkByType(cfg.DefaultNetwork)
	if !ok {
		network = Networks[NetworkAlfajores]
	}
	return &Store{
		storage:  st,
		provider: cfg.Provider,
		source:   cfg.Source,
		log:      cfg.Logger,
		session: Session{
			Network:          network,
			CameraPermission: CameraUnknown,
		},
		balances: ZeroBalance(),
	}
}

// Init restores persisted session state, eagerly queries the wallet provider
// (unless the user disconnected manually), subscribes to provider events and
// kicks off the asynchronous transaction load. Provider errors are degraded
// to a disconnected session, never propagated.
func (s *Store) Init(ctx context.Context) {
	s.restorePersisted()

	if s.provider != nil {
		if !s.manualDisconnect() {
			s.eagerConnect(ctx)
		}
		s.provider.OnAccountsChanged(s.onAccountsChanged)
		s.provider.OnChainChanged(s.onChainChanged)
	}

	if s.source != nil {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()
		go s.loadTransactions(ctx)
	}
}

// Close marks the store as torn down. In-flight asynchronous results arriving
// afterwards are discarded, never applied.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// SetWalletAddress sets the connected wallet address and clears any manual
// disconnect flag. The address is not validated here; callers supply a
// well-formed value.
func (s *Store) SetWalletAddress(address string) {
	s.persist(keyWalletAddress, address)
	s.remove(keyManualDisconnect)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.WalletAddress = address
	s.session.IsConnected = true
}

// SetNetwork replaces the active network descriptor
func (s *Store) SetNetwork(network Network) {
	s.persist(keyNetwork, string(network.Type))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Network = network
}

// SetCameraPermission sets and persists the camera permission state
func (s *Store) SetCameraPermission(permission CameraPermission) {
	s.persist(keyCameraPermission, string(permission))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CameraPermission = permission
}

// UpdateBalances merges a partial balance update, last write wins per token
func (s *Store) UpdateBalances(update BalanceUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if update.CCOP != nil {
		s.balances.CCOP = *update.CCOP
	}
	if update.CUSD != nil {
		s.balances.CUSD = *update.CUSD
	}
	if update.CEUR != nil {
		s.balances.CEUR = *update.CEUR
	}
}

// AddTransaction prepends a transaction to the list. No de-duplication is
// performed; callers must ensure unique ids.
func (s *Store) AddTransaction(tx Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]Transaction{tx}, s.transactions...)
}

// Disconnect clears the wallet address and connection flag, zeroes balances,
// empties the transaction list and records the manual disconnect flag so a
// later Init does not silently reconnect.
func (s *Store) Disconnect() {
	s.remove(keyWalletAddress)
	s.persist(keyManualDisconnect, "true")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.WalletAddress = ""
	s.session.IsConnected = false
	s.balances = ZeroBalance()
	s.transactions = nil
}

// Session returns a snapshot of the current session
func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Balances returns a snapshot of the current balances
func (s *Store) Balances() Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances
}

// TransactionsLoading reports whether the initial transaction load is in flight
func (s *Store) TransactionsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// restorePersisted loads the saved session preferences. Unknown or missing
// values leave the defaults in place.
func (s *Store) restorePersisted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addr, ok := s.lookup(keyWalletAddress); ok && addr != "" {
		s.session.WalletAddress = addr
		s.session.IsConnected = true
	}
	if nt, ok := s.lookup(keyNetwork); ok {
		if network, known := NetworkByType(NetworkType(nt)); known {
			s.session.Network = network
		}
	}
	if perm, ok := s.lookup(keyCameraPermission); ok {
		switch p := CameraPermission(perm); p {
		case CameraGranted, CameraDenied, CameraPrompt:
			s.session.CameraPermission = p
		}
	}
}

// eagerConnect initializes session state from the provider's current
// accounts and chain. All provider errors are logged and ignored.
func (s *Store) eagerConnect(ctx context.Context) {
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("wallet provider accounts query failed")
		return
	}
	if len(accounts) == 0 {
		return
	}
	s.SetWalletAddress(accounts[0])

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("wallet provider chain query failed")
		return
	}
	if network, ok := NetworkByChainID(chainID); ok {
		s.SetNetwork(network)
	}
}

func (s *Store) onAccountsChanged(accounts []string) {
	if len(accounts) == 0 {
		s.Disconnect()
		return
	}
	s.SetWalletAddress(accounts[0])
}

// onChainChanged maps the provider chain id to a known network; unrecognized
// ids are ignored.
func (s *Store) onChainChanged(chainID int64) {
	if network, ok := NetworkByChainID(chainID); ok {
		s.SetNetwork(network)
	}
}

// loadTransactions fetches the initial transaction list. Failures degrade to
// an empty list. Results arriving after Close are discarded.
func (s *Store) loadTransactions(ctx context.Context) {
	txs, err := s.source.FetchTransactions(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.loading = false
	if err != nil {
		s.log.Warn().Err(err).Msg("transaction fetch failed")
		s.transactions = []Transaction{}
		return
	}
	s.transactions = txs
}

func (s *Store) manualDisconnect() bool {
	v, ok := s.lookup(keyManualDisconnect)
	return ok && v == "true"
}

// lookup reads a storage key, degrading to "absent" on storage errors
func (s *Store) lookup(key string) (string, bool) {
	v, ok, err := s.storage.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		return "", false
	}
	return v, ok
}

// persist writes a storage key, degrading to in-memory-only on failure
func (s *Store) persist(key, value string) {
	if err := s.storage.Set(key, value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("storage write failed")
	}
}

func (s *Store) remove(key string) {
	if err := s.storage.Delete(key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("storage delete failed")
	}
}
