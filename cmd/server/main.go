package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/globetepay/globete-server/internal/api"
	"github.com/globetepay/globete-server/internal/client"
	"github.com/globetepay/globete-server/internal/common"
	"github.com/globetepay/globete-server/internal/config"
	"github.com/globetepay/globete-server/internal/storage"
	"github.com/globetepay/globete-server/wallet"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	router, err := api.SetupRouter(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up router")
	}

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Globete Pay server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	store := bootstrapSession(log)
	defer store.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// bootstrapSession brings up the demo session store the way the app's
// onboarding flow does: restore persisted state, connect the mock wallet
// provider, seed demo balances on first connect and load the transaction feed
// from our own mock API.
func bootstrapSession(log zerolog.Logger) *wallet.Store {
	var st storage.Storage
	fileStore, err := storage.NewFile(config.GetStateFilePath())
	if err != nil {
		log.Warn().Err(err).Msg("state file unavailable, session will not persist")
		st = storage.NewMemory()
	} else {
		st = fileStore
	}

	network, ok := wallet.NetworkByType(wallet.NetworkType(config.GetDefaultNetwork()))
	if !ok {
		network = wallet.Networks[wallet.NetworkAlfajores]
	}

	provider := client.NewMockProvider([]string{common.GenerateMockAddress()}, network.ChainID)
	source := client.NewGlobeteClient(config.GetGlobeteAPIURL(), config.GetHTTPTimeout())

	store := wallet.New(wallet.Config{
		Storage:        st,
		Provider:       provider,
		Source:         source,
		DefaultNetwork: network.Type,
		Logger:         log,
	})
	store.Init(context.Background())

	sess := store.Session()
	if sess.IsConnected {
		// Seed the demo balances: 500 cCOP, 100 cUSD, 80 cEUR
		ccop := "500000000000000000000"
		cusd := "100000000000000000000"
		ceur := "80000000000000000000"
		store.UpdateBalances(wallet.BalanceUpdate{CCOP: &ccop, CUSD: &cusd, CEUR: &ceur})

		log.Info().
			Str("address", common.ShortenAddress(sess.WalletAddress)).
			Str("network", sess.Network.Name).
			Msg("session connected")
	} else {
		log.Info().Msg("session disconnected, connect via the wallet provider")
	}

	return store
}
