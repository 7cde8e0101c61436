package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/globetepay/globete-server/docs"
	"github.com/globetepay/globete-server/internal/config"
	"github.com/globetepay/globete-server/internal/handler"
	"github.com/globetepay/globete-server/internal/verifier"
)

// SetupRouter sets up the router with all handlers
func SetupRouter(log zerolog.Logger) (http.Handler, error) {
	cfg := config.Get()

	v := verifier.New(verifier.Config{
		Scope:        cfg.VerifierScope,
		Endpoint:     cfg.VerifierEndpoint,
		MockPassport: cfg.VerifierMockPassport,
		MinimumAge:   cfg.VerifierMinimumAge,
	})

	banking := handler.NewBankingHandler()
	globete := handler.NewGlobeteHandler(v)

	r := mux.NewRouter()
	r.Use(requestLogger(log))

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Mock banking/settlement endpoints
	r.HandleFunc("/banking-api/directory/resolve", banking.ResolveDirectory).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/transfiya/token", banking.Token).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/transfiya/action", banking.SignAction).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/transfiya/credentials", banking.Credentials).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/transfiya/transfer", banking.SubmitTransfer).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/transfiya/transfer/{ref}", banking.TransferStatus).Methods(http.MethodGet)
	r.HandleFunc("/banking-api/v1/action", banking.Action).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/v1/credit", banking.Credit).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/v1/debit", banking.Debit).Methods(http.MethodPost)
	r.HandleFunc("/banking-api/v1/status", banking.StatusAck).Methods(http.MethodPost)

	// Globete API
	r.HandleFunc("/globete-api/transactions", globete.Transactions).Methods(http.MethodGet)
	r.HandleFunc("/globete-api/identity-verification", globete.VerifyIdentity).Methods(http.MethodPost)
	r.HandleFunc("/globete-api/identity-verification", globete.VerifierStatus).Methods(http.MethodGet)
	r.HandleFunc("/globete-api/payment-request", globete.PaymentRequest).Methods(http.MethodPost)

	return r, nil
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs one line per request
func requestLogger(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
