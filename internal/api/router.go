package api

import (
	"net/http"
	"time"

	"github.com/AlexZinkM/elrond-wallet/internal/handler"
	"github.com/AlexZinkM/elrond-wallet/internal/logger"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(elrondHandler *handler.ElrondHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Elrond endpoints
	mux.HandleFunc("/elrond/generate", elrondHandler.Generate)
	mux.HandleFunc("/elrond/balance", elrondHandler.GetBalance)
	mux.HandleFunc("/elrond/pay", elrondHandler.Pay)
	mux.HandleFunc("/elrond/transactions", elrondHandler.TransactionHistory)

	return logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs method, path, status and latency of every request
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)),
		)
	})
}
