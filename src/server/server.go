package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
)

// requestID tags every request with a uuid and logs method, path and
// duration once the handler returns.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		next.ServeHTTP(w, r)

		logger.WithFields(logger.Fields{
			"requestId": id,
			"method":    r.Method,
			"path":      r.URL.Path,
			"duration":  time.Since(start),
		}).Info("request handled")
	})
}

func NewRouter(engine reportFetcher) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error("/healthcheck error")
		}
	})

	r.Route("/api/cot", func(r chi.Router) {
		r.Get("/symbols", SymbolsHandler())
		r.Get("/rankings", RankingsHandler(engine))
		r.Get("/{symbol}/latest", LatestHandler(engine))
		r.Get("/{symbol}/history", HistoryHandler(engine))
		r.Get("/{symbol}/indicators", IndicatorsHandler(engine))
	})

	return r
}

func StartServer(port string, engine reportFetcher) {
	r := NewRouter(engine)

	// Graceful server
	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
