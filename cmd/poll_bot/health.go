package main

import (
	"errors"
	"expvar"
	"go.uber.org/zap"
	"net/http"
)

const healthCheckAddr = ":8080"

func newHealthCheckMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/poll-bot/healthcheck", healthCheckHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	return mux
}

func startHealthCheckServer(logger *zap.SugaredLogger) *http.Server {
	server := &http.Server{Addr: healthCheckAddr, Handler: newHealthCheckMux()}

	go func() {
		logger.Infow("setting up health check server", "addr", healthCheckAddr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("failed to start http server", "error", err)
		}
	}()

	return server
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
