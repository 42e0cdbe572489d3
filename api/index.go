package handler

import (
	"net/http"
	"sync"

	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/di"
	"github.com/Mrithul03/vendroo-server/shared/logger"
)

var (
	initOnce sync.Once
	mux      http.Handler
)

// Handler is the entrypoint for serverless runtimes that route every request
// through a single function. The service is wired once and reused across
// invocations within the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		mux = di.InitializeService().Handler()
	})

	mux.ServeHTTP(w, r)
}
