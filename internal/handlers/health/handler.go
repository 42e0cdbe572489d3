package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/transport/http/response"
)

type Handler struct {
	config *config.Config
}

func New(config *config.Config) Handler {
	return Handler{
		config: config,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Liveness)
}

// Liveness reports that the process is up. Plain text on purpose, so uptime
// checkers and browsers get a readable body.
func (handler *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	response.WithText(w, http.StatusOK, handler.config.App.Name+" is running")
}
