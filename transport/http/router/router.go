package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/internal/handlers/form"
	"github.com/Mrithul03/vendroo-server/internal/handlers/health"
	"github.com/Mrithul03/vendroo-server/internal/handlers/todo"
)

type DomainHandlers struct {
	Health health.Handler
	Form   form.Handler
	Todo   todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Form.Router(routerGroup)
		r.DomainHandlers.Todo.Router(routerGroup)
	})

	// Stored photos are served back from the upload directory.
	uploadPath := r.Config.Upload.URLPath
	fileServer := http.StripPrefix(uploadPath+"/", http.FileServer(http.Dir(r.Config.Upload.Dir)))
	router.Handle(uploadPath+"/*", fileServer)
}

func New(domainHandlers DomainHandlers, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Config:         cfg,
	}
}
