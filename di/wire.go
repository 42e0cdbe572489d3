//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/infras/otel"
	"github.com/Mrithul03/vendroo-server/infras/postgres"
	"github.com/Mrithul03/vendroo-server/infras/storage"
	"github.com/Mrithul03/vendroo-server/transport/http"
	"github.com/Mrithul03/vendroo-server/transport/http/middleware"
	"github.com/Mrithul03/vendroo-server/transport/http/router"

	formRepository "github.com/Mrithul03/vendroo-server/internal/domains/form/repository"
	formService "github.com/Mrithul03/vendroo-server/internal/domains/form/service"
	todoRepository "github.com/Mrithul03/vendroo-server/internal/domains/todo/repository"
	todoService "github.com/Mrithul03/vendroo-server/internal/domains/todo/service"

	formHandler "github.com/Mrithul03/vendroo-server/internal/handlers/form"
	healthHandler "github.com/Mrithul03/vendroo-server/internal/handlers/health"
	todoHandler "github.com/Mrithul03/vendroo-server/internal/handlers/todo"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	storage.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var formDomain = wire.NewSet(
	formRepository.New,
	formService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	formDomain,
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	formHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
