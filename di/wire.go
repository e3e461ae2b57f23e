//go:build wireinject
// +build wireinject

package di

import (
	"todos/config"
	"todos/infras/otel"
	"todos/infras/redis"
	todoListHandler "todos/internal/handlers/todolist"
	"todos/shared/cache"
	"todos/transport/http"
	"todos/transport/http/middleware"
	"todos/transport/http/router"

	todoListRepository "todos/internal/domains/todolist/repository"
	todoListService "todos/internal/domains/todolist/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoListDomain = wire.NewSet(
	todoListRepository.NewOpener,
	todoListService.New,
)

var domains = wire.NewSet(
	todoListDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoListHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil
}
