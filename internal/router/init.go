package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-api-boilerplate/config"
	"github.com/oksasatya/go-api-boilerplate/internal/application"
	infraauth "github.com/oksasatya/go-api-boilerplate/internal/infrastructure/auth"
	pginfra "github.com/oksasatya/go-api-boilerplate/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-api-boilerplate/internal/interface/http"
	"github.com/oksasatya/go-api-boilerplate/internal/router/modules"
)

// Deps carries the shared infrastructure handed to modules at
// composition time. Everything is passed explicitly; there is no
// mutable container.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	JWT    *infraauth.JWTService
	Events application.EventPublisher
}

// InitModules wires repositories, services and handlers, then
// registers all feature modules with the router registry. Called once
// during startup.
func InitModules(r *Registry, d Deps) {
	repo := pginfra.NewUserRepository(d.Pool)
	hasher := infraauth.NewBcryptHasher(d.Cfg.BcryptCost)
	svc := application.NewService(repo, hasher, d.JWT, d.Logger, d.Redis, d.Events)
	handler := handlers.NewAuthHandler(svc, d.Logger)

	r.Add(modules.NewAuthModule(handler, d.JWT, d.Redis))
	r.AddRoot(modules.NewHealthModule())
	if d.Cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(d.Redis))
	}
}
