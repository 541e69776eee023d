package service

import (
	"github.com/go-redis/redis/v8"

	"github.com/GlebRadaev/goldmart/internal/config"
	"github.com/GlebRadaev/goldmart/internal/handlers/account"
	"github.com/GlebRadaev/goldmart/internal/handlers/auth"
	"github.com/GlebRadaev/goldmart/internal/handlers/price"
	"github.com/GlebRadaev/goldmart/internal/pg"
	"github.com/GlebRadaev/goldmart/internal/repo"
	"github.com/GlebRadaev/goldmart/internal/service/authservice"
	"github.com/GlebRadaev/goldmart/internal/service/ledgerservice"
	"github.com/GlebRadaev/goldmart/internal/service/priceservice"

	pkgauth "github.com/GlebRadaev/goldmart/pkg/auth"
)

type Services struct {
	AuthService   auth.Service
	PriceService  price.Service
	LedgerService account.Service
}

func New(cfg *config.Config, repo *repo.Repositories, feed priceservice.Feed, cache *redis.Client, txManager pg.TXManager) *Services {
	priceService := priceservice.New(cfg, feed, cache)
	ledgerService := ledgerservice.New(cfg, repo.AccountRepo, repo.TransactionRepo, priceService, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		PriceService:  priceService,
		LedgerService: ledgerService,
	}
}
