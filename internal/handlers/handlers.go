package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/goldmart/docs"
	accounthandlers "github.com/GlebRadaev/goldmart/internal/handlers/account"
	authhandlers "github.com/GlebRadaev/goldmart/internal/handlers/auth"
	pricehandlers "github.com/GlebRadaev/goldmart/internal/handlers/price"
	"github.com/GlebRadaev/goldmart/internal/service"
	"github.com/GlebRadaev/goldmart/pkg/auth"
	"github.com/GlebRadaev/goldmart/pkg/ratelimit"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PriceHandler interface {
	GetPrice(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetDetails(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Buy(w http.ResponseWriter, r *http.Request)
	Sell(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	PriceHandler   PriceHandler
	AccountHandler AccountHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		PriceHandler:   pricehandlers.New(s.PriceService),
		AccountHandler: accounthandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, limiter *ratelimit.Middleware) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)
		r.Get("/gold/price", h.PriceHandler.GetPrice)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/user/gold-details", h.AccountHandler.GetDetails)
			r.Get("/gold/transactions", h.AccountHandler.GetTransactions)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Handler)
				r.Post("/gold/deposit", h.AccountHandler.Deposit)
				r.Post("/gold/buy", h.AccountHandler.Buy)
				r.Post("/gold/sell", h.AccountHandler.Sell)
			})
		})
	})

	return r
}
