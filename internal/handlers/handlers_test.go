package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/GlebRadaev/goldmart/docs"
	accounthandlers "github.com/GlebRadaev/goldmart/internal/handlers/account"
	authhandlers "github.com/GlebRadaev/goldmart/internal/handlers/auth"
	pricehandlers "github.com/GlebRadaev/goldmart/internal/handlers/price"
	"github.com/GlebRadaev/goldmart/internal/service"
	"github.com/GlebRadaev/goldmart/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:   authhandlers.NewMockService(ctrl),
		PriceService:  pricehandlers.NewMockService(ctrl),
		LedgerService: accounthandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPriceHandler := NewMockPriceHandler(ctrl)
	mockAccountHandler := NewMockAccountHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPriceHandler.EXPECT().GetPrice(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetDetails(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Buy(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Sell(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		PriceHandler:   mockPriceHandler,
		AccountHandler: mockAccountHandler,
	}

	cache, _ := redismock.NewClientMock()
	limiter := ratelimit.New(cache, 5, 60*time.Second)

	router := chi.NewRouter()
	h.InitRoutes(router, limiter)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/gold/price", http.StatusOK},
		{"GET", "/api/user/gold-details", http.StatusUnauthorized},
		{"GET", "/api/gold/transactions", http.StatusUnauthorized},
		{"POST", "/api/gold/deposit", http.StatusUnauthorized},
		{"POST", "/api/gold/buy", http.StatusUnauthorized},
		{"POST", "/api/gold/sell", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
