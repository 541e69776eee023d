package price

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goldmart/internal/domain"
	"github.com/GlebRadaev/goldmart/internal/dto"
)

func NewMock(t *testing.T) (*PriceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetPriceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.PriceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetPrice(gomock.Any()).
					Return(&domain.PriceQuote{
						PerOunceUSD:   decimal.NewFromFloat(2034.56),
						PerGramUSD:    decimal.NewFromFloat(71.79),
						PerOunceLocal: decimal.NewFromFloat(168868.48),
						PerGramLocal:  decimal.NewFromFloat(5958.66),
						Source:        domain.PriceSourceCache,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PriceResponseDTO{
				PerOunceUSD:   2034.56,
				PerGramUSD:    71.79,
				PerOunceLocal: 168868.48,
				PerGramLocal:  5958.66,
				Source:        domain.PriceSourceCache,
			},
		},
		{
			name: "Price unavailable",
			prepareMock: func() {
				service.EXPECT().
					GetPrice(gomock.Any()).
					Return(nil, errors.New("gold price is unavailable"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Could not retrieve gold price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/price", nil)
			w := httptest.NewRecorder()

			handler.GetPrice(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PriceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
