package price

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/goldmart/internal/domain"
	"github.com/GlebRadaev/goldmart/internal/dto"
	"github.com/GlebRadaev/goldmart/pkg/utils"
)

type Service interface {
	GetPrice(ctx context.Context) (*domain.PriceQuote, error)
}

type PriceHandler struct {
	priceService Service
}

func New(priceService Service) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// GetPrice godoc
//
//	@Summary		Check gold price
//	@Description	Current gold price per ounce and per gram, in USD and local currency
//	@Tags			Gold
//	@Produce		json
//	@Success		200	{object}	dto.PriceResponseDTO	"Current gold price"
//	@Failure		500	{object}	utils.Response			"Price unavailable"
//	@Router			/api/gold/price [get]
func (h *PriceHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	quote, err := h.priceService.GetPrice(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve gold price")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PriceResponseDTO{
		PerOunceUSD:   quote.PerOunceUSD.InexactFloat64(),
		PerGramUSD:    quote.PerGramUSD.InexactFloat64(),
		PerOunceLocal: quote.PerOunceLocal.InexactFloat64(),
		PerGramLocal:  quote.PerGramLocal.InexactFloat64(),
		Source:        quote.Source,
	})
}
