package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/goldmart/internal/domain"
	"github.com/GlebRadaev/goldmart/internal/dto"
	"github.com/GlebRadaev/goldmart/internal/service/ledgerservice"
	"github.com/GlebRadaev/goldmart/pkg/auth"
	"github.com/GlebRadaev/goldmart/pkg/utils"
	"github.com/GlebRadaev/goldmart/pkg/validate"
)

type Service interface {
	GetAccount(ctx context.Context, userID int) (*domain.Account, error)
	Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Account, error)
	Buy(ctx context.Context, userID int, grams decimal.Decimal) (*domain.Account, error)
	Sell(ctx context.Context, userID int, grams decimal.Decimal) (*domain.Account, error)
	GetTransactions(ctx context.Context, userID, page, pageSize int) ([]domain.Transaction, int, error)
}

type AccountHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

// GetDetails godoc
//
//	@Summary		Check gold details
//	@Description	Gold holdings, currency balance and sell totals for the authenticated user
//	@Tags			Gold
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Account details"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"No account yet"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/gold-details [get]
func (h *AccountHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	account, err := h.ledgerService.GetAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		AvailableGold:    account.AvailableGold.InexactFloat64(),
		AvailableBalance: account.AvailableBalance.InexactFloat64(),
		LastGoldSell:     account.LastGoldSell.InexactFloat64(),
		TotalGoldSell:    account.TotalGoldSell.InexactFloat64(),
		UpdatedAt:        account.UpdatedAt,
	})
}

// Deposit godoc
//
//	@Summary		Deposit money
//	@Description	Deposit currency into the user's ledger account
//	@Tags			Gold
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.DepositResponseDTO	"New balance"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/gold/deposit [post]
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "The deposit amount must be greater than zero.")
		return
	}

	account, err := h.ledgerService.Deposit(r.Context(), userID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		if errors.Is(err, ledgerservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		AvailableBalance: account.AvailableBalance.InexactFloat64(),
	})
}

// Buy godoc
//
//	@Summary		Buy gold
//	@Description	Buy gold by weight at the current market price plus commission
//	@Tags			Gold
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TradeRequestDTO	true	"Buy request payload"
//	@Success		200		{object}	dto.BuyResponseDTO	"New balance and gold"
//	@Failure		400		{object}	utils.Response		"Invalid quantity or insufficient funds"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		500		{object}	utils.Response		"Price unavailable or internal error"
//	@Router			/api/gold/buy [post]
func (h *AccountHandler) Buy(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	grams, ok := h.decodeGrams(w, r)
	if !ok {
		return
	}

	account, err := h.ledgerService.Buy(r.Context(), userID, grams)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidQuantity), errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Could not buy gold")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuyResponseDTO{
		AvailableBalance: account.AvailableBalance.InexactFloat64(),
		AvailableGold:    account.AvailableGold.InexactFloat64(),
	})
}

// Sell godoc
//
//	@Summary		Sell gold
//	@Description	Sell gold by weight at the current market price minus commission
//	@Tags			Gold
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TradeRequestDTO	true	"Sell request payload"
//	@Success		200		{object}	dto.SellResponseDTO	"New balance, gold and total sold"
//	@Failure		400		{object}	utils.Response		"Invalid quantity or insufficient gold"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		500		{object}	utils.Response		"Price unavailable or internal error"
//	@Router			/api/gold/sell [post]
func (h *AccountHandler) Sell(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	grams, ok := h.decodeGrams(w, r)
	if !ok {
		return
	}

	account, err := h.ledgerService.Sell(r.Context(), userID, grams)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidQuantity), errors.Is(err, ledgerservice.ErrInsufficientGold):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Could not sell gold")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SellResponseDTO{
		AvailableBalance: account.AvailableBalance.InexactFloat64(),
		AvailableGold:    account.AvailableGold.InexactFloat64(),
		TotalGoldSell:    account.TotalGoldSell.InexactFloat64(),
	})
}

// GetTransactions godoc
//
//	@Summary		Transaction history
//	@Description	Completed deposits and trades for the authenticated user, newest first
//	@Tags			Gold
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page		query		int	false	"Page number"
//	@Param			page_size	query		int	false	"Page size, max 100"
//	@Success		200			{object}	dto.TransactionListResponseDTO	"Paged transaction list"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/gold/transactions [get]
func (h *AccountHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	transactions, total, err := h.ledgerService.GetTransactions(r.Context(), userID, page, pageSize)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := dto.TransactionListResponseDTO{
		Transactions: make([]dto.TransactionDTO, len(transactions)),
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
	}
	for i, t := range transactions {
		response.Transactions[i] = dto.TransactionDTO{
			Type:             t.Type,
			Grams:            t.Grams.InexactFloat64(),
			AmountInCurrency: t.AmountInCurrency.InexactFloat64(),
			CommissionRate:   t.CommissionRate.InexactFloat64(),
			CreatedAt:        t.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *AccountHandler) decodeGrams(w http.ResponseWriter, r *http.Request) (decimal.Decimal, bool) {
	var req dto.TradeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return decimal.Zero, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Grams must be a positive number.")
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(req.Grams), true
}
