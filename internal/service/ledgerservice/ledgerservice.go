package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goldmart/internal/config"
	"github.com/GlebRadaev/goldmart/internal/domain"
	"github.com/GlebRadaev/goldmart/internal/pg"
)

type AccountRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Account, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.Account, error)
	CreateIfAbsent(ctx context.Context, userID int) error
	Update(ctx context.Context, userID int, account *domain.Account) (*domain.Account, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error)
	CountByUserID(ctx context.Context, userID int) (int, error)
}

type PriceProvider interface {
	GetPrice(ctx context.Context) (*domain.PriceQuote, error)
}

var (
	ErrInvalidAmount     = errors.New("deposit amount must be positive and below the maximum")
	ErrInvalidQuantity   = errors.New("grams must be a positive number")
	ErrInsufficientFunds = errors.New("insufficient balance, please deposit money to purchase gold")
	ErrInsufficientGold  = errors.New("insufficient gold balance")
	ErrAccountNotFound   = errors.New("no gold details found for this user")
)

// Service is the ledger engine: deposit, buy and sell against the
// current market price. Every mutation re-reads the account under a
// row lock and commits the balance change together with its
// transaction record, so concurrent operations on one account apply in
// some serial order and operations on different accounts do not block
// each other.
type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	price           PriceProvider
	txManager       pg.TXManager

	commissionRate decimal.Decimal
	maxDeposit     decimal.Decimal
}

func New(cfg *config.Config, accountRepo AccountRepo, transactionRepo TransactionRepo, price PriceProvider, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		price:           price,
		txManager:       txManager,
		commissionRate:  decimal.NewFromFloat(cfg.CommissionRate),
		maxDeposit:      decimal.NewFromFloat(cfg.MaxDeposit),
	}
}

func (s *Service) GetAccount(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Account, error) {
	if !amount.IsPositive() || amount.GreaterThanOrEqual(s.maxDeposit) {
		return nil, ErrInvalidAmount
	}
	amount = domain.Round2(amount)

	var updated *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.getOrCreateForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		account.AvailableBalance = domain.Round2(account.AvailableBalance.Add(amount))
		if updated, err = s.accountRepo.Update(ctx, userID, account); err != nil {
			return err
		}

		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:           userID,
			Type:             domain.TransactionDeposit,
			Grams:            decimal.Zero,
			AmountInCurrency: amount,
			CommissionRate:   decimal.Zero,
			CreatedAt:        time.Now(),
		})
		return err
	})
	if err != nil {
		zap.L().Error("deposit failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Buy(ctx context.Context, userID int, grams decimal.Decimal) (*domain.Account, error) {
	if !grams.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	quote, err := s.price.GetPrice(ctx)
	if err != nil {
		return nil, err
	}

	unitCost := domain.Round2(grams.Mul(quote.PerGramLocal))
	totalCost := domain.Round2(unitCost.Mul(decimal.NewFromInt(1).Add(s.commissionRate)))

	var updated *domain.Account
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.getOrCreateForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if account.AvailableBalance.LessThan(totalCost) {
			return ErrInsufficientFunds
		}

		account.AvailableBalance = domain.Round2(account.AvailableBalance.Sub(totalCost))
		account.AvailableGold = domain.Round2(account.AvailableGold.Add(grams))
		if updated, err = s.accountRepo.Update(ctx, userID, account); err != nil {
			return err
		}

		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:           userID,
			Type:             domain.TransactionBuy,
			Grams:            domain.Round2(grams),
			AmountInCurrency: totalCost,
			CommissionRate:   s.commissionRate,
			CreatedAt:        time.Now(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return nil, err
		}
		zap.L().Error("buy failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Sell(ctx context.Context, userID int, grams decimal.Decimal) (*domain.Account, error) {
	if !grams.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	quote, err := s.price.GetPrice(ctx)
	if err != nil {
		return nil, err
	}

	gross := domain.Round2(grams.Mul(quote.PerGramLocal))
	net := domain.Round2(gross.Mul(decimal.NewFromInt(1).Sub(s.commissionRate)))

	var updated *domain.Account
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.getOrCreateForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if account.AvailableGold.LessThan(grams) {
			return ErrInsufficientGold
		}

		account.AvailableGold = domain.Round2(account.AvailableGold.Sub(grams))
		account.AvailableBalance = domain.Round2(account.AvailableBalance.Add(net))
		account.LastGoldSell = domain.Round2(grams)
		account.TotalGoldSell = domain.Round2(account.TotalGoldSell.Add(grams))
		if updated, err = s.accountRepo.Update(ctx, userID, account); err != nil {
			return err
		}

		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:           userID,
			Type:             domain.TransactionSell,
			Grams:            domain.Round2(grams),
			AmountInCurrency: gross,
			CommissionRate:   s.commissionRate,
			CreatedAt:        time.Now(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientGold) {
			return nil, err
		}
		zap.L().Error("sell failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID, page, pageSize int) ([]domain.Transaction, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	transactions, err := s.transactionRepo.ListByUserID(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.transactionRepo.CountByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count transactions", zap.Error(err))
		return nil, 0, err
	}
	return transactions, total, nil
}

// getOrCreateForUpdate locks the account row for the rest of the
// transaction, creating the row first for users who have never traded.
func (s *Service) getOrCreateForUpdate(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accountRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	if err := s.accountRepo.CreateIfAbsent(ctx, userID); err != nil {
		return nil, err
	}
	account, err = s.accountRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("account for user %d missing after create", userID)
	}
	return account, nil
}
