package transactionrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goldmart/internal/domain"
	"github.com/GlebRadaev/goldmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends one immutable transaction record. It is called from
// inside the ledger transaction so the record commits together with
// the account mutation.
func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, grams, amount_in_currency, commission_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		transaction.UserID,
		transaction.Type,
		transaction.Grams.String(),
		transaction.AmountInCurrency.String(),
		transaction.CommissionRate.String(),
		transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, grams::text, amount_in_currency::text, commission_rate::text, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var grams, amount, commission string
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &grams, &amount, &commission, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		if t.Grams, err = decimal.NewFromString(grams); err != nil {
			return nil, fmt.Errorf("parse grams: %w", err)
		}
		if t.AmountInCurrency, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		if t.CommissionRate, err = decimal.NewFromString(commission); err != nil {
			return nil, fmt.Errorf("parse commission rate: %w", err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

func (r *Repository) CountByUserID(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM transactions WHERE user_id = $1", userID).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count transactions", zap.Error(err))
		return 0, err
	}
	return count, nil
}
