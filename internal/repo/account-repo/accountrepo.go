package accountrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

const accountColumns = `id, user_id, available_gold::text, available_balance::text, last_gold_sell::text, total_gold_sell::text, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	var gold, balance, lastSell, totalSell string
	err := row.Scan(&account.ID, &account.UserID, &gold, &balance, &lastSell, &totalSell, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if account.AvailableGold, err = decimal.NewFromString(gold); err != nil {
		return nil, fmt.Errorf("parse available gold: %w", err)
	}
	if account.AvailableBalance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("parse available balance: %w", err)
	}
	if account.LastGoldSell, err = decimal.NewFromString(lastSell); err != nil {
		return nil, fmt.Errorf("parse last gold sell: %w", err)
	}
	if account.TotalGoldSell, err = decimal.NewFromString(totalSell); err != nil {
		return nil, fmt.Errorf("parse total gold sell: %w", err)
	}
	return &account, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetForUpdate locks the account row until the surrounding transaction
// commits. Callers must run inside pg.TXManager.Begin; the lock scope
// is one row, so accounts of different users never block each other.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
        FOR UPDATE
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) CreateIfAbsent(ctx context.Context, userID int) error {
	query := `
        INSERT INTO accounts (user_id, available_gold, available_balance, last_gold_sell, total_gold_sell, updated_at)
        VALUES ($1, 0, 0, 0, 0, NOW())
        ON CONFLICT (user_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, userID int, account *domain.Account) (*domain.Account, error) {
	query := `
        UPDATE accounts
        SET available_gold = $1, available_balance = $2, last_gold_sell = $3, total_gold_sell = $4, updated_at = NOW()
        WHERE user_id = $5
        RETURNING ` + accountColumns + `
	`
	updated, err := scanAccount(r.db.QueryRow(ctx, query,
		account.AvailableGold.String(),
		account.AvailableBalance.String(),
		account.LastGoldSell.String(),
		account.TotalGoldSell.String(),
		userID,
	))
	if err != nil {
		zap.L().Error("failed to update account", zap.Error(err))
		return nil, err
	}
	return updated, nil
}
