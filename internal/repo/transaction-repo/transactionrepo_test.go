package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/goldmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestCreate(t *testing.T) {
	query := regexp.QuoteMeta(`
		INSERT INTO transactions (user_id, type, grams, amount_in_currency, commission_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`)

	now := time.Now()
	transaction := &domain.Transaction{
		UserID:           1,
		Type:             domain.TransactionBuy,
		Grams:            decimal.NewFromFloat(0.1),
		AmountInCurrency: decimal.NewFromInt(612),
		CommissionRate:   decimal.NewFromFloat(0.02),
		CreatedAt:        now,
	}

	t.Run("Successful insert", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).
			WithArgs(1, domain.TransactionBuy, "0.1", "612", "0.02", now).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

		created, err := repo.Create(context.Background(), transaction)
		assert.NoError(t, err)
		assert.Equal(t, 42, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).
			WithArgs(1, domain.TransactionBuy, "0.1", "612", "0.02", now).
			WillReturnError(errors.New("connection lost"))

		created, err := repo.Create(context.Background(), transaction)
		assert.Error(t, err)
		assert.Nil(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListByUserID(t *testing.T) {
	query := regexp.QuoteMeta(`
        SELECT id, user_id, type, grams::text, amount_in_currency::text, commission_rate::text, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `)

	t.Run("Returns page of records", func(t *testing.T) {
		repo, mock := NewMock(t)
		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "grams", "amount_in_currency", "commission_rate", "created_at"}).
			AddRow(2, 1, domain.TransactionSell, "0.05", "300.00", "0.02", time.Now()).
			AddRow(1, 1, domain.TransactionDeposit, "0.00", "1000.00", "0.00", time.Now())
		mock.ExpectQuery(query).WithArgs(1, 10, 0).WillReturnRows(rows)

		transactions, err := repo.ListByUserID(context.Background(), 1, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
		assert.Equal(t, domain.TransactionSell, transactions[0].Type)
		assert.True(t, transactions[0].AmountInCurrency.Equal(decimal.NewFromInt(300)))
		assert.True(t, transactions[1].Grams.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No records", func(t *testing.T) {
		repo, mock := NewMock(t)
		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "grams", "amount_in_currency", "commission_rate", "created_at"})
		mock.ExpectQuery(query).WithArgs(1, 10, 0).WillReturnRows(rows)

		transactions, err := repo.ListByUserID(context.Background(), 1, 10, 0)
		assert.NoError(t, err)
		assert.Empty(t, transactions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(1, 10, 0).WillReturnError(errors.New("connection lost"))

		transactions, err := repo.ListByUserID(context.Background(), 1, 10, 0)
		assert.Error(t, err)
		assert.Nil(t, transactions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountByUserID(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM transactions WHERE user_id = $1`)

	t.Run("Returns count", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 7, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("connection lost"))

		count, err := repo.CountByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
