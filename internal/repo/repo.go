package repo

import (
	"github.com/GlebRadaev/goldmart/internal/pg"
	accountrepo "github.com/GlebRadaev/goldmart/internal/repo/account-repo"
	transactionrepo "github.com/GlebRadaev/goldmart/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/goldmart/internal/repo/user-repo"
	"github.com/GlebRadaev/goldmart/internal/service/authservice"
	"github.com/GlebRadaev/goldmart/internal/service/ledgerservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	AccountRepo     ledgerservice.AccountRepo
	TransactionRepo ledgerservice.TransactionRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	accountRepo := accountrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
	}
}
