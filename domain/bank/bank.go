package bank

import (
	"errors"
	"time"

	bCtx "github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
)

// ErrInsufficientFunds is returned when an account balance cannot cover a
// debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Balance is the fund ledger entry of one account. Amount is a decimal
// string and never negative.
type Balance struct {
	Address   domain.Address `json:"address" bson:"address"`
	Amount    domain.Amount  `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	FindOne(c bCtx.Ctx, address domain.Address) (*Balance, error)
	Upsert(c bCtx.Ctx, b *Balance) error
}

type Usecase interface {
	// Deposit credits the account. The amount must be positive.
	Deposit(c bCtx.Ctx, address domain.Address, amount domain.Amount) (*Balance, error)

	BalanceOf(c bCtx.Ctx, address domain.Address) (*Balance, error)

	// Send moves amount from one account to another. It returns
	// ErrInsufficientFunds when the sender cannot cover the amount.
	Send(c bCtx.Ctx, from, to domain.Address, amount domain.Amount) error
}
