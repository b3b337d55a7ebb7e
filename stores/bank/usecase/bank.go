package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/bank"
)

type impl struct {
	repo bank.Repo
}

// New creates the fund ledger usecase
func New(repo bank.Repo) bank.Usecase {
	return &impl{repo: repo}
}

func (im *impl) balanceOf(c ctx.Ctx, address domain.Address) (decimal.Decimal, error) {
	b, err := im.repo.FindOne(c, address)
	if err == domain.ErrNotFound {
		return decimal.Zero, nil
	} else if err != nil {
		return decimal.Zero, err
	}
	return b.Amount.ToDecimal()
}

func (im *impl) store(c ctx.Ctx, address domain.Address, amount decimal.Decimal) error {
	return im.repo.Upsert(c, &bank.Balance{
		Address:   address.ToLower(),
		Amount:    domain.AmountFromDecimal(amount),
		UpdatedAt: time.Now().UTC(),
	})
}

func (im *impl) Deposit(c ctx.Ctx, address domain.Address, amount domain.Amount) (*bank.Balance, error) {
	if address.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}

	value, err := amount.ToDecimal()
	if err != nil {
		return nil, err
	}
	if !value.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	cur, err := im.balanceOf(c, address)
	if err != nil {
		return nil, err
	}

	if err := im.store(c, address, cur.Add(value)); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"amount":  amount,
			"err":     err,
		}).Error("deposit failed")
		return nil, err
	}
	return im.BalanceOf(c, address)
}

func (im *impl) BalanceOf(c ctx.Ctx, address domain.Address) (*bank.Balance, error) {
	b, err := im.repo.FindOne(c, address)
	if err == domain.ErrNotFound {
		return &bank.Balance{
			Address: address.ToLower(),
			Amount:  domain.AmountFromDecimal(decimal.Zero),
		}, nil
	} else if err != nil {
		return nil, err
	}
	return b, nil
}

func (im *impl) Send(c ctx.Ctx, from, to domain.Address, amount domain.Amount) error {
	if from.IsEmpty() || to.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	value, err := amount.ToDecimal()
	if err != nil {
		return err
	}
	if value.IsNegative() {
		return domain.ErrInvalidAmount
	}
	// zero transfers move nothing, the listing fee may legitimately be zero
	if value.IsZero() {
		return nil
	}

	fromBalance, err := im.balanceOf(c, from)
	if err != nil {
		return err
	}
	if fromBalance.LessThan(value) {
		return bank.ErrInsufficientFunds
	}

	toBalance, err := im.balanceOf(c, to)
	if err != nil {
		return err
	}

	if err := im.store(c, from, fromBalance.Sub(value)); err != nil {
		c.WithFields(log.Fields{
			"from": from,
			"err":  err,
		}).Error("debit failed")
		return err
	}
	if err := im.store(c, to, toBalance.Add(value)); err != nil {
		c.WithFields(log.Fields{
			"to":  to,
			"err": err,
		}).Error("credit failed")
		return err
	}
	return nil
}
