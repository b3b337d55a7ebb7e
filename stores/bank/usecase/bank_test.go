package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/bank"
	mBank "github.com/bayt-xyz/marketapi/domain/bank/mocks"
	"github.com/bayt-xyz/marketapi/stores/bank/usecase"
)

const (
	alice = domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	bob   = domain.Address("0x2b5ad5c4795c026514f8317c7a215e218dccd6cf")
)

func hasAmount(address domain.Address, amount domain.Amount) interface{} {
	return mock.MatchedBy(func(b *bank.Balance) bool {
		return b.Address == address && b.Amount == amount
	})
}

func TestDepositValidation(t *testing.T) {
	c := ctx.Background()
	uc := usecase.New(&mBank.Repo{})

	_, err := uc.Deposit(c, domain.EmptyAddress, "1")
	assert.Equal(t, domain.ErrInvalidAddress, err)

	_, err = uc.Deposit(c, alice, "0")
	assert.Equal(t, domain.ErrInvalidAmount, err)

	_, err = uc.Deposit(c, alice, "-3")
	assert.Equal(t, domain.ErrInvalidAmount, err)

	_, err = uc.Deposit(c, alice, "banana")
	assert.Equal(t, domain.ErrInvalidAmount, err)
}

func TestDeposit(t *testing.T) {
	c := ctx.Background()
	repo := &mBank.Repo{}
	uc := usecase.New(repo)

	repo.On("FindOne", mock.Anything, alice).Return(&bank.Balance{
		Address: alice,
		Amount:  "1.5",
	}, nil)
	repo.On("Upsert", mock.Anything, hasAmount(alice, "4")).Return(nil)

	b, err := uc.Deposit(c, alice, "2.5")
	require.NoError(t, err)
	assert.Equal(t, alice, b.Address)
	repo.AssertCalled(t, "Upsert", mock.Anything, hasAmount(alice, "4"))
}

func TestBalanceOfUnknownAccount(t *testing.T) {
	c := ctx.Background()
	repo := &mBank.Repo{}
	uc := usecase.New(repo)

	repo.On("FindOne", mock.Anything, bob).Return(nil, domain.ErrNotFound)

	b, err := uc.BalanceOf(c, bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount("0"), b.Amount)
}

func TestSendInsufficientFunds(t *testing.T) {
	c := ctx.Background()
	repo := &mBank.Repo{}
	uc := usecase.New(repo)

	repo.On("FindOne", mock.Anything, alice).Return(&bank.Balance{
		Address: alice,
		Amount:  "1",
	}, nil)

	err := uc.Send(c, alice, bob, "2")
	assert.Equal(t, bank.ErrInsufficientFunds, err)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSendZeroAmount(t *testing.T) {
	c := ctx.Background()
	repo := &mBank.Repo{}
	uc := usecase.New(repo)

	// a zero transfer succeeds without touching any balance, even for an
	// account that has never deposited
	err := uc.Send(c, alice, bob, "0")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)

	err = uc.Send(c, alice, bob, "-1")
	assert.Equal(t, domain.ErrInvalidAmount, err)
}

func TestSend(t *testing.T) {
	c := ctx.Background()
	repo := &mBank.Repo{}
	uc := usecase.New(repo)

	repo.On("FindOne", mock.Anything, alice).Return(&bank.Balance{
		Address: alice,
		Amount:  "3",
	}, nil)
	repo.On("FindOne", mock.Anything, bob).Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, hasAmount(alice, "1")).Return(nil)
	repo.On("Upsert", mock.Anything, hasAmount(bob, "2")).Return(nil)

	err := uc.Send(c, alice, bob, "2")
	require.NoError(t, err)
	repo.AssertCalled(t, "Upsert", mock.Anything, hasAmount(alice, "1"))
	repo.AssertCalled(t, "Upsert", mock.Anything, hasAmount(bob, "2"))
}
