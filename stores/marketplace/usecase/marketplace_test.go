package usecase_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/bank"
	mBank "github.com/bayt-xyz/marketapi/domain/bank/mocks"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	mMarketplace "github.com/bayt-xyz/marketapi/domain/marketplace/mocks"
	"github.com/bayt-xyz/marketapi/domain/registry"
	mRegistry "github.com/bayt-xyz/marketapi/domain/registry/mocks"
	bankUsecase "github.com/bayt-xyz/marketapi/stores/bank/usecase"
	"github.com/bayt-xyz/marketapi/stores/marketplace/usecase"
)

const (
	owner   = domain.Address("0xc165fbd2a99c928e8999a1c4184ec3c16d169b4f")
	custody = domain.Address("0x05c70c10ff1eb23e5fc07dedfdf723084ea1b22a")
	seller  = domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	buyer1  = domain.Address("0x2b5ad5c4795c026514f8317c7a215e218dccd6cf")
	buyer2  = domain.Address("0x6813eb9362372eef6200f3b1dbc3f819671cba69")
)

// passthroughTxRunner runs the body directly, without a storage transaction.
type passthroughTxRunner struct{}

func (passthroughTxRunner) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

func newMocked() (*mMarketplace.Repo, *mMarketplace.StateRepo, *mRegistry.Usecase, *mBank.Usecase, marketplace.Usecase) {
	listingRepo := &mMarketplace.Repo{}
	stateRepo := &mMarketplace.StateRepo{}
	registryUC := &mRegistry.Usecase{}
	bankUC := &mBank.Usecase{}
	uc := usecase.New(&usecase.MarketplaceUsecaseCfg{
		ListingRepo:    listingRepo,
		StateRepo:      stateRepo,
		Registry:       registryUC,
		Bank:           bankUC,
		TxRunner:       passthroughTxRunner{},
		OwnerAddress:   owner,
		CustodyAddress: custody,
	})
	return listingRepo, stateRepo, registryUC, bankUC, uc
}

func TestMintValidation(t *testing.T) {
	c := ctx.Background()
	_, _, _, _, uc := newMocked()

	payload := &marketplace.MintPayload{TokenURI: "ipfs://meta", Price: "1"}

	_, err := uc.Mint(c, domain.EmptyAddress, payload, "0.025")
	assert.Equal(t, domain.ErrInvalidAddress, err)

	_, err = uc.Mint(c, seller, &marketplace.MintPayload{TokenURI: "ipfs://meta", Price: "0"}, "0.025")
	assert.Equal(t, domain.ErrPriceCannotBeZero, err)

	_, err = uc.Mint(c, seller, &marketplace.MintPayload{TokenURI: "ipfs://meta", Price: "banana"}, "0.025")
	assert.Equal(t, domain.ErrInvalidAmount, err)
}

func TestMintListingFeeMismatch(t *testing.T) {
	c := ctx.Background()
	_, stateRepo, _, bankUC, uc := newMocked()

	stateRepo.On("Get", mock.Anything).Return(&marketplace.MarketState{
		Key:        marketplace.StateKey,
		ListingFee: "0.025",
	}, nil)

	_, err := uc.Mint(c, seller, &marketplace.MintPayload{TokenURI: "ipfs://meta", Price: "1"}, "0.5")
	assert.Equal(t, domain.ErrListingFeeMismatch, err)

	// equal value in a different notation is still a match, the flow reaches
	// the fee collection step
	bankUC.On("Send", mock.Anything, seller, custody, domain.Amount("0.025")).
		Return(errors.New("boom"))
	_, err = uc.Mint(c, seller, &marketplace.MintPayload{TokenURI: "ipfs://meta", Price: "1"}, "0.0250")
	assert.Equal(t, domain.ErrFundTransferFailed, err)
}

func TestMintFeeCollectFailed(t *testing.T) {
	c := ctx.Background()
	_, stateRepo, _, bankUC, uc := newMocked()

	stateRepo.On("Get", mock.Anything).Return(&marketplace.MarketState{
		Key:        marketplace.StateKey,
		ListingFee: "0.025",
	}, nil)
	bankUC.On("Send", mock.Anything, seller, custody, domain.Amount("0.025")).
		Return(bank.ErrInsufficientFunds)

	_, err := uc.Mint(c, seller, &marketplace.MintPayload{TokenURI: "ipfs://meta", Price: "1"}, "0.025")
	assert.Equal(t, domain.ErrFundTransferFailed, err)
}

func TestBuyAlreadySold(t *testing.T) {
	c := ctx.Background()
	listingRepo, _, _, _, uc := newMocked()

	listingRepo.On("FindOne", mock.Anything, domain.TokenId(1)).Return(&marketplace.Listing{
		TokenId: 1,
		Owner:   buyer2,
		Price:   "1",
		Sold:    true,
	}, nil)

	err := uc.Buy(c, buyer1, 1, "1")
	assert.Equal(t, domain.ErrTokenAlreadySold, err)
}

func TestBuyPriceMismatch(t *testing.T) {
	c := ctx.Background()
	listingRepo, _, _, _, uc := newMocked()

	listingRepo.On("FindOne", mock.Anything, domain.TokenId(1)).Return(&marketplace.Listing{
		TokenId: 1,
		Owner:   custody,
		Seller:  seller,
		Price:   "1",
	}, nil)

	err := uc.Buy(c, buyer1, 1, "0.5")
	assert.Equal(t, domain.ErrPriceMismatch, err)
}

func TestBuyNotFound(t *testing.T) {
	c := ctx.Background()
	listingRepo, _, _, _, uc := newMocked()

	listingRepo.On("FindOne", mock.Anything, domain.TokenId(42)).Return(nil, domain.ErrNotFound)

	err := uc.Buy(c, buyer1, 42, "1")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestBuySettleFailed(t *testing.T) {
	c := ctx.Background()
	listingRepo, _, _, bankUC, uc := newMocked()

	listingRepo.On("FindOne", mock.Anything, domain.TokenId(1)).Return(&marketplace.Listing{
		TokenId: 1,
		Owner:   custody,
		Seller:  seller,
		Price:   "1",
	}, nil)
	bankUC.On("Send", mock.Anything, buyer1, seller, domain.Amount("1")).
		Return(errors.New("boom"))

	err := uc.Buy(c, buyer1, 1, "1")
	assert.Equal(t, domain.ErrFundTransferFailed, err)
}

func TestSetListingFee(t *testing.T) {
	c := ctx.Background()
	_, stateRepo, _, _, uc := newMocked()

	err := uc.SetListingFee(c, seller, "0.05")
	assert.Equal(t, domain.ErrNotOwner, err)

	err = uc.SetListingFee(c, owner, "-1")
	assert.Equal(t, domain.ErrInvalidAmount, err)

	stateRepo.On("SetListingFee", mock.Anything, domain.Amount("0.05")).Return(nil)
	err = uc.SetListingFee(c, owner, "0.05")
	assert.NoError(t, err)
	stateRepo.AssertCalled(t, "SetListingFee", mock.Anything, domain.Amount("0.05"))
}

// in-memory fakes backing the full mint/buy scenario below

type memListingRepo struct {
	listings map[domain.TokenId]*marketplace.Listing
}

func (m *memListingRepo) Create(c ctx.Ctx, l *marketplace.Listing) error {
	cp := *l
	cp.Owner = cp.Owner.ToLower()
	cp.Seller = cp.Seller.ToLower()
	m.listings[cp.TokenId] = &cp
	return nil
}

func (m *memListingRepo) FindOne(c ctx.Ctx, tokenId domain.TokenId) (*marketplace.Listing, error) {
	l, ok := m.listings[tokenId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memListingRepo) FindAll(c ctx.Ctx, opts ...marketplace.FindAllOptionsFunc) ([]*marketplace.Listing, error) {
	o, err := marketplace.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	res := []*marketplace.Listing{}
	for _, l := range m.listings {
		if o.Owner != nil && !l.Owner.Equals(*o.Owner) {
			continue
		}
		if o.Seller != nil && !l.Seller.Equals(*o.Seller) {
			continue
		}
		if o.Sold != nil && l.Sold != *o.Sold {
			continue
		}
		cp := *l
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].TokenId < res[j].TokenId })
	return res, nil
}

func (m *memListingRepo) Count(c ctx.Ctx, opts ...marketplace.FindAllOptionsFunc) (int, error) {
	res, err := m.FindAll(c, opts...)
	if err != nil {
		return 0, err
	}
	return len(res), nil
}

func (m *memListingRepo) Patch(c ctx.Ctx, tokenId domain.TokenId, value marketplace.PatchableListing) error {
	l, ok := m.listings[tokenId]
	if !ok {
		return domain.ErrNotFound
	}
	if value.Owner != nil {
		l.Owner = value.Owner.ToLower()
	}
	if value.Seller != nil {
		l.Seller = value.Seller.ToLower()
	}
	if value.Sold != nil {
		l.Sold = *value.Sold
	}
	if value.SoldAt != nil {
		l.SoldAt = value.SoldAt
	}
	return nil
}

type memStateRepo struct {
	state marketplace.MarketState
}

func (m *memStateRepo) Get(c ctx.Ctx) (*marketplace.MarketState, error) {
	cp := m.state
	return &cp, nil
}

func (m *memStateRepo) EnsureDefault(c ctx.Ctx, fee domain.Amount) error {
	if m.state.Key == "" {
		m.state = marketplace.MarketState{Key: marketplace.StateKey, ListingFee: fee}
	}
	return nil
}

func (m *memStateRepo) SetListingFee(c ctx.Ctx, fee domain.Amount) error {
	m.state.ListingFee = fee
	return nil
}

func (m *memStateRepo) NextTokenId(c ctx.Ctx) (domain.TokenId, error) {
	m.state.LastTokenId++
	return domain.TokenId(m.state.LastTokenId), nil
}

func (m *memStateRepo) IncrementItemsSold(c ctx.Ctx, n int) (uint64, error) {
	m.state.ItemsSold += uint64(n)
	return m.state.ItemsSold, nil
}

type memBank struct {
	balances map[domain.Address]decimal.Decimal
}

func (m *memBank) balanceOf(address domain.Address) decimal.Decimal {
	return m.balances[address.ToLower()]
}

func (m *memBank) Deposit(c ctx.Ctx, address domain.Address, amount domain.Amount) (*bank.Balance, error) {
	value, err := amount.ToDecimal()
	if err != nil {
		return nil, err
	}
	m.balances[address.ToLower()] = m.balanceOf(address).Add(value)
	return m.BalanceOf(c, address)
}

func (m *memBank) BalanceOf(c ctx.Ctx, address domain.Address) (*bank.Balance, error) {
	return &bank.Balance{
		Address: address.ToLower(),
		Amount:  domain.AmountFromDecimal(m.balanceOf(address)),
	}, nil
}

func (m *memBank) Send(c ctx.Ctx, from, to domain.Address, amount domain.Amount) error {
	value, err := amount.ToDecimal()
	if err != nil {
		return err
	}
	if m.balanceOf(from).LessThan(value) {
		return bank.ErrInsufficientFunds
	}
	m.balances[from.ToLower()] = m.balanceOf(from).Sub(value)
	m.balances[to.ToLower()] = m.balanceOf(to).Add(value)
	return nil
}

type memRegistry struct {
	owners map[domain.TokenId]domain.Address
	metas  map[domain.TokenId]registry.TokenMeta
}

func (m *memRegistry) MintTo(c ctx.Ctx, to domain.Address, tokenId domain.TokenId, meta registry.TokenMeta) error {
	m.owners[tokenId] = to.ToLower()
	m.metas[tokenId] = meta
	return nil
}

func (m *memRegistry) Transfer(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Address) error {
	cur, ok := m.owners[tokenId]
	if !ok {
		return domain.ErrNotFound
	}
	if !cur.Equals(from) {
		return domain.ErrNotOwner
	}
	m.owners[tokenId] = to.ToLower()
	return nil
}

func (m *memRegistry) OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	cur, ok := m.owners[tokenId]
	if !ok {
		return domain.EmptyAddress, domain.ErrNotFound
	}
	return cur, nil
}

func (m *memRegistry) TokenMeta(c ctx.Ctx, tokenId domain.TokenId) (*registry.TokenMeta, error) {
	meta, ok := m.metas[tokenId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &meta, nil
}

func (m *memRegistry) Name() string   { return registry.CollectionName }
func (m *memRegistry) Symbol() string { return registry.CollectionSymbol }

func TestMintWithZeroListingFee(t *testing.T) {
	c := ctx.Background()

	listingRepo := &memListingRepo{listings: map[domain.TokenId]*marketplace.Listing{}}
	stateRepo := &memStateRepo{}
	require.NoError(t, stateRepo.EnsureDefault(c, "0.025"))
	registryUC := &memRegistry{
		owners: map[domain.TokenId]domain.Address{},
		metas:  map[domain.TokenId]registry.TokenMeta{},
	}

	// the real fund ledger: a zero fee must mint without moving any funds
	bankRepo := &mBank.Repo{}
	bankUC := bankUsecase.New(bankRepo)

	uc := usecase.New(&usecase.MarketplaceUsecaseCfg{
		ListingRepo:    listingRepo,
		StateRepo:      stateRepo,
		Registry:       registryUC,
		Bank:           bankUC,
		TxRunner:       passthroughTxRunner{},
		OwnerAddress:   owner,
		CustodyAddress: custody,
	})

	require.NoError(t, uc.SetListingFee(c, owner, "0"))

	// the seller has no balance at all
	tokenId, err := uc.Mint(c, seller, &marketplace.MintPayload{
		TokenURI: "ipfs://token",
		Price:    "1",
	}, "0")
	require.NoError(t, err)
	assert.Equal(t, domain.TokenId(1), tokenId)
	bankRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)

	l, err := uc.GetListing(c, tokenId)
	require.NoError(t, err)
	assert.Equal(t, custody, l.Owner)
	assert.Equal(t, seller, l.Seller)
	assert.False(t, l.Sold)

	// a non-zero attached value no longer matches the zero fee
	_, err = uc.Mint(c, seller, &marketplace.MintPayload{TokenURI: "ipfs://token", Price: "1"}, "0.025")
	assert.Equal(t, domain.ErrListingFeeMismatch, err)
}

func TestMintAndBuyScenario(t *testing.T) {
	c := ctx.Background()

	listingRepo := &memListingRepo{listings: map[domain.TokenId]*marketplace.Listing{}}
	stateRepo := &memStateRepo{}
	require.NoError(t, stateRepo.EnsureDefault(c, "0.025"))
	bankUC := &memBank{balances: map[domain.Address]decimal.Decimal{}}
	registryUC := &memRegistry{
		owners: map[domain.TokenId]domain.Address{},
		metas:  map[domain.TokenId]registry.TokenMeta{},
	}

	uc := usecase.New(&usecase.MarketplaceUsecaseCfg{
		ListingRepo:    listingRepo,
		StateRepo:      stateRepo,
		Registry:       registryUC,
		Bank:           bankUC,
		TxRunner:       passthroughTxRunner{},
		OwnerAddress:   owner,
		CustodyAddress: custody,
	})

	_, err := bankUC.Deposit(c, seller, "0.075")
	require.NoError(t, err)
	_, err = bankUC.Deposit(c, buyer1, "3")
	require.NoError(t, err)
	_, err = bankUC.Deposit(c, buyer2, "2")
	require.NoError(t, err)

	// the seller mints three tokens at one unit each
	for i := 1; i <= 3; i++ {
		tokenId, err := uc.Mint(c, seller, &marketplace.MintPayload{
			TokenURI: "ipfs://token",
			Price:    "1",
			Title:    "token",
		}, "0.025")
		require.NoError(t, err)
		assert.Equal(t, domain.TokenId(i), tokenId)
	}

	listed, err := uc.FetchListedTokens(c)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
	for _, l := range listed {
		assert.Equal(t, custody, l.Owner)
		assert.Equal(t, seller, l.Seller)
		assert.False(t, l.Sold)
	}

	// a fourth mint fails once the seller's balance no longer covers the fee
	_, err = uc.Mint(c, seller, &marketplace.MintPayload{TokenURI: "ipfs://token", Price: "1"}, "0.025")
	assert.Equal(t, domain.ErrFundTransferFailed, err)

	require.NoError(t, uc.Buy(c, buyer1, 1, "1"))
	require.NoError(t, uc.Buy(c, buyer2, 2, "1"))
	require.NoError(t, uc.Buy(c, buyer1, 3, "1"))

	// buying again is rejected, the entry is terminal
	assert.Equal(t, domain.ErrTokenAlreadySold, uc.Buy(c, buyer2, 1, "1"))

	owned, err := uc.FetchTokensOwnedBy(c, buyer1)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, domain.TokenId(1), owned[0].TokenId)
	assert.Equal(t, domain.TokenId(3), owned[1].TokenId)
	for _, l := range owned {
		assert.Equal(t, buyer1, l.Owner)
		assert.Equal(t, domain.EmptyAddress, l.Seller)
		assert.True(t, l.Sold)
		assert.NotNil(t, l.SoldAt)
	}

	unsold, err := uc.FetchUnsoldTokensOf(c, seller)
	require.NoError(t, err)
	assert.Len(t, unsold, 0)

	// the inventory scan still returns every listing, now all sold
	listed, err = uc.FetchListedTokens(c)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, l := range listed {
		assert.True(t, l.Sold)
	}

	sold, err := uc.GetItemsSold(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), sold)

	// funds ended where they should: fees with the market, sale proceeds with the seller
	custodyBalance, err := bankUC.BalanceOf(c, custody)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount("0.075"), custodyBalance.Amount)
	sellerBalance, err := bankUC.BalanceOf(c, seller)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount("3"), sellerBalance.Amount)

	// escrow released on sale
	tokenOwner, err := registryUC.OwnerOf(c, 1)
	require.NoError(t, err)
	assert.Equal(t, buyer1, tokenOwner)
}
