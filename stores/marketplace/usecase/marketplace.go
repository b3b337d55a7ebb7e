package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/base/ptr"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/bank"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	"github.com/bayt-xyz/marketapi/domain/registry"
)

type MarketplaceUsecaseCfg struct {
	ListingRepo marketplace.Repo
	StateRepo   marketplace.StateRepo
	Registry    registry.Usecase
	Bank        bank.Usecase
	TxRunner    marketplace.TxRunner

	// Publishers receive post-commit event notifications. Delivery is best
	// effort and never fails a mutation.
	Publishers []marketplace.EventPublisher

	// OwnerAddress may update the listing fee.
	OwnerAddress domain.Address

	// CustodyAddress holds escrowed tokens and collected listing fees.
	CustodyAddress domain.Address
}

type impl struct {
	listingRepo marketplace.Repo
	stateRepo   marketplace.StateRepo
	registry    registry.Usecase
	bank        bank.Usecase
	txRunner    marketplace.TxRunner
	publishers  []marketplace.EventPublisher

	owner   domain.Address
	custody domain.Address

	// serializes mint/buy/fee mutations so concurrent requests observe the
	// ledger one at a time
	mu sync.Mutex

	workerPool *goroutines.Pool
}

func New(cfg *MarketplaceUsecaseCfg) marketplace.Usecase {
	return &impl{
		listingRepo: cfg.ListingRepo,
		stateRepo:   cfg.StateRepo,
		registry:    cfg.Registry,
		bank:        cfg.Bank,
		txRunner:    cfg.TxRunner,
		publishers:  cfg.Publishers,
		owner:       cfg.OwnerAddress.ToLower(),
		custody:     cfg.CustodyAddress.ToLower(),
		workerPool:  goroutines.NewPool(8, goroutines.WithTaskQueueLength(256)),
	}
}

func (im *impl) emit(c bCtx.Ctx, publish func(bCtx.Ctx, marketplace.EventPublisher) error) {
	// events are delivered outside the request lifecycle with a detached ctx
	detached := bCtx.Background()
	detached.Logger = c.Logger
	for _, p := range im.publishers {
		p := p
		im.workerPool.Schedule(func() {
			if err := publish(detached, p); err != nil {
				detached.WithField("err", err).Warn("publish event failed")
			}
		})
	}
}

func (im *impl) Mint(c bCtx.Ctx, minter domain.Address, payload *marketplace.MintPayload, attachedValue domain.Amount) (domain.TokenId, error) {
	if minter.IsEmpty() {
		return 0, domain.ErrInvalidAddress
	}

	price, err := payload.Price.ToDecimal()
	if err != nil {
		return 0, err
	}
	if !price.IsPositive() {
		return 0, domain.ErrPriceCannotBeZero
	}

	attached, err := attachedValue.ToDecimal()
	if err != nil {
		return 0, err
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	state, err := im.stateRepo.Get(c)
	if err != nil {
		return 0, err
	}
	fee, err := state.ListingFee.ToDecimal()
	if err != nil {
		return 0, err
	}
	if !attached.Equal(fee) {
		return 0, domain.ErrListingFeeMismatch
	}

	var (
		tokenId domain.TokenId
		listing *marketplace.Listing
	)
	err = im.txRunner.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.bank.Send(c, minter, im.custody, state.ListingFee); err != nil {
			c.WithFields(log.Fields{
				"minter": minter,
				"fee":    state.ListingFee,
				"err":    err,
			}).Warn("collect listing fee failed")
			return domain.ErrFundTransferFailed
		}

		id, err := im.stateRepo.NextTokenId(c)
		if err != nil {
			return err
		}

		meta := registry.TokenMeta{
			TokenURI: payload.TokenURI,
			Title:    payload.Title,
			ImageURL: payload.ImageURL,
		}
		if err := im.registry.MintTo(c, minter, id, meta); err != nil {
			return err
		}
		// escrow the fresh token with the marketplace until it sells
		if err := im.registry.Transfer(c, id, minter, im.custody); err != nil {
			return err
		}

		listing = &marketplace.Listing{
			TokenId:  id,
			Owner:    im.custody,
			Seller:   minter.ToLower(),
			Price:    payload.Price,
			Sold:     false,
			ListedAt: time.Now().UTC(),
		}
		if err := im.listingRepo.Create(c, listing); err != nil {
			return err
		}

		tokenId = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	evt := &marketplace.TokenListedEvent{
		EventId:  uuid.New().String(),
		TokenId:  listing.TokenId,
		Owner:    listing.Owner,
		Seller:   listing.Seller,
		Price:    listing.Price,
		Sold:     false,
		Title:    payload.Title,
		ImageURL: payload.ImageURL,
		At:       listing.ListedAt,
	}
	im.emit(c, func(c bCtx.Ctx, p marketplace.EventPublisher) error {
		return p.PublishTokenListed(c, evt)
	})

	return tokenId, nil
}

func (im *impl) Buy(c bCtx.Ctx, buyer domain.Address, tokenId domain.TokenId, attachedValue domain.Amount) error {
	if buyer.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	attached, err := attachedValue.ToDecimal()
	if err != nil {
		return err
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	listing, err := im.listingRepo.FindOne(c, tokenId)
	if err != nil {
		return err
	}
	if listing.Sold {
		return domain.ErrTokenAlreadySold
	}

	price, err := listing.Price.ToDecimal()
	if err != nil {
		return err
	}
	if !attached.Equal(price) {
		return domain.ErrPriceMismatch
	}

	seller := listing.Seller
	soldAt := time.Now().UTC()
	err = im.txRunner.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.bank.Send(c, buyer, seller, listing.Price); err != nil {
			c.WithFields(log.Fields{
				"buyer":   buyer,
				"tokenId": tokenId,
				"err":     err,
			}).Warn("settle purchase failed")
			return domain.ErrFundTransferFailed
		}

		if err := im.registry.Transfer(c, tokenId, im.custody, buyer); err != nil {
			return err
		}

		empty := domain.EmptyAddress
		if err := im.listingRepo.Patch(c, tokenId, marketplace.PatchableListing{
			Owner:  buyer.ToLowerPtr(),
			Seller: &empty,
			Sold:   ptr.Bool(true),
			SoldAt: &soldAt,
		}); err != nil {
			return err
		}

		if _, err := im.stateRepo.IncrementItemsSold(c, 1); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	evt := &marketplace.TokenPurchasedEvent{
		EventId: uuid.New().String(),
		TokenId: tokenId,
		Buyer:   buyer.ToLower(),
		Seller:  seller,
		Price:   listing.Price,
		At:      soldAt,
	}
	im.emit(c, func(c bCtx.Ctx, p marketplace.EventPublisher) error {
		return p.PublishTokenPurchased(c, evt)
	})

	return nil
}

func (im *impl) SetListingFee(c bCtx.Ctx, caller domain.Address, fee domain.Amount) error {
	if !caller.Equals(im.owner) {
		return domain.ErrNotOwner
	}

	value, err := fee.ToDecimal()
	if err != nil {
		return err
	}
	if value.IsNegative() {
		return domain.ErrInvalidAmount
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	return im.stateRepo.SetListingFee(c, fee)
}

func (im *impl) GetListingFee(c bCtx.Ctx) (domain.Amount, error) {
	state, err := im.stateRepo.Get(c)
	if err != nil {
		return "", err
	}
	return state.ListingFee, nil
}

func (im *impl) GetItemsSold(c bCtx.Ctx) (uint64, error) {
	state, err := im.stateRepo.Get(c)
	if err != nil {
		return 0, err
	}
	return state.ItemsSold, nil
}

func (im *impl) GetListing(c bCtx.Ctx, tokenId domain.TokenId) (*marketplace.Listing, error) {
	return im.listingRepo.FindOne(c, tokenId)
}

func (im *impl) FetchListedTokens(c bCtx.Ctx) ([]*marketplace.Listing, error) {
	// full inventory in tokenId order, sold listings included
	return im.listingRepo.FindAll(c)
}

func (im *impl) FetchTokensOwnedBy(c bCtx.Ctx, account domain.Address) ([]*marketplace.Listing, error) {
	return im.listingRepo.FindAll(c, marketplace.WithOwner(account))
}

func (im *impl) FetchUnsoldTokensOf(c bCtx.Ctx, account domain.Address) ([]*marketplace.Listing, error) {
	return im.listingRepo.FindAll(c,
		marketplace.WithSeller(account),
		marketplace.WithSold(false),
	)
}
