package marketplace

import (
	"time"

	bCtx "github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
)

// Listing is one entry of the market ledger. Every minted token gets exactly
// one Listing; it is mutated once by a successful purchase and never deleted.
//
// While Sold is false the marketplace itself is the custodial owner and
// Seller is the minting account. Once Sold flips to true the buyer becomes
// the owner, Seller is cleared and the entry is terminal.
type Listing struct {
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Seller   domain.Address `json:"seller" bson:"seller"`
	Price    domain.Amount  `json:"price" bson:"price"`
	Sold     bool           `json:"sold" bson:"sold"`
	ListedAt time.Time      `json:"listedAt" bson:"listedAt"`
	SoldAt   *time.Time     `json:"soldAt,omitempty" bson:"soldAt,omitempty"`
}

type PatchableListing struct {
	Owner  *domain.Address `bson:"owner,omitempty"`
	Seller *domain.Address `bson:"seller,omitempty"`
	Sold   *bool           `bson:"sold,omitempty"`
	SoldAt *time.Time      `bson:"soldAt,omitempty"`
}

// MintPayload carries the token metadata handed to Mint alongside the ask price.
type MintPayload struct {
	TokenURI string        `json:"tokenUri"`
	Price    domain.Amount `json:"price"`
	Title    string        `json:"title"`
	ImageURL string        `json:"imageUrl"`
}

type FindAllOptions struct {
	Owner  *domain.Address
	Seller *domain.Address
	Sold   *bool
	Offset *int32
	Limit  *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = address.ToLowerPtr()
		return nil
	}
}

func WithSeller(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = address.ToLowerPtr()
		return nil
	}
}

func WithSold(sold bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sold = &sold
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// Repo owns the listings table. FindAll always yields ascending tokenId order.
type Repo interface {
	Create(c bCtx.Ctx, l *Listing) error
	FindOne(c bCtx.Ctx, tokenId domain.TokenId) (*Listing, error)
	FindAll(c bCtx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(c bCtx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Patch(c bCtx.Ctx, tokenId domain.TokenId, value PatchableListing) error
}

// TxRunner runs fn inside a storage transaction; every repo call made with
// the derived ctx joins it. Satisfied by service/query.Mongo.
type TxRunner interface {
	RunWithTransaction(c bCtx.Ctx, run func(bCtx.Ctx) error) error
}

type Usecase interface {
	Mint(c bCtx.Ctx, minter domain.Address, payload *MintPayload, attachedValue domain.Amount) (domain.TokenId, error)
	Buy(c bCtx.Ctx, buyer domain.Address, tokenId domain.TokenId, attachedValue domain.Amount) error
	SetListingFee(c bCtx.Ctx, caller domain.Address, fee domain.Amount) error
	GetListingFee(c bCtx.Ctx) (domain.Amount, error)
	GetItemsSold(c bCtx.Ctx) (uint64, error)
	GetListing(c bCtx.Ctx, tokenId domain.TokenId) (*Listing, error)
	FetchListedTokens(c bCtx.Ctx) ([]*Listing, error)
	FetchTokensOwnedBy(c bCtx.Ctx, account domain.Address) ([]*Listing, error)
	FetchUnsoldTokensOf(c bCtx.Ctx, account domain.Address) ([]*Listing, error)
}
