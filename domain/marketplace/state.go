package marketplace

import (
	bCtx "github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
)

// StateKey identifies the singleton market state document.
const StateKey = "market"

// MarketState is the process-wide ledger state: the mint fee, the monotone
// items-sold counter and the tokenId sequence source.
type MarketState struct {
	Key         string        `json:"-" bson:"key"`
	ListingFee  domain.Amount `json:"listingFee" bson:"listingFee"`
	ItemsSold   uint64        `json:"itemsSold" bson:"itemsSold"`
	LastTokenId uint64        `json:"lastTokenId" bson:"lastTokenId"`
}

type StateRepo interface {
	Get(c bCtx.Ctx) (*MarketState, error)
	// EnsureDefault seeds the state document with the configured fee if it
	// does not exist yet. It never overwrites an existing fee.
	EnsureDefault(c bCtx.Ctx, fee domain.Amount) error
	SetListingFee(c bCtx.Ctx, fee domain.Amount) error
	NextTokenId(c bCtx.Ctx) (domain.TokenId, error)
	IncrementItemsSold(c bCtx.Ctx, n int) (uint64, error)
}
