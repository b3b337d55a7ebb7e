package marketplace

import (
	"time"

	bCtx "github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
)

// TokenListedEvent mirrors the ledger's TokenListed notification.
type TokenListedEvent struct {
	EventId  string         `json:"eventId"`
	TokenId  domain.TokenId `json:"tokenId"`
	Owner    domain.Address `json:"owner"`
	Seller   domain.Address `json:"seller"`
	Price    domain.Amount  `json:"price"`
	Sold     bool           `json:"sold"`
	Title    string         `json:"title"`
	ImageURL string         `json:"imageUrl"`
	At       time.Time      `json:"at"`
}

// TokenPurchasedEvent mirrors the ledger's TokenPurchased notification.
type TokenPurchasedEvent struct {
	EventId string         `json:"eventId"`
	TokenId domain.TokenId `json:"tokenId"`
	Buyer   domain.Address `json:"buyer"`
	Seller  domain.Address `json:"seller"`
	Price   domain.Amount  `json:"price"`
	At      time.Time      `json:"at"`
}

// EventPublisher consumes ledger notifications. Publishing is fire and
// forget; a failing publisher never fails the mutation that produced the
// event.
type EventPublisher interface {
	PublishTokenListed(c bCtx.Ctx, evt *TokenListedEvent) error
	PublishTokenPurchased(c bCtx.Ctx, evt *TokenPurchasedEvent) error
}
