package registry

import (
	"time"

	bCtx "github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
)

const (
	// CollectionName and CollectionSymbol identify the token collection
	// managed by the registry.
	CollectionName   = "NFTMarketplace"
	CollectionSymbol = "NFT"
)

// TokenMeta is the immutable descriptive part of a token, fixed at mint time.
type TokenMeta struct {
	TokenURI string `json:"tokenUri" bson:"tokenUri"`
	Title    string `json:"title" bson:"title"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`
}

// Token is a registry entry. Ownership changes on transfer, Meta never does.
type Token struct {
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Meta     TokenMeta      `json:"meta" bson:"meta"`
	MintedAt time.Time      `json:"mintedAt" bson:"mintedAt"`
}

type PatchableToken struct {
	Owner *domain.Address `bson:"owner,omitempty"`
}

type Repo interface {
	Create(c bCtx.Ctx, t *Token) error
	FindOne(c bCtx.Ctx, tokenId domain.TokenId) (*Token, error)
	Patch(c bCtx.Ctx, tokenId domain.TokenId, value PatchableToken) error
}

type Usecase interface {
	MintTo(c bCtx.Ctx, to domain.Address, tokenId domain.TokenId, meta TokenMeta) error
	Transfer(c bCtx.Ctx, tokenId domain.TokenId, from, to domain.Address) error
	OwnerOf(c bCtx.Ctx, tokenId domain.TokenId) (domain.Address, error)
	TokenMeta(c bCtx.Ctx, tokenId domain.TokenId) (*TokenMeta, error)
	Name() string
	Symbol() string
}
