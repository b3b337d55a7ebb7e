package usecase

import (
	"time"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/keys"
	"github.com/bayt-xyz/marketapi/domain/registry"
	"github.com/bayt-xyz/marketapi/service/cache"
	"github.com/bayt-xyz/marketapi/service/cache/provider"
	"github.com/bayt-xyz/marketapi/service/cache/provider/compound"
	"github.com/bayt-xyz/marketapi/service/cache/provider/primitive"
	redisCache "github.com/bayt-xyz/marketapi/service/cache/provider/redis"
	"github.com/bayt-xyz/marketapi/service/redis"
)

type impl struct {
	repo      registry.Repo
	metaCache cache.Service
}

// New creates the token registry usecase. Token metadata is fixed at mint
// time, so it is safe to serve it from cache indefinitely.
func New(repo registry.Repo, redis redis.Service) registry.Usecase {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("tokenMeta", 64),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		repo: repo,
		metaCache: cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   keys.PfxTokenMeta,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) MintTo(c ctx.Ctx, to domain.Address, tokenId domain.TokenId, meta registry.TokenMeta) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	t := &registry.Token{
		TokenId:  tokenId,
		Owner:    to.ToLower(),
		Meta:     meta,
		MintedAt: time.Now().UTC(),
	}
	if err := im.repo.Create(c, t); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"to":      to,
			"err":     err,
		}).Error("mint token failed")
		return err
	}
	return nil
}

func (im *impl) Transfer(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Address) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	t, err := im.repo.FindOne(c, tokenId)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(from) {
		return domain.ErrNotOwner
	}

	if err := im.repo.Patch(c, tokenId, registry.PatchableToken{Owner: to.ToLowerPtr()}); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"from":    from,
			"to":      to,
			"err":     err,
		}).Error("transfer token failed")
		return err
	}
	return nil
}

func (im *impl) OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	t, err := im.repo.FindOne(c, tokenId)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return t.Owner, nil
}

func (im *impl) TokenMeta(c ctx.Ctx, tokenId domain.TokenId) (*registry.TokenMeta, error) {
	meta := &registry.TokenMeta{}
	if err := im.metaCache.GetByFunc(c, tokenId.String(), meta, func() (interface{}, error) {
		t, err := im.repo.FindOne(c, tokenId)
		if err != nil {
			return nil, err
		}
		return &t.Meta, nil
	}); err != nil {
		if err == domain.ErrNotFound {
			return nil, err
		}
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("metaCache.GetByFunc failed")
		return nil, err
	}
	return meta, nil
}

func (im *impl) Name() string {
	return registry.CollectionName
}

func (im *impl) Symbol() string {
	return registry.CollectionSymbol
}
