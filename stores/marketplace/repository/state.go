package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	"github.com/bayt-xyz/marketapi/service/query"
)

type stateImpl struct {
	q query.Mongo
}

// NewState creates new market state repo
func NewState(q query.Mongo) marketplace.StateRepo {
	return &stateImpl{q: q}
}

func (im *stateImpl) selector() bson.M {
	return bson.M{"key": marketplace.StateKey}
}

func (im *stateImpl) Get(c ctx.Ctx) (*marketplace.MarketState, error) {
	s := &marketplace.MarketState{}
	err := im.q.FindOne(c, domain.TableMarketState, im.selector(), s)
	if err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("find market state failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (im *stateImpl) EnsureDefault(c ctx.Ctx, fee domain.Amount) error {
	if _, err := im.Get(c); err == nil {
		return nil
	} else if err != domain.ErrNotFound {
		return err
	}

	s := &marketplace.MarketState{
		Key:         marketplace.StateKey,
		ListingFee:  fee,
		ItemsSold:   0,
		LastTokenId: 0,
	}
	err := im.q.Insert(c, domain.TableMarketState, s)
	if err == query.ErrDuplicateKey {
		// someone else seeded it first
		return nil
	} else if err != nil {
		c.WithField("err", err).Error("seed market state failed")
		return err
	}
	return nil
}

func (im *stateImpl) SetListingFee(c ctx.Ctx, fee domain.Amount) error {
	if err := im.q.Patch(c, domain.TableMarketState, im.selector(), bson.M{"listingFee": fee}); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"fee": fee,
			"err": err,
		}).Error("patch listing fee failed")
		return err
	}
	return nil
}

func (im *stateImpl) NextTokenId(c ctx.Ctx) (domain.TokenId, error) {
	s := &marketplace.MarketState{}
	if err := im.q.Increment(c, domain.TableMarketState, im.selector(), s, "lastTokenId", 1); err != nil {
		c.WithField("err", err).Error("increment lastTokenId failed")
		return 0, err
	}
	return domain.TokenId(s.LastTokenId), nil
}

func (im *stateImpl) IncrementItemsSold(c ctx.Ctx, n int) (uint64, error) {
	s := &marketplace.MarketState{}
	if err := im.q.Increment(c, domain.TableMarketState, im.selector(), s, "itemsSold", n); err != nil {
		c.WithField("err", err).Error("increment itemsSold failed")
		return 0, err
	}
	return s.ItemsSold, nil
}
