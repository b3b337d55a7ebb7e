package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/database/mongoclient"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	"github.com/bayt-xyz/marketapi/service/query"
)

type listingImpl struct {
	q query.Mongo
}

// NewListing creates new listing repo
func NewListing(q query.Mongo) marketplace.Repo {
	return &listingImpl{q: q}
}

func (im *listingImpl) Create(c ctx.Ctx, l *marketplace.Listing) error {
	l.Owner = l.Owner.ToLower()
	l.Seller = l.Seller.ToLower()
	if err := im.q.Insert(c, domain.TableListings, l); err != nil {
		c.WithFields(log.Fields{
			"tokenId": l.TokenId,
			"err":     err,
		}).Error("insert listing failed")
		return err
	}
	return nil
}

func (im *listingImpl) FindOne(c ctx.Ctx, tokenId domain.TokenId) (*marketplace.Listing, error) {
	l := &marketplace.Listing{}
	err := im.q.FindOne(c, domain.TableListings, bson.M{"tokenId": tokenId}, l)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("find listing failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func makeSelector(opts marketplace.FindAllOptions) bson.M {
	selector := bson.M{}
	if opts.Owner != nil {
		selector["owner"] = *opts.Owner
	}
	if opts.Seller != nil {
		selector["seller"] = *opts.Seller
	}
	if opts.Sold != nil {
		selector["sold"] = *opts.Sold
	}
	return selector
}

func (im *listingImpl) FindAll(c ctx.Ctx, optFns ...marketplace.FindAllOptionsFunc) ([]*marketplace.Listing, error) {
	opts, err := marketplace.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("get find all options failed")
		return nil, err
	}

	offset := 0
	limit := 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	listings := []*marketplace.Listing{}
	if err := im.q.Search(c, domain.TableListings, offset, limit, "tokenId", makeSelector(opts), &listings); err != nil {
		c.WithField("err", err).Error("search listings failed")
		return nil, err
	}
	return listings, nil
}

func (im *listingImpl) Count(c ctx.Ctx, optFns ...marketplace.FindAllOptionsFunc) (int, error) {
	opts, err := marketplace.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("get find all options failed")
		return 0, err
	}

	n, err := im.q.Count(c, domain.TableListings, makeSelector(opts))
	if err != nil {
		c.WithField("err", err).Error("count listings failed")
		return 0, err
	}
	return n, nil
}

func (im *listingImpl) Patch(c ctx.Ctx, tokenId domain.TokenId, value marketplace.PatchableListing) error {
	if value.Owner != nil {
		value.Owner = value.Owner.ToLowerPtr()
	}
	if value.Seller != nil {
		value.Seller = value.Seller.ToLowerPtr()
	}

	updater, err := mongoclient.MakeBsonM(value)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("make bsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableListings, bson.M{"tokenId": tokenId}, updater); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("patch listing failed")
		return err
	}
	return nil
}
