package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/database/mongoclient"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/registry"
	"github.com/bayt-xyz/marketapi/service/query"
)

type impl struct {
	q query.Mongo
}

// New creates new token registry repo
func New(q query.Mongo) registry.Repo {
	return &impl{q: q}
}

func (im *impl) Create(c ctx.Ctx, t *registry.Token) error {
	t.Owner = t.Owner.ToLower()
	if err := im.q.Insert(c, domain.TableTokens, t); err != nil {
		c.WithFields(log.Fields{
			"tokenId": t.TokenId,
			"err":     err,
		}).Error("insert token failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, tokenId domain.TokenId) (*registry.Token, error) {
	t := &registry.Token{}
	err := im.q.FindOne(c, domain.TableTokens, bson.M{"tokenId": tokenId}, t)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("find token failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (im *impl) Patch(c ctx.Ctx, tokenId domain.TokenId, value registry.PatchableToken) error {
	if value.Owner != nil {
		value.Owner = value.Owner.ToLowerPtr()
	}

	updater, err := mongoclient.MakeBsonM(value)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("make bsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableTokens, bson.M{"tokenId": tokenId}, updater); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("patch token failed")
		return err
	}
	return nil
}
