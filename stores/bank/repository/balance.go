package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/bank"
	"github.com/bayt-xyz/marketapi/service/query"
)

type impl struct {
	q query.Mongo
}

// New creates new balance repo
func New(q query.Mongo) bank.Repo {
	return &impl{q: q}
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*bank.Balance, error) {
	b := &bank.Balance{}
	err := im.q.FindOne(c, domain.TableBalances, bson.M{"address": address.ToLower()}, b)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find balance failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (im *impl) Upsert(c ctx.Ctx, b *bank.Balance) error {
	b.Address = b.Address.ToLower()
	if err := im.q.Upsert(c, domain.TableBalances, bson.M{"address": b.Address}, b); err != nil {
		c.WithFields(log.Fields{
			"address": b.Address,
			"err":     err,
		}).Error("upsert balance failed")
		return err
	}
	return nil
}
