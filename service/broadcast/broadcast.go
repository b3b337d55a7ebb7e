package broadcast

import (
	"encoding/json"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain/keys"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	"github.com/bayt-xyz/marketapi/service/redis"
)

const (
	channelTokenListed    = "token.listed"
	channelTokenPurchased = "token.purchased"
)

type impl struct {
	redis redis.Service
}

// New returns a publisher that relays ledger events to redis pub/sub
// channels. Subscribers that are offline simply miss the event.
func New(redis redis.Service) marketplace.EventPublisher {
	return &impl{redis: redis}
}

func (im *impl) publish(c ctx.Ctx, channel string, evt interface{}) error {
	val, err := json.Marshal(evt)
	if err != nil {
		c.WithField("err", err).Error("marshal event failed")
		return err
	}

	if _, err := im.redis.Publish(c, keys.RedisKey(keys.PfxMarketEvents, channel), val); err != nil {
		c.WithField("err", err).WithField("channel", channel).Error("publish event failed")
		return err
	}
	return nil
}

func (im *impl) PublishTokenListed(c ctx.Ctx, evt *marketplace.TokenListedEvent) error {
	return im.publish(c, channelTokenListed, evt)
}

func (im *impl) PublishTokenPurchased(c ctx.Ctx, evt *marketplace.TokenPurchasedEvent) error {
	return im.publish(c, channelTokenPurchased, evt)
}
