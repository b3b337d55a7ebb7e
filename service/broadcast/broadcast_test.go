package broadcast_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	"github.com/bayt-xyz/marketapi/service/broadcast"
	mRedis "github.com/bayt-xyz/marketapi/service/redis/mocks"
)

func TestPublishTokenListed(t *testing.T) {
	c := ctx.Background()
	redis := &mRedis.Service{}
	pub := broadcast.New(redis)

	var got []byte
	redis.On("Publish", mock.Anything, "marketEvents:token.listed", mock.Anything).
		Run(func(args mock.Arguments) {
			got = args.Get(2).([]byte)
		}).
		Return(1, nil)

	evt := &marketplace.TokenListedEvent{
		EventId: "evt-1",
		TokenId: 7,
		Owner:   "0x05c70c10ff1eb23e5fc07dedfdf723084ea1b22a",
		Seller:  "0x71c7656ec7ab88b098defb751b7401b5f6d8976f",
		Price:   "1.5",
		At:      time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, pub.PublishTokenListed(c, evt))

	decoded := &marketplace.TokenListedEvent{}
	require.NoError(t, json.Unmarshal(got, decoded))
	assert.Equal(t, evt, decoded)
}

func TestPublishTokenPurchasedError(t *testing.T) {
	c := ctx.Background()
	redis := &mRedis.Service{}
	pub := broadcast.New(redis)

	redis.On("Publish", mock.Anything, "marketEvents:token.purchased", mock.Anything).
		Return(0, errors.New("conn refused"))

	err := pub.PublishTokenPurchased(c, &marketplace.TokenPurchasedEvent{
		EventId: "evt-2",
		TokenId: 7,
	})
	assert.Error(t, err)
}
