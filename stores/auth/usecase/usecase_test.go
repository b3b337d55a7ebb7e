package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	tkn, err := u.SignToken(ctx, domain.Address("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "0x71c7656ec7ab88b098defb751b7401b5f6d8976f", ads)
}

func TestParseTokenWrongSecret(t *testing.T) {
	ctx := ctx.Background()

	tkn, err := usecase.New("jwt-secret").SignToken(ctx, "my-address")
	assert.NoError(t, err)

	_, err = usecase.New("another-secret").ParseToken(ctx, tkn)
	assert.Error(t, err)
}
