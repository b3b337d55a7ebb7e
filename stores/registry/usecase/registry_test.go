package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/registry"
	mRegistry "github.com/bayt-xyz/marketapi/domain/registry/mocks"
	"github.com/bayt-xyz/marketapi/stores/registry/usecase"
)

const (
	minter = domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	holder = domain.Address("0x2b5ad5c4795c026514f8317c7a215e218dccd6cf")
)

func TestMintTo(t *testing.T) {
	c := ctx.Background()
	repo := &mRegistry.Repo{}
	uc := usecase.New(repo, nil)

	err := uc.MintTo(c, domain.EmptyAddress, 1, registry.TokenMeta{})
	assert.Equal(t, domain.ErrInvalidAddress, err)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(tok *registry.Token) bool {
		return tok.TokenId == 1 && tok.Owner == minter && tok.Meta.TokenURI == "ipfs://meta"
	})).Return(nil)

	err = uc.MintTo(c, minter, 1, registry.TokenMeta{TokenURI: "ipfs://meta"})
	assert.NoError(t, err)
}

func TestTransfer(t *testing.T) {
	c := ctx.Background()
	repo := &mRegistry.Repo{}
	uc := usecase.New(repo, nil)

	repo.On("FindOne", mock.Anything, domain.TokenId(1)).Return(&registry.Token{
		TokenId: 1,
		Owner:   minter,
	}, nil)

	// only the current owner can hand a token over
	err := uc.Transfer(c, 1, holder, minter)
	assert.Equal(t, domain.ErrNotOwner, err)

	repo.On("Patch", mock.Anything, domain.TokenId(1), registry.PatchableToken{
		Owner: holder.ToLowerPtr(),
	}).Return(nil)
	err = uc.Transfer(c, 1, minter, holder)
	assert.NoError(t, err)
}

func TestTokenMetaCached(t *testing.T) {
	c := ctx.Background()
	repo := &mRegistry.Repo{}
	uc := usecase.New(repo, nil)

	repo.On("FindOne", mock.Anything, domain.TokenId(1)).Return(&registry.Token{
		TokenId: 1,
		Owner:   minter,
		Meta: registry.TokenMeta{
			TokenURI: "ipfs://meta",
			Title:    "token one",
		},
	}, nil).Once()

	meta, err := uc.TokenMeta(c, 1)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://meta", meta.TokenURI)
	assert.Equal(t, "token one", meta.Title)

	// metadata is immutable and served from cache afterwards
	meta, err = uc.TokenMeta(c, 1)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://meta", meta.TokenURI)
	repo.AssertNumberOfCalls(t, "FindOne", 1)
}

func TestNameAndSymbol(t *testing.T) {
	uc := usecase.New(&mRegistry.Repo{}, nil)
	assert.Equal(t, registry.CollectionName, uc.Name())
	assert.Equal(t, registry.CollectionSymbol, uc.Symbol())
}
