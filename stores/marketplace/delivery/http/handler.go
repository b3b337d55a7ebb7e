package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/delivery"
	"github.com/bayt-xyz/marketapi/base/validator"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/bank"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	"github.com/bayt-xyz/marketapi/domain/registry"
	authMiddleware "github.com/bayt-xyz/marketapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.Usecase
	registry    registry.Usecase
	bank        bank.Usecase
}

func New(
	e *echo.Echo,
	authMiddleware *authMiddleware.AuthMiddleware,
	marketplaceUC marketplace.Usecase,
	registryUC registry.Usecase,
	bankUC bank.Usecase,
) {
	h := &handler{
		marketplace: marketplaceUC,
		registry:    registryUC,
		bank:        bankUC,
	}

	tokens := e.Group("/tokens")
	tokens.GET("", h.listMarketTokens)
	tokens.POST("", h.mint, authMiddleware.Auth())
	tokens.GET("/:tokenId", h.getToken)
	tokens.POST("/:tokenId/buy", h.buy, authMiddleware.Auth())

	accounts := e.Group("/accounts")
	accounts.GET("/:address/tokens", h.listOwnedTokens)
	accounts.GET("/:address/unsold", h.listUnsoldTokens)
	accounts.GET("/:address/balance", h.getBalance)
	accounts.POST("/:address/deposit", h.deposit, authMiddleware.Auth())

	market := e.Group("/market")
	market.GET("/info", h.getMarketInfo)
	market.GET("/fee", h.getListingFee)
	market.PATCH("/fee", h.setListingFee, authMiddleware.Auth(), authMiddleware.IsAdmin())
	market.GET("/sold", h.getItemsSold)
}

func mutationStatus(err error) int {
	switch err {
	case domain.ErrPriceCannotBeZero,
		domain.ErrListingFeeMismatch,
		domain.ErrPriceMismatch,
		domain.ErrTokenAlreadySold,
		domain.ErrInvalidAmount,
		domain.ErrInvalidAddress:
		return http.StatusBadRequest
	case domain.ErrFundTransferFailed:
		return http.StatusPaymentRequired
	case domain.ErrNotOwner:
		return http.StatusForbidden
	case domain.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// listMarketTokens
//
//	@Summary		List market tokens
//	@Description	Every listing ever recorded, in tokenId order, sold or not
//	@Tags			marketplace
//	@Produce		json
//	@Success		200	{object}	object{data=[]marketplace.Listing}
//	@Failure		500
//	@Router			/tokens [get]
func (h *handler) listMarketTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.marketplace.FetchListedTokens(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// mint
//
//	@Summary		Mint and list a token
//	@Description	Mints a new token, escrows it with the marketplace and lists it at the ask price. The attached value must equal the current listing fee.
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.mint.params	true	"params"
//	@Success		201		{object}	object{data=object{tokenId=integer}}
//	@Failure		400
//	@Failure		402
//	@Failure		500
//	@Security		ApiKeyAuth
//	@Router			/tokens [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		TokenURI      string        `json:"tokenUri" validate:"required"`
		Price         domain.Amount `json:"price" validate:"required"`
		Title         string        `json:"title"`
		ImageURL      string        `json:"imageUrl"`
		AttachedValue domain.Amount `json:"attachedValue" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	payload := &marketplace.MintPayload{
		TokenURI: p.TokenURI,
		Price:    p.Price,
		Title:    p.Title,
		ImageURL: p.ImageURL,
	}

	tokenId, err := h.marketplace.Mint(ctx, address, payload, p.AttachedValue)
	if err != nil {
		return delivery.MakeJsonResp(c, mutationStatus(err), err)
	}

	res := struct {
		TokenId domain.TokenId `json:"tokenId"`
	}{tokenId}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getToken
//
//	@Summary		Get one token
//	@Description	The ledger entry plus the immutable token metadata
//	@Tags			marketplace
//	@Produce		json
//	@Param			tokenId	path		integer	true	"token id"
//	@Success		200		{object}	object{data=object}
//	@Failure		404
//	@Failure		500
//	@Router			/tokens/{tokenId} [get]
func (h *handler) getToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	tokenId, err := domain.ParseTokenId(c.Param("tokenId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listing, err := h.marketplace.GetListing(ctx, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, mutationStatus(err), err)
	}

	meta, err := h.registry.TokenMeta(ctx, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, mutationStatus(err), err)
	}

	res := struct {
		*marketplace.Listing
		Meta *registry.TokenMeta `json:"meta"`
	}{listing, meta}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// buy
//
//	@Summary		Buy a listed token
//	@Description	The attached value must exactly match the ask price
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			tokenId	path	integer				true	"token id"
//	@Param			params	body	http.buy.params		true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		402
//	@Failure		404
//	@Failure		500
//	@Security		ApiKeyAuth
//	@Router			/tokens/{tokenId}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		TokenId       domain.TokenId `param:"tokenId" validate:"required"`
		AttachedValue domain.Amount  `json:"attachedValue" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.Buy(ctx, address, p.TokenId, p.AttachedValue); err != nil {
		return delivery.MakeJsonResp(c, mutationStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// listOwnedTokens
//
//	@Summary	List tokens owned by an account
//	@Tags		marketplace
//	@Produce	json
//	@Param		address	path		string	true	"account address"
//	@Success	200		{object}	object{data=[]marketplace.Listing}
//	@Failure	400
//	@Failure	500
//	@Router		/accounts/{address}/tokens [get]
func (h *handler) listOwnedTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address domain.Address `param:"address" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !validator.IsValidAddress(string(p.Address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	res, err := h.marketplace.FetchTokensOwnedBy(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// listUnsoldTokens
//
//	@Summary	List an account's listed-but-unsold tokens
//	@Tags		marketplace
//	@Produce	json
//	@Param		address	path		string	true	"account address"
//	@Success	200		{object}	object{data=[]marketplace.Listing}
//	@Failure	400
//	@Failure	500
//	@Router		/accounts/{address}/unsold [get]
func (h *handler) listUnsoldTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address domain.Address `param:"address" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !validator.IsValidAddress(string(p.Address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	res, err := h.marketplace.FetchUnsoldTokensOf(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address domain.Address `param:"address" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !validator.IsValidAddress(string(p.Address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	res, err := h.bank.BalanceOf(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// deposit credits the caller's own fund balance. The path address must match
// the authenticated account.
func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Address domain.Address `param:"address" validate:"required"`
		Amount  domain.Amount  `json:"amount" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !p.Address.Equals(address) {
		return delivery.MakeJsonResp(c, http.StatusForbidden, "cannot deposit for another account")
	}

	res, err := h.bank.Deposit(ctx, address, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, mutationStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getMarketInfo(c echo.Context) error {
	res := struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	}{
		Name:   h.registry.Name(),
		Symbol: h.registry.Symbol(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getListingFee
//
//	@Summary	Current listing fee
//	@Tags		marketplace
//	@Produce	json
//	@Success	200	{object}	object{data=string}
//	@Failure	500
//	@Router		/market/fee [get]
func (h *handler) getListingFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fee, err := h.marketplace.GetListingFee(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, fee)
}

// setListingFee updates the fee charged on mint. Admin only.
func (h *handler) setListingFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Fee domain.Amount `json:"fee" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.SetListingFee(ctx, address, p.Fee); err != nil {
		return delivery.MakeJsonResp(c, mutationStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// getItemsSold
//
//	@Summary	Number of tokens sold so far
//	@Tags		marketplace
//	@Produce	json
//	@Success	200	{object}	object{data=integer}
//	@Failure	500
//	@Router		/market/sold [get]
func (h *handler) getItemsSold(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sold, err := h.marketplace.GetItemsSold(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, sold)
}
