package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/delivery"
	"github.com/bayt-xyz/marketapi/base/ethereum"
	"github.com/bayt-xyz/marketapi/base/validator"
	"github.com/bayt-xyz/marketapi/domain"
)

type authHandler struct {
	auth       domain.AuthUsecase
	signingMsg string
}

func New(e *echo.Echo, auth domain.AuthUsecase, signingMsg string) {
	handler := &authHandler{
		auth:       auth,
		signingMsg: signingMsg,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsg", handler.getSigningMsg)
}

// sign
//
//	@Summary		Get access token
//	@Description	Verify the account's signature over the signing message and create an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.sign.params	true	"params"
//	@Success		201		{object}	object{data=string}
//	@Failure		400
//	@Failure		401
//	@Failure		500
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address" example:"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"`
		Signature string         `json:"signature"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if !validator.IsValidAddress(string(p.Address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	valid, err := ethereum.ValidateMsgSignature([]byte(h.signingMsg), p.Signature, string(p.Address))
	if err != nil {
		ctx.WithField("err", err).Error("validate signature failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidSignature)
	}
	if !valid {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrInvalidSignature)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Address); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

// getSigningMsg
//
//	@Summary		Get signing message
//	@Description	Sign this message with the account key to authenticate via /auth/sign
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	object{msg=string}	"signing message"
//	@Router			/auth/signingMsg [get]
func (h *authHandler) getSigningMsg(c echo.Context) error {
	res := struct {
		Msg string `json:"msg"`
	}{
		Msg: h.signingMsg,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
