package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// marketplace ledger errors
	ErrPriceCannotBeZero  = errors.New("price cannot be zero")
	ErrListingFeeMismatch = errors.New("listing fee mismatch")
	ErrPriceMismatch      = errors.New("buy price does not match sell price")
	ErrNotOwner           = errors.New("not owner")
	ErrFundTransferFailed = errors.New("fund transfer to seller failed")
	ErrTokenAlreadySold   = errors.New("token already sold")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidAmount    = errors.New("invalid amount format")
)
