package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Address string

const EmptyAddress = Address("")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is a sequential token identifier, assigned from 1 upward
type TokenId uint64

func (i TokenId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func ParseTokenId(s string) (TokenId, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, xerrors.Errorf("invalid token id %s", s)
	}
	return TokenId(v), nil
}

// Amount is a decimal monetary amount carried as a string on the wire
// and in storage, compared exactly through shopspring decimals.
type Amount string

func (a Amount) ToDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func (a Amount) String() string {
	return string(a)
}

func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount(d.String())
}
