package domain

// Table is a mongo collection name
type Table string

const (
	TableListings    = Table("listings")
	TableMarketState = Table("marketstate")
	TableTokens      = Table("tokens")
	TableBalances    = Table("balances")
)
