package domain

// CurrencyKind distinguishes crypto assets from fiat currencies.
type CurrencyKind string

const (
	CurrencyKindCrypto CurrencyKind = "CRYPTO"
	CurrencyKindFiat   CurrencyKind = "FIAT"
)

// Currency represents a supported currency.
// Identity is the code; only the enabled flag is mutable (admin toggle).
type Currency struct {
	CurrencyCode string       `json:"currencyCode"` // Primary Key (e.g., "USDT")
	Name         string       `json:"name"`         // e.g., "Tether"
	Kind         CurrencyKind `json:"kind"`         // CRYPTO or FIAT
	Enabled      bool         `json:"enabled"`
	AuditFields
}
