package domain

// Bank is a receiving institution for fiat payouts. Each bank belongs to
// exactly one fiat currency; only enabled banks are offered during the
// draft dialog.
type Bank struct {
	BankID       string `json:"bankID"`       // Primary Key (UUID)
	Name         string `json:"name"`         // e.g., "PrivatBank"
	CurrencyCode string `json:"currencyCode"` // FK -> Currency.currencyCode (fiat)
	Enabled      bool   `json:"enabled"`
	AuditFields
}
