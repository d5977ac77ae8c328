package models

// MerchantInfo is a counterparty used when generating sample transactions.
// Name always carries a keyword of Category so generated data classifies predictably.
type MerchantInfo struct {
	Name     string
	Category string
}
