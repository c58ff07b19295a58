package domain

import "github.com/shopspring/decimal"

// BarterDetail describes the non-cash exchange behind a BARTER transaction
// (1:1 with its transaction). Both fair-market values are positive; they are
// allowed to disagree, which produces a warning rather than a rejection when
// the user has acknowledged the mismatch.
type BarterDetail struct {
	TransactionID            string          `json:"transactionID"` // FK -> Transaction (PK, 1:1)
	GoodsReceivedDescription string          `json:"goodsReceivedDescription"`
	GoodsProvidedDescription string          `json:"goodsProvidedDescription"`
	FMVReceived              decimal.Decimal `json:"fmvReceived"` // Positive
	FMVProvided              decimal.Decimal `json:"fmvProvided"` // Positive
	FMVBasis                 string          `json:"fmvBasis"`    // Free-text valuation rationale
	FMVMismatchAcknowledged  bool            `json:"fmvMismatchAcknowledged"`
}
