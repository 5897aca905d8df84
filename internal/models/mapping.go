package models

import "github.com/shopspring/decimal"

// MappingResult is the outcome of mapping one line item to a chart-of-accounts
// entry. Results are immutable: re-mapping produces a fresh result instead of
// editing an existing one.
type MappingResult struct {
	AccountCode string `json:"account_code" yaml:"account_code"`
	AccountName string `json:"account_name" yaml:"account_name"`

	// Confidence is in [0,100]. Values below the review threshold are
	// expected to be surfaced to a human upstream.
	Confidence int `json:"confidence" yaml:"confidence"`

	// Amount is the value carried into aggregation. For assets this is the
	// annual straight-line depreciation, not the raw asset value.
	Amount decimal.Decimal `json:"amount" yaml:"amount"`

	// Description and OriginalAmount preserve the source line item for
	// audit and traceability.
	Description    string          `json:"description" yaml:"description"`
	OriginalAmount decimal.Decimal `json:"original_amount" yaml:"original_amount"`

	// Rule names the cascade rule that produced this result.
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`
}
