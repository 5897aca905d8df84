// Package report rolls mapped line items up by PGC-AO class and account and
// derives coverage statistics plus a qualitative compliance assessment. The
// report is stateless and recomputed on demand; running it twice over the
// same batch yields identical output.
package report

import (
	"github.com/shopspring/decimal"
)

// AccountTotal aggregates the mapped items of one account code.
type AccountTotal struct {
	Name      string          `json:"name" yaml:"name"`
	Total     decimal.Decimal `json:"total" yaml:"total"`
	ItemCount int             `json:"item_count" yaml:"item_count"`
}

// ClassTotal aggregates one PGC-AO class, keyed below by account code.
type ClassTotal struct {
	Name       string                   `json:"name" yaml:"name"`
	Total      decimal.Decimal          `json:"total" yaml:"total"`
	PerAccount map[string]*AccountTotal `json:"per_account" yaml:"per_account"`
}

// Statistics summarizes mapping confidence over the batch.
type Statistics struct {
	TotalItems            int     `json:"total_items" yaml:"total_items"`
	HighConfidenceItems   int     `json:"high_confidence_items" yaml:"high_confidence_items"`
	LowConfidenceItems    int     `json:"low_confidence_items" yaml:"low_confidence_items"`
	PercentHighConfidence float64 `json:"percent_high_confidence" yaml:"percent_high_confidence"`
}

// ComplianceLevel is the qualitative assessment band.
type ComplianceLevel string

const (
	ComplianceLow    ComplianceLevel = "low"
	ComplianceMedium ComplianceLevel = "medium"
	ComplianceHigh   ComplianceLevel = "high"
)

// Compliance carries the assessment, its remediation hints and the score.
type Compliance struct {
	Level           ComplianceLevel `json:"level" yaml:"level"`
	Problems        []string        `json:"problems" yaml:"problems"`
	Recommendations []string        `json:"recommendations" yaml:"recommendations"`
	Score           float64         `json:"score" yaml:"score"`
}

// Report is the full aggregation output, suitable for direct serialization
// to YAML or JSON.
type Report struct {
	PerClass   map[string]*ClassTotal `json:"per_class" yaml:"per_class"`
	Statistics Statistics             `json:"statistics" yaml:"statistics"`
	Compliance Compliance             `json:"compliance" yaml:"compliance"`
}
