package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ItemType is the declared kind of a budget or document line item. It is an
// optional hint from the caller; the mapper works without it.
type ItemType string

const (
	ItemTypeMaterial  ItemType = "material"
	ItemTypeService   ItemType = "service"
	ItemTypePersonnel ItemType = "personnel"
	ItemTypeFixed     ItemType = "fixed"
	ItemTypeRevenue   ItemType = "revenue"
	ItemTypeAsset     ItemType = "asset"

	// ItemTypeNone marks a line item with no declared type.
	ItemTypeNone ItemType = ""
)

// ParseItemType maps a free-form type label to an ItemType. Unrecognized
// labels degrade to ItemTypeNone so mapping falls through to keyword
// matching instead of rejecting the item.
func ParseItemType(label string) ItemType {
	switch ItemType(strings.ToLower(strings.TrimSpace(label))) {
	case ItemTypeMaterial, ItemTypeService, ItemTypePersonnel,
		ItemTypeFixed, ItemTypeRevenue, ItemTypeAsset:
		return ItemType(strings.ToLower(strings.TrimSpace(label)))
	default:
		return ItemTypeNone
	}
}

// LineItem is a single monetary line extracted from a budget or document.
// It is ephemeral input: the engine reads it and never owns its lifecycle.
type LineItem struct {
	Description string          `json:"description" yaml:"description"`
	Type        ItemType        `json:"type,omitempty" yaml:"type,omitempty"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`

	// IsRevenue tells the generic fallback whether to use the
	// other-revenue or the other-cost account when nothing matches.
	IsRevenue bool `json:"is_revenue,omitempty" yaml:"is_revenue,omitempty"`

	// UsefulLifeYears applies to asset items only. Zero or negative
	// values fall back to the default useful life.
	UsefulLifeYears int `json:"useful_life_years,omitempty" yaml:"useful_life_years,omitempty"`
}

// ParseAmount converts a free-form amount string to a decimal. Malformed or
// negative amounts are treated as zero so mapping can continue; ambiguity is
// expressed through amounts and confidence, never through errors.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
