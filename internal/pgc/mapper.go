package pgc

import (
	"strings"

	"gestfin/pgc-engine/internal/logging"
	"gestfin/pgc-engine/internal/models"
	"gestfin/pgc-engine/internal/textutils"

	"github.com/shopspring/decimal"
)

// Confidence policy for the mapping cascade. Tunable constants, kept in one
// place so the cascade stays auditable.
const (
	// TypeDefaultThreshold separates strong type defaults (used directly)
	// from weak ones (refined by keyword evidence first).
	TypeDefaultThreshold = 70

	// KeywordMatchConfidence is assigned to any dictionary hit.
	KeywordMatchConfidence = 85

	// RefinementConfidence applies to the fixed-type utility/transport
	// overrides.
	RefinementConfidence = 90

	// SocialChargesConfidence applies to the personnel social-security
	// override.
	SocialChargesConfidence = 95

	// DepreciationConfidence is fixed: the asset rule is definitional,
	// not inferred.
	DepreciationConfidence = 95

	// FallbackConfidence marks the generic other-cost/other-revenue
	// result that needs human review.
	FallbackConfidence = 35

	// DefaultUsefulLifeYears is used when an asset has no valid useful
	// life.
	DefaultUsefulLifeYears = 10
)

// Mapper assigns line items to chart-of-accounts entries. It holds no
// mutable state and is safe for unlimited concurrent use.
type Mapper struct {
	logger logging.Logger
}

// NewMapper creates a Mapper.
func NewMapper(logger logging.Logger) *Mapper {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Mapper{logger: logger.WithField(logging.FieldComponent, "pgc-mapper")}
}

// mappingRule is one step of the cascade: a name for audit, a match
// predicate over the item and its normalized description, and the account
// plus confidence it assigns.
type mappingRule struct {
	Name    string
	Matches func(item models.LineItem, desc string) bool
	Code    string
	// Confidence may be overridden per item by Resolve.
	Confidence int
}

// mappingRules is the full cascade in fixed priority order. The first rule
// that matches wins; the generic fallback always matches.
var mappingRules = []mappingRule{
	{
		Name: "personnel-social-security",
		Matches: func(item models.LineItem, desc string) bool {
			return item.Type == models.ItemTypePersonnel && containsAny(desc, socialSecurityTerms)
		},
		Code:       AccountSocialCharges,
		Confidence: SocialChargesConfidence,
	},
	{
		Name: "fixed-utilities",
		Matches: func(item models.LineItem, desc string) bool {
			return item.Type == models.ItemTypeFixed && containsAny(desc, utilityTerms)
		},
		Code:       AccountUtilities,
		Confidence: RefinementConfidence,
	},
	{
		Name: "fixed-transport",
		Matches: func(item models.LineItem, desc string) bool {
			return item.Type == models.ItemTypeFixed && containsAny(desc, transportTerms)
		},
		Code:       AccountTransport,
		Confidence: RefinementConfidence,
	},
}

// MapLineItem maps one line item to an account. The cascade is:
// asset depreciation → type refinements → strong type default → keyword
// dictionary → weak type default → generic fallback. Every result carries
// the original description and amount for audit.
func (m *Mapper) MapLineItem(item models.LineItem) models.MappingResult {
	if item.Type == models.ItemTypeAsset {
		return m.mapAsset(item)
	}

	desc := textutils.Normalize(item.Description)
	amount := sanitizeAmount(item.Amount)

	// Type refinements, highest priority after assets.
	for _, rule := range mappingRules {
		if rule.Matches(item, desc) {
			return m.result(item, rule.Code, rule.Confidence, amount, rule.Name)
		}
	}

	// Strong type default.
	def, hasDefault := typeDefaults[item.Type]
	if hasDefault && def.Confidence >= TypeDefaultThreshold {
		return m.result(item, def.Code, def.Confidence, amount, "type-default")
	}

	// Keyword dictionary, declaration order, first match wins.
	for _, entry := range keywordDictionary {
		if containsAny(desc, entry.Keywords) {
			return m.result(item, entry.Code, KeywordMatchConfidence, amount, "keyword")
		}
	}

	// Weak type default still beats the generic fallback.
	if hasDefault {
		return m.result(item, def.Code, def.Confidence, amount, "type-default-weak")
	}

	// Generic fallback, chosen by flow direction.
	code := AccountOtherCosts
	if item.IsRevenue || item.Type == models.ItemTypeRevenue {
		code = AccountOtherRevenue
	}
	return m.result(item, code, FallbackConfidence, amount, "generic-fallback")
}

// mapAsset always maps to the depreciation account with the straight-line
// annual depreciation as the aggregated amount. A missing or non-positive
// useful life defaults to DefaultUsefulLifeYears.
func (m *Mapper) mapAsset(item models.LineItem) models.MappingResult {
	life := item.UsefulLifeYears
	if life <= 0 {
		life = DefaultUsefulLifeYears
	}

	value := sanitizeAmount(item.Amount)
	depreciation := value.Div(decimal.NewFromInt(int64(life)))

	result := m.result(item, AccountDepreciation, DepreciationConfidence, depreciation, "asset-depreciation")
	return result
}

func (m *Mapper) result(item models.LineItem, code string, confidence int, amount decimal.Decimal, rule string) models.MappingResult {
	account, ok := AccountByCode(code)
	if !ok {
		// Rule tables only reference declared accounts; this guards
		// against future edits breaking that invariant.
		account = Account{Code: code, Name: ClassName(code[:1])}
	}

	m.logger.Debug("Mapped line item",
		logging.Field{Key: logging.FieldAccount, Value: account.Code},
		logging.Field{Key: logging.FieldRule, Value: rule},
		logging.Field{Key: logging.FieldConfidence, Value: confidence},
	)

	return models.MappingResult{
		AccountCode:    account.Code,
		AccountName:    account.Name,
		Confidence:     confidence,
		Amount:         amount,
		Description:    item.Description,
		OriginalAmount: sanitizeAmount(item.Amount),
		Rule:           rule,
	}
}

// sanitizeAmount treats negative amounts as zero so aggregation never
// subtracts; mapping itself continues regardless.
func sanitizeAmount(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
