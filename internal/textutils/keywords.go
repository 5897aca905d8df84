package textutils

import (
	"strings"

	"gestfin/pgc-engine/internal/models"
)

// KeywordWeight is added once per distinct keyword phrase found in the text.
// Tunable policy, not a derived constant.
const KeywordWeight = 2

// documentKeywords maps each document type to the keyword phrases that hint
// at it. Matching is by case-insensitive substring over the raw text, so
// multi-word phrases work without tokenization. DocumentUnknown deliberately
// has no list and always scores zero.
var documentKeywords = map[models.DocumentType][]string{
	models.DocumentIncoming: {
		"fatura",
		"factura",
		"recibo",
		"venda",
		"cliente",
		"pagamento recebido",
		"valor a receber",
		"proveito",
	},
	models.DocumentOutgoing: {
		"fornecedor",
		"compra",
		"despesa",
		"custo",
		"pagamento efectuado",
		"valor a pagar",
		"aquisicao",
		"aquisição",
	},
	models.DocumentContract: {
		"contrato",
		"acordo",
		"clausula",
		"cláusula",
		"partes contratantes",
		"vigencia",
		"vigência",
		"rescisao",
		"rescisão",
	},
}

// ScoreByKeywords scores raw text against every document type's keyword
// list. Each distinct phrase found adds KeywordWeight; types without a list
// score zero. This is a heuristic prior that saturates quickly: it must be
// blended with the statistical score, never used alone.
func ScoreByKeywords(text string) map[models.DocumentType]int {
	lowered := strings.ToLower(text)

	scores := make(map[models.DocumentType]int, len(models.AllDocumentTypes()))
	for _, docType := range models.AllDocumentTypes() {
		score := 0
		for _, phrase := range documentKeywords[docType] {
			if strings.Contains(lowered, phrase) {
				score += KeywordWeight
			}
		}
		scores[docType] = score
	}
	return scores
}
