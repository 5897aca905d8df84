package textutils

import (
	"testing"

	"gestfin/pgc-engine/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreByKeywords(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected map[models.DocumentType]int
	}{
		{
			name: "Incoming invoice text",
			text: "Fatura emitida ao cliente pela venda de produtos",
			expected: map[models.DocumentType]int{
				models.DocumentIncoming: 3 * KeywordWeight,
				models.DocumentOutgoing: 0,
				models.DocumentContract: 0,
				models.DocumentUnknown:  0,
			},
		},
		{
			name: "Outgoing supplier expense",
			text: "Despesa com fornecedor, valor a pagar no fim do mês",
			expected: map[models.DocumentType]int{
				models.DocumentIncoming: 0,
				models.DocumentOutgoing: 3 * KeywordWeight,
				models.DocumentContract: 0,
				models.DocumentUnknown:  0,
			},
		},
		{
			name: "Contract with accented keyword",
			text: "Contrato de arrendamento, cláusula quinta",
			expected: map[models.DocumentType]int{
				models.DocumentIncoming: 0,
				models.DocumentOutgoing: 0,
				models.DocumentContract: 2 * KeywordWeight,
				models.DocumentUnknown:  0,
			},
		},
		{
			name: "No keywords at all",
			text: "texto sem qualquer sinal",
			expected: map[models.DocumentType]int{
				models.DocumentIncoming: 0,
				models.DocumentOutgoing: 0,
				models.DocumentContract: 0,
				models.DocumentUnknown:  0,
			},
		},
		{
			name: "Matching is case insensitive",
			text: "FATURA",
			expected: map[models.DocumentType]int{
				models.DocumentIncoming: KeywordWeight,
				models.DocumentOutgoing: 0,
				models.DocumentContract: 0,
				models.DocumentUnknown:  0,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ScoreByKeywords(tc.text))
		})
	}
}

func TestScoreByKeywordsCountsDistinctPhrasesOnce(t *testing.T) {
	// Repeating a phrase must not inflate the score.
	scores := ScoreByKeywords("fatura fatura fatura")
	assert.Equal(t, KeywordWeight, scores[models.DocumentIncoming])
}
