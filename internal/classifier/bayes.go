package classifier

import (
	"math"

	"gestfin/pgc-engine/internal/models"
)

// scoreEpsilon bounds the float comparison that decides whether every
// category scored equally (the unknown/zero-confidence case).
const scoreEpsilon = 1e-9

// bayesLogScore computes the Naive-Bayes log-likelihood of the tokens under
// one category, with add-one smoothing. Counts that would serve as a
// numerator base or denominator are floored at 1 so a cold store scores
// zero instead of collapsing to -Inf.
func bayesLogScore(stats *CategoryStats, tokens []string, totalDocs, vocabulary int) float64 {
	score := math.Log(float64(maxInt(1, stats.Docs)) / float64(maxInt(1, totalDocs)))

	totalTerms := 0
	for _, count := range stats.Terms {
		totalTerms += count
	}
	denominator := float64(maxInt(1, totalTerms+vocabulary))

	for _, token := range tokens {
		score += math.Log(float64(stats.Terms[token]+1) / denominator)
	}
	return score
}

// combinedScores blends the Bayes log-score with the keyword heuristic per
// category. The log(kw+1) term makes keywords a bonus, never a veto.
func combinedScores(store *ClassifierStore, tokens []string, keywordScores map[models.DocumentType]int) map[models.DocumentType]float64 {
	vocabulary := store.vocabularySize()

	combined := make(map[models.DocumentType]float64, len(models.AllDocumentTypes()))
	for _, docType := range models.AllDocumentTypes() {
		bayes := bayesLogScore(store.Categories[docType], tokens, store.TotalDocs, vocabulary)
		combined[docType] = bayes + math.Log(float64(keywordScores[docType]+1))
	}
	return combined
}

// pickCategory normalizes combined log-scores with a numerically stable
// softmax and selects the winner. If every category scored equally there is
// no signal at all: the result is unknown with zero confidence.
func pickCategory(combined map[models.DocumentType]float64) models.Classification {
	docTypes := models.AllDocumentTypes()

	minScore, maxScore := combined[docTypes[0]], combined[docTypes[0]]
	for _, docType := range docTypes {
		score := combined[docType]
		minScore = math.Min(minScore, score)
		maxScore = math.Max(maxScore, score)
	}

	if maxScore-minScore < scoreEpsilon {
		return models.Classification{DocumentType: models.DocumentUnknown, Confidence: 0}
	}

	// Softmax with the max subtracted before exponentiating.
	var sum float64
	probabilities := make(map[models.DocumentType]float64, len(docTypes))
	for _, docType := range docTypes {
		p := math.Exp(combined[docType] - maxScore)
		probabilities[docType] = p
		sum += p
	}

	best := models.DocumentUnknown
	bestProbability := -1.0
	for _, docType := range docTypes {
		p := probabilities[docType] / sum
		probabilities[docType] = p
		if p > bestProbability+scoreEpsilon {
			best = docType
			bestProbability = p
		}
	}

	confidence := int(math.Round(bestProbability * 100))
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return models.Classification{DocumentType: best, Confidence: confidence}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
