package report

// Compliance policy. The thresholds, weights and messages below are tunable
// policy constants, not derived business rules; recalibrating them must not
// change the shape of the report.
const (
	// HighConfidenceThreshold marks a mapping as bookable without review.
	HighConfidenceThreshold = 80

	// Percent-high-confidence bands for the compliance level.
	LowLevelBelowPercent    = 70.0
	MediumLevelBelowPercent = 85.0

	// Score = min(100, percentHighConfidence*ScorePercentWeight +
	// distinctClasses*ScorePerClassWeight).
	ScorePercentWeight  = 0.7
	ScorePerClassWeight = 5.0
)

// Fixed problem/recommendation pairs.
const (
	problemLowConfidence        = "Grande parte das rubricas foi mapeada com confiança baixa"
	recommendationLowConfidence = "Rever manualmente as rubricas de confiança baixa e confirmar as contas atribuídas"

	problemMediumConfidence        = "Algumas rubricas foram mapeadas com confiança insuficiente"
	recommendationMediumConfidence = "Confirmar as rubricas abaixo do limiar de confiança antes de fechar o período"

	problemNoRevenue        = "Nenhuma conta de proveitos (classe 7) foi identificada"
	recommendationNoRevenue = "Verificar se as rubricas de receita foram registadas e classificadas"

	problemNoCosts        = "Nenhuma conta de custos (classe 6) foi identificada"
	recommendationNoCosts = "Verificar se as rubricas de despesa foram registadas e classificadas"
)
