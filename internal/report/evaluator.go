package report

import (
	"gestfin/pgc-engine/internal/logging"
	"gestfin/pgc-engine/internal/models"
	"gestfin/pgc-engine/internal/pgc"
)

// Evaluator builds aggregation reports from batches of mapping results.
// It holds no shared state and is safe for unlimited concurrent use.
type Evaluator struct {
	logger logging.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(logger logging.Logger) *Evaluator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Evaluator{logger: logger.WithField(logging.FieldComponent, "evaluator")}
}

// Evaluate aggregates a batch of mapping results into the compliance
// report. Assets are expected to arrive already converted to their
// depreciation entries by the mapper.
func (e *Evaluator) Evaluate(results []models.MappingResult) *Report {
	rpt := &Report{PerClass: make(map[string]*ClassTotal)}

	for _, result := range results {
		if result.AccountCode == "" {
			continue
		}
		classDigit := result.AccountCode[:1]

		class := rpt.PerClass[classDigit]
		if class == nil {
			class = &ClassTotal{
				Name:       pgc.ClassName(classDigit),
				PerAccount: make(map[string]*AccountTotal),
			}
			rpt.PerClass[classDigit] = class
		}

		account := class.PerAccount[result.AccountCode]
		if account == nil {
			account = &AccountTotal{Name: result.AccountName}
			class.PerAccount[result.AccountCode] = account
		}

		class.Total = class.Total.Add(result.Amount)
		account.Total = account.Total.Add(result.Amount)
		account.ItemCount++

		rpt.Statistics.TotalItems++
		if result.Confidence >= HighConfidenceThreshold {
			rpt.Statistics.HighConfidenceItems++
		} else {
			rpt.Statistics.LowConfidenceItems++
		}
	}

	if rpt.Statistics.TotalItems > 0 {
		rpt.Statistics.PercentHighConfidence =
			float64(rpt.Statistics.HighConfidenceItems) / float64(rpt.Statistics.TotalItems) * 100.0
	}

	rpt.Compliance = e.assessCompliance(rpt)

	e.logger.Debug("Evaluated mapping batch",
		logging.Field{Key: "total_items", Value: rpt.Statistics.TotalItems},
		logging.Field{Key: "level", Value: string(rpt.Compliance.Level)},
		logging.Field{Key: "score", Value: rpt.Compliance.Score},
	)
	return rpt
}

// assessCompliance derives the qualitative level, remediation hints and the
// weighted score from the aggregated report.
func (e *Evaluator) assessCompliance(rpt *Report) Compliance {
	percent := rpt.Statistics.PercentHighConfidence

	compliance := Compliance{
		Level:           ComplianceHigh,
		Problems:        []string{},
		Recommendations: []string{},
	}

	switch {
	case percent < LowLevelBelowPercent:
		compliance.Level = ComplianceLow
		compliance.Problems = append(compliance.Problems, problemLowConfidence)
		compliance.Recommendations = append(compliance.Recommendations, recommendationLowConfidence)
	case percent < MediumLevelBelowPercent:
		compliance.Level = ComplianceMedium
		compliance.Problems = append(compliance.Problems, problemMediumConfidence)
		compliance.Recommendations = append(compliance.Recommendations, recommendationMediumConfidence)
	}

	// Structural checks: a period without revenue or without costs is
	// suspicious regardless of mapping confidence.
	if _, ok := rpt.PerClass["7"]; !ok {
		compliance.Problems = append(compliance.Problems, problemNoRevenue)
		compliance.Recommendations = append(compliance.Recommendations, recommendationNoRevenue)
		if compliance.Level == ComplianceHigh {
			compliance.Level = ComplianceMedium
		}
	}
	if _, ok := rpt.PerClass["6"]; !ok {
		compliance.Problems = append(compliance.Problems, problemNoCosts)
		compliance.Recommendations = append(compliance.Recommendations, recommendationNoCosts)
		if compliance.Level == ComplianceHigh {
			compliance.Level = ComplianceMedium
		}
	}

	score := percent*ScorePercentWeight + float64(len(rpt.PerClass))*ScorePerClassWeight
	if score > 100 {
		score = 100
	}
	compliance.Score = score

	return compliance
}
