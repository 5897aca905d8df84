package models

import (
	"gestfin/pgc-engine/internal/logging"
)

// HighConfidenceThreshold separates mappings that can be booked directly
// from those that should be reviewed by a human. Policy constant, not a law.
const HighConfidenceThreshold = 80

// MappingStats tracks statistics for a batch of line-item mappings.
type MappingStats struct {
	Total          int // Total number of line items processed
	HighConfidence int // Mappings with confidence >= HighConfidenceThreshold
	LowConfidence  int // Mappings below the threshold
}

// Observe records one mapping result in the statistics.
func (ms *MappingStats) Observe(result MappingResult) {
	ms.Total++
	if result.Confidence >= HighConfidenceThreshold {
		ms.HighConfidence++
	} else {
		ms.LowConfidence++
	}
}

// PercentHighConfidence calculates the share of high-confidence mappings
// as a percentage. An empty batch yields 0.
func (ms MappingStats) PercentHighConfidence() float64 {
	if ms.Total == 0 {
		return 0.0
	}
	return float64(ms.HighConfidence) / float64(ms.Total) * 100.0
}

// LogSummary logs a summary of the batch mapping statistics.
func (ms MappingStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("Mapping summary",
		logging.Field{Key: "source", Value: source},
		logging.Field{Key: "total_items", Value: ms.Total},
		logging.Field{Key: "high_confidence", Value: ms.HighConfidence},
		logging.Field{Key: "low_confidence", Value: ms.LowConfidence},
		logging.Field{Key: "percent_high_confidence", Value: ms.PercentHighConfidence()},
	)
}
