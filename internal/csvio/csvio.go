// Package csvio reads and writes the CSV shapes the CLI exchanges with the
// surrounding application: line items in, mapping results out and back in
// for report generation.
package csvio

import (
	"os"

	"gestfin/pgc-engine/internal/enginerror"
	"gestfin/pgc-engine/internal/models"

	"github.com/gocarina/gocsv"
)

// lineItemRecord is the CSV shape of one input line item. Amounts and types
// are free-form strings; parsing degrades instead of failing per record.
type lineItemRecord struct {
	Description     string `csv:"description"`
	Type            string `csv:"type"`
	Amount          string `csv:"amount"`
	IsRevenue       bool   `csv:"is_revenue"`
	UsefulLifeYears int    `csv:"useful_life_years"`
}

// mappingResultRecord is the CSV shape of one mapping result.
type mappingResultRecord struct {
	AccountCode    string `csv:"account_code"`
	AccountName    string `csv:"account_name"`
	Confidence     int    `csv:"confidence"`
	Amount         string `csv:"amount"`
	Description    string `csv:"description"`
	OriginalAmount string `csv:"original_amount"`
	Rule           string `csv:"rule"`
}

// ReadLineItems loads line items from a CSV file.
func ReadLineItems(path string) ([]models.LineItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &enginerror.InputError{Source: path, Err: err}
	}
	defer file.Close()

	var records []lineItemRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, &enginerror.InputError{Source: path, Err: err}
	}

	items := make([]models.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, models.LineItem{
			Description:     rec.Description,
			Type:            models.ParseItemType(rec.Type),
			Amount:          models.ParseAmount(rec.Amount),
			IsRevenue:       rec.IsRevenue,
			UsefulLifeYears: rec.UsefulLifeYears,
		})
	}
	return items, nil
}

// WriteMappingResults writes mapping results as CSV to path.
func WriteMappingResults(path string, results []models.MappingResult) error {
	records := make([]mappingResultRecord, 0, len(results))
	for _, r := range results {
		records = append(records, mappingResultRecord{
			AccountCode:    r.AccountCode,
			AccountName:    r.AccountName,
			Confidence:     r.Confidence,
			Amount:         r.Amount.String(),
			Description:    r.Description,
			OriginalAmount: r.OriginalAmount.String(),
			Rule:           r.Rule,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return &enginerror.InputError{Source: path, Err: err}
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return &enginerror.InputError{Source: path, Err: err}
	}
	return nil
}

// ReadMappingResults loads previously written mapping results from a CSV
// file, typically to feed report generation.
func ReadMappingResults(path string) ([]models.MappingResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &enginerror.InputError{Source: path, Err: err}
	}
	defer file.Close()

	var records []mappingResultRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, &enginerror.InputError{Source: path, Err: err}
	}

	results := make([]models.MappingResult, 0, len(records))
	for _, rec := range records {
		results = append(results, models.MappingResult{
			AccountCode:    rec.AccountCode,
			AccountName:    rec.AccountName,
			Confidence:     rec.Confidence,
			Amount:         models.ParseAmount(rec.Amount),
			Description:    rec.Description,
			OriginalAmount: models.ParseAmount(rec.OriginalAmount),
			Rule:           rec.Rule,
		})
	}
	return results, nil
}
