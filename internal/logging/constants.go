package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the engine's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile         = "file_path"
	FieldComponent    = "component"
	FieldDocumentType = "document_type"
	FieldAccount      = "account_code"
	FieldRule         = "rule"
	FieldConfidence   = "confidence"
	FieldReason       = "reason"
	FieldOperation    = "operation"
	FieldError        = "error"
	FieldCount        = "count"
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
)
