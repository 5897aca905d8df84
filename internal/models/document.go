// Package models provides the data structures shared across the engine.
package models

// DocumentType identifies the kind of financial document a scanned text
// belongs to. The set is fixed; classification never invents new types.
type DocumentType string

const (
	// DocumentIncoming is an invoice or receipt issued to a customer
	// (money flowing in: sales, billing).
	DocumentIncoming DocumentType = "incoming"

	// DocumentOutgoing is a supplier invoice or expense receipt
	// (money flowing out: purchases, payments to third parties).
	DocumentOutgoing DocumentType = "outgoing"

	// DocumentContract is a contractual or legal document.
	DocumentContract DocumentType = "contract"

	// DocumentUnknown is the safe default when no signal is available.
	DocumentUnknown DocumentType = "unknown"
)

// AllDocumentTypes lists every document type in a fixed order. The
// classifier store always carries an entry for each of them, even with
// zero observed documents.
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentIncoming,
		DocumentOutgoing,
		DocumentContract,
		DocumentUnknown,
	}
}

// ParseDocumentType maps a free-form label to a DocumentType. Unrecognized
// labels fall back to DocumentUnknown rather than failing.
func ParseDocumentType(label string) DocumentType {
	switch DocumentType(label) {
	case DocumentIncoming, DocumentOutgoing, DocumentContract, DocumentUnknown:
		return DocumentType(label)
	default:
		return DocumentUnknown
	}
}

// Classification is the result of classifying a document's extracted text.
type Classification struct {
	DocumentType DocumentType `json:"document_type" yaml:"document_type"`
	// Confidence is a probability-like score in [0,100].
	Confidence int `json:"confidence" yaml:"confidence"`
}
