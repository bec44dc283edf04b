// Package model defines the two record shapes the matching engine consumes.
//
// Both shapes are plain value records materialized by the caller (from a
// bank feed, an inbox scanner, wherever); the engine never fetches,
// persists, or mutates them. Optional fields are modeled explicitly: a nil
// amount means "not supplied", an empty date string means "not supplied",
// while a non-empty date string that fails to parse is "supplied but
// unusable". The distinction matters when testing how the feature
// extractors degrade.
package model

import "github.com/shopspring/decimal"

// Transaction is a single bank movement.
type Transaction struct {
	ID        string           `json:"id,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"` // negative = expense, positive = income
	Date      string           `json:"date,omitempty"`   // YYYY-MM-DD
	Contact   string           `json:"contact,omitempty"`
	Reference string           `json:"reference,omitempty"`
}

// Attachment is an invoice or receipt together with the structured data
// extracted from the document.
type Attachment struct {
	ID   string         `json:"id,omitempty"`
	Data AttachmentData `json:"data"`
}

// AttachmentData holds the extracted document fields. Which dates and
// counterparty names are present depends on the document kind: a sales
// invoice names a recipient, a purchase invoice an issuer or supplier, a
// receipt usually only a supplier and a receiving date.
type AttachmentData struct {
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"` // unsigned document total
	InvoicingDate string           `json:"invoicing_date,omitempty"`
	DueDate       string           `json:"due_date,omitempty"`
	ReceivingDate string           `json:"receiving_date,omitempty"`
	Recipient     string           `json:"recipient,omitempty"`
	Issuer        string           `json:"issuer,omitempty"`
	Supplier      string           `json:"supplier,omitempty"`
	Reference     string           `json:"reference,omitempty"`
}
