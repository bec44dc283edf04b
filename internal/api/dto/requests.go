package dto

import (
	"github.com/bookkept/matchd/internal/model"
)

// TransactionPayload mirrors model.Transaction on the wire.
type TransactionPayload struct {
	ID        string `json:"id"`
	Amount    Amount `json:"amount"`
	Date      string `json:"date"`
	Contact   string `json:"contact"`
	Reference string `json:"reference"`
}

// ToModel converts the payload into the engine's record shape.
func (p TransactionPayload) ToModel() *model.Transaction {
	return &model.Transaction{
		ID:        p.ID,
		Amount:    p.Amount.Value,
		Date:      p.Date,
		Contact:   p.Contact,
		Reference: p.Reference,
	}
}

// AttachmentPayload mirrors model.Attachment on the wire.
type AttachmentPayload struct {
	ID   string                `json:"id"`
	Data AttachmentDataPayload `json:"data"`
}

// AttachmentDataPayload carries the extracted document fields.
type AttachmentDataPayload struct {
	TotalAmount   Amount `json:"total_amount"`
	InvoicingDate string `json:"invoicing_date"`
	DueDate       string `json:"due_date"`
	ReceivingDate string `json:"receiving_date"`
	Recipient     string `json:"recipient"`
	Issuer        string `json:"issuer"`
	Supplier      string `json:"supplier"`
	Reference     string `json:"reference"`
}

// ToModel converts the payload into the engine's record shape.
func (p AttachmentPayload) ToModel() *model.Attachment {
	return &model.Attachment{
		ID: p.ID,
		Data: model.AttachmentData{
			TotalAmount:   p.Data.TotalAmount.Value,
			InvoicingDate: p.Data.InvoicingDate,
			DueDate:       p.Data.DueDate,
			ReceivingDate: p.Data.ReceivingDate,
			Recipient:     p.Data.Recipient,
			Issuer:        p.Data.Issuer,
			Supplier:      p.Data.Supplier,
			Reference:     p.Data.Reference,
		},
	}
}

// MatchAttachmentRequest asks for the best attachment for a transaction.
// Candidates are supplied in full by the caller; the service fetches
// nothing and stores nothing.
type MatchAttachmentRequest struct {
	Transaction TransactionPayload  `json:"transaction"`
	Candidates  []AttachmentPayload `json:"candidates"`
}

// MatchTransactionRequest asks for the best transaction for an
// attachment.
type MatchTransactionRequest struct {
	Attachment AttachmentPayload    `json:"attachment"`
	Candidates []TransactionPayload `json:"candidates"`
}
