package domain

import (
	"fmt"
	"time"
)

// InvoiceStatus represents the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

var InvoiceStatuses = []InvoiceStatus{InvoiceDraft, InvoiceSent, InvoicePaid}

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	for _, st := range InvoiceStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown invoice status %q", ErrValidation, s)
}

// Invoice is a billing event for a project.
type Invoice struct {
	ID         int64         `json:"id"`
	ProjectID  int64         `json:"project_id"`
	Amount     float64       `json:"amount"`
	DateIssued time.Time     `json:"date_issued"`
	Status     InvoiceStatus `json:"status"`
}
