package invoicing

import (
	"errors"
)

// Mensagens devolvidas ao cliente; mantidas em inglês por compatibilidade com o front
var (
	ErrCreateInvoice   = errors.New("Failed to create invoice")
	ErrUpdateInvoice   = errors.New("Failed to update invoice")
	ErrDeleteInvoice   = errors.New("Failed to delete invoice")
	ErrInvoiceNotFound = errors.New("Invoice not found")

	ErrFetchInvoices  = errors.New("Failed to fetch invoices")
	ErrFetchCustomers = errors.New("Failed to fetch customers")
	ErrFetchRevenue   = errors.New("Failed to fetch revenue")
)

// InvoiceError carrega o código de API junto do erro base
type InvoiceError struct {
	Err       error
	Code      string
	InvoiceID string
}

func (e *InvoiceError) Error() string {
	return e.Err.Error()
}

func (e *InvoiceError) Unwrap() error {
	return e.Err
}

func NewInvoiceError(err error, code string, invoiceID string) *InvoiceError {
	return &InvoiceError{
		Err:       err,
		Code:      code,
		InvoiceID: invoiceID,
	}
}
