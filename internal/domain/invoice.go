package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// InvoiceStatuses lista os status aceitos, na ordem exibida ao usuário
var InvoiceStatuses = []InvoiceStatus{InvoiceStatusPending, InvoiceStatusPaid}

func (s InvoiceStatus) IsValid() bool {
	for _, status := range InvoiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Invoice guarda o valor em centavos
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// InvoiceForm é o formulário já validado, com o valor convertido para centavos
type InvoiceForm struct {
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
}
