package invoicing

import (
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/invoices-api/internal/domain"
)

const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

const (
	msgInvalidCustomerID = "Must be a valid customer ID"
	msgInvalidAmount     = "Amount must be a valid number"
	msgAmountNotPositive = "Amount must be greater than 0"
	msgTooManyDecimals   = "Max 2 decimal places"
	msgAmountTooLarge    = "Amount is too large"
	msgInvalidStatus     = "Invalid enum value. Expected 'pending' | 'paid'"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type invoiceFormInput struct {
	CustomerID string `validate:"required,uuid"`
	Status     string `validate:"required,oneof=pending paid"`
}

// ParseInvoiceForm valida os campos do formulário e converte o valor para centavos
func ParseInvoiceForm(customerID, amount, status string) (*domain.InvoiceForm, error) {
	validationErr := domain.NewValidationError()

	input := invoiceFormInput{
		CustomerID: strings.TrimSpace(customerID),
		Status:     strings.TrimSpace(status),
	}

	if err := validate.Struct(input); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return nil, err
		}

		for _, fieldErr := range fieldErrors {
			switch fieldErr.Field() {
			case "CustomerID":
				validationErr.Add(FieldCustomerID, msgInvalidCustomerID)
			case "Status":
				validationErr.Add(FieldStatus, msgInvalidStatus)
			}
		}
	}

	cents, msg := amountToCents(amount)
	if msg != "" {
		validationErr.Add(FieldAmount, msg)
	}

	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &domain.InvoiceForm{
		CustomerID:  input.CustomerID,
		AmountCents: cents,
		Status:      domain.InvoiceStatus(input.Status),
	}, nil
}

// Faixa de expoente aceita antes de reescalar o valor. Fora dela o Round
// teria que materializar um inteiro com milhões de dígitos.
const (
	minAmountExponent = -20
	maxAmountExponent = 20
)

// amountToCents devolve a mensagem de validação quando o valor é rejeitado
func amountToCents(raw string) (int64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		// Campo vazio equivale a zero
		return 0, msgAmountNotPositive
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, msgInvalidAmount
	}

	if !amount.IsPositive() {
		return 0, msgAmountNotPositive
	}

	switch exp := amount.Exponent(); {
	case exp < minAmountExponent:
		return 0, msgTooManyDecimals
	case exp > maxAmountExponent:
		return 0, msgAmountTooLarge
	}

	if !amount.Round(2).Equal(amount) {
		return 0, msgTooManyDecimals
	}

	cents := amount.Shift(2)
	if cents.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, msgAmountTooLarge
	}

	return cents.IntPart(), ""
}
