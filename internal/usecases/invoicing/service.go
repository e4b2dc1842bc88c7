// Package invoicing implementa as ações de fatura usadas pelo dashboard
package invoicing

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/invoices-api/infrastructure/repository"
	"github.com/vfg2006/invoices-api/internal/domain"
	"github.com/vfg2006/invoices-api/pkg/apiErrors"
	"github.com/vfg2006/invoices-api/pkg/log"
	"github.com/vfg2006/invoices-api/pkg/utils"
)

type Invoicer interface {
	CreateInvoice(ctx context.Context, form *domain.InvoiceForm) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, form *domain.InvoiceForm) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, customerID string) ([]*domain.Invoice, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	ListRevenue(ctx context.Context) ([]*domain.Revenue, error)
}

type Service struct {
	invoiceRepository  repository.InvoiceRepository
	customerRepository repository.CustomerRepository
	revenueRepository  repository.RevenueRepository
	now                func() time.Time
}

func NewService(
	invoiceRepository repository.InvoiceRepository,
	customerRepository repository.CustomerRepository,
	revenueRepository repository.RevenueRepository,
) Invoicer {
	return &Service{
		invoiceRepository:  invoiceRepository,
		customerRepository: customerRepository,
		revenueRepository:  revenueRepository,
		now:                time.Now,
	}
}

// CreateInvoice grava a fatura com a data de hoje em UTC
func (s *Service) CreateInvoice(ctx context.Context, form *domain.InvoiceForm) (*domain.Invoice, error) {
	invoice := &domain.Invoice{
		CustomerID: form.CustomerID,
		Amount:     form.AmountCents,
		Status:     form.Status,
		Date:       utils.DateOnlyUTC(s.now()),
	}

	if _, err := s.invoiceRepository.Create(ctx, invoice); err != nil {
		if errors.Is(err, repository.ErrUnknownCustomer) {
			log.ForContext(ctx).WithField("customer_id", form.CustomerID).Warn("Fatura para cliente inexistente")
		} else {
			log.ForContext(ctx).WithError(err).Error("Erro ao criar fatura")
		}
		return nil, NewInvoiceError(ErrCreateInvoice, apiErrors.ErrDatabaseOperation, "")
	}

	log.ForContext(ctx).WithField("invoice_id", invoice.ID).Info("Fatura criada")
	return invoice, nil
}

func (s *Service) UpdateInvoice(ctx context.Context, invoiceID string, form *domain.InvoiceForm) error {
	invoice := &domain.Invoice{
		ID:         invoiceID,
		CustomerID: form.CustomerID,
		Amount:     form.AmountCents,
		Status:     form.Status,
	}

	err := s.invoiceRepository.Update(ctx, invoice)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return NewInvoiceError(ErrInvoiceNotFound, apiErrors.ErrInvoiceNotFound, invoiceID)
	}
	if errors.Is(err, repository.ErrUnknownCustomer) {
		log.ForContext(ctx).WithField("invoice_id", invoiceID).WithField("customer_id", form.CustomerID).Warn("Fatura para cliente inexistente")
		return NewInvoiceError(ErrUpdateInvoice, apiErrors.ErrDatabaseOperation, invoiceID)
	}
	if err != nil {
		log.ForContext(ctx).WithField("invoice_id", invoiceID).WithError(err).Error("Erro ao atualizar fatura")
		return NewInvoiceError(ErrUpdateInvoice, apiErrors.ErrDatabaseOperation, invoiceID)
	}

	return nil
}

// DeleteInvoice é idempotente: remover uma fatura inexistente não é erro
func (s *Service) DeleteInvoice(ctx context.Context, invoiceID string) error {
	err := s.invoiceRepository.Delete(ctx, invoiceID)
	if err != nil && !errors.Is(err, repository.ErrInvoiceNotFound) {
		log.ForContext(ctx).WithField("invoice_id", invoiceID).WithError(err).Error("Erro ao remover fatura")
		return NewInvoiceError(ErrDeleteInvoice, apiErrors.ErrDatabaseOperation, invoiceID)
	}

	return nil
}

func (s *Service) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepository.GetByID(ctx, invoiceID)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, NewInvoiceError(ErrInvoiceNotFound, apiErrors.ErrInvoiceNotFound, invoiceID)
	}
	if err != nil {
		log.ForContext(ctx).WithField("invoice_id", invoiceID).WithError(err).Error("Erro ao buscar fatura")
		return nil, NewInvoiceError(ErrFetchInvoices, apiErrors.ErrDatabaseOperation, invoiceID)
	}

	return invoice, nil
}

// ListInvoices filtra por cliente quando customerID não é vazio
func (s *Service) ListInvoices(ctx context.Context, customerID string) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	var err error

	if customerID != "" {
		invoices, err = s.invoiceRepository.ListByCustomer(ctx, customerID)
	} else {
		invoices, err = s.invoiceRepository.List(ctx)
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar faturas")
		return nil, NewInvoiceError(ErrFetchInvoices, apiErrors.ErrDatabaseOperation, "")
	}

	return invoices, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepository.List(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar clientes")
		return nil, NewInvoiceError(ErrFetchCustomers, apiErrors.ErrDatabaseOperation, "")
	}

	return customers, nil
}

func (s *Service) ListRevenue(ctx context.Context) ([]*domain.Revenue, error) {
	revenue, err := s.revenueRepository.List(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar receita")
		return nil, NewInvoiceError(ErrFetchRevenue, apiErrors.ErrDatabaseOperation, "")
	}

	return revenue, nil
}
