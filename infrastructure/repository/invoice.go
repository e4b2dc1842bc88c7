package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoices-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoices-api/internal/domain"
)

var (
	ErrInvoiceNotFound = errors.New("fatura não encontrada")
	ErrUnknownCustomer = errors.New("cliente da fatura não existe")
)

var invoiceColumns = []string{"id", "customer_id", "amount", "status", "date"}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) (string, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, invoiceID string) error
	GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
}

type invoiceRepository struct {
	conn postgres.Conn
}

func NewInvoiceRepository(conn postgres.Conn) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) (string, error) {
	insertSQL, insertArgs, err := squirrel.
		Insert(invoicesTable).
		Columns("customer_id", "amount", "status", "date").
		Values(invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRow(ctx, insertSQL, insertArgs...).Scan(&invoice.ID); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return "", ErrUnknownCustomer
		}
		return "", errors.Wrap(err, "erro ao inserir fatura")
	}

	return invoice.ID, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	updateSQL, updateArgs, err := squirrel.
		Update(invoicesTable).
		Set("customer_id", invoice.CustomerID).
		Set("amount", invoice.Amount).
		Set("status", string(invoice.Status)).
		Where(squirrel.Eq{"id": invoice.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(ctx, updateSQL, updateArgs...)
	if err != nil {
		if postgres.IsInvalidText(err) {
			return ErrInvoiceNotFound
		}
		if postgres.IsForeignKeyViolation(err) {
			return ErrUnknownCustomer
		}
		return errors.Wrap(err, "erro ao atualizar fatura")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, invoiceID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
		if postgres.IsInvalidText(err) {
			return ErrInvoiceNotFound
		}
		return errors.Wrap(err, "erro ao remover fatura")
	}

	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	selectSQL, selectArgs, err := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"id": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var invoice domain.Invoice
	var status string
	err = r.conn.QueryRow(ctx, selectSQL, selectArgs...).Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.Amount,
		&status,
		&invoice.Date,
	)
	if err == sql.ErrNoRows || postgres.IsInvalidText(err) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar fatura")
	}

	invoice.Status = domain.InvoiceStatus(status)
	return &invoice, nil
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Invoice, error) {
	return r.list(ctx, squirrel.Eq{"customer_id": customerID})
}

func (r *invoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	return r.list(ctx, nil)
}

func (r *invoiceRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Invoice, error) {
	queryBuilder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		OrderBy("date DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	selectSQL, selectArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		if postgres.IsInvalidText(err) {
			return []*domain.Invoice{}, nil
		}
		return nil, errors.Wrap(err, "erro ao listar faturas")
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		var invoice domain.Invoice
		var status string
		if err := rows.Scan(
			&invoice.ID,
			&invoice.CustomerID,
			&invoice.Amount,
			&status,
			&invoice.Date,
		); err != nil {
			return nil, err
		}

		invoice.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
