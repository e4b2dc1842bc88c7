package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoices-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoices-api/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]*domain.Customer, error)
}

type customerRepository struct {
	conn postgres.Conn
}

func NewCustomerRepository(conn postgres.Conn) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	customersSQL, customersArgs, err := squirrel.
		Select("id", "name", "email", "image_url").
		From(customersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(ctx, customersSQL, customersArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar clientes")
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.ImageURL); err != nil {
			return nil, err
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
