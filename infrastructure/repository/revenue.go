package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoices-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoices-api/internal/domain"
)

type RevenueRepository interface {
	List(ctx context.Context) ([]*domain.Revenue, error)
}

type revenueRepository struct {
	conn postgres.Conn
}

func NewRevenueRepository(conn postgres.Conn) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

// List devolve os meses na ordem de inserção do seed (Jan..Dec)
func (r *revenueRepository) List(ctx context.Context) ([]*domain.Revenue, error) {
	revenueSQL, revenueArgs, err := squirrel.
		Select("month", "revenue").
		From(revenueTable).
		OrderBy("to_date(month, 'Mon') ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(ctx, revenueSQL, revenueArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar receitas")
	}
	defer rows.Close()

	revenue := make([]*domain.Revenue, 0, 12)
	for rows.Next() {
		var month domain.Revenue
		if err := rows.Scan(&month.Month, &month.Revenue); err != nil {
			return nil, err
		}
		revenue = append(revenue, &month)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return revenue, nil
}
