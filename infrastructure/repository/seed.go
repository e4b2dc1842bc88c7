package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoices-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoices-api/internal/config"
	"github.com/vfg2006/invoices-api/internal/domain"
)

const (
	usersTable     = "users"
	customersTable = "customers"
	invoicesTable  = "invoices"
	revenueTable   = "revenue"
)

const (
	createUUIDExtensionSQL = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

	createUsersTableSQL = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`

	createCustomersTableSQL = `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		)`

	createInvoicesTableSQL = `
		CREATE TABLE IF NOT EXISTS invoices (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES customers (id) ON DELETE CASCADE,
			amount INT NOT NULL CHECK (amount > 0),
			status VARCHAR(255) NOT NULL CHECK (status IN ('pending', 'paid')),
			date DATE NOT NULL
		)`

	createRevenueTableSQL = `
		CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		)`
)

// SeedRepository reúne as operações de schema e de carga inicial.
// Cada instância é dona da sua conexão e deve ser fechada com Close.
type SeedRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	DropTable(ctx context.Context, table string) error
	EnsureUUIDExtension(ctx context.Context) error
	CreateUsersTable(ctx context.Context) error
	InsertUser(ctx context.Context, user domain.User) (bool, error)
	CreateCustomersTable(ctx context.Context) error
	InsertCustomer(ctx context.Context, customer domain.Customer) (bool, error)
	CreateInvoicesTable(ctx context.Context) error
	InsertInvoice(ctx context.Context, invoice domain.Invoice) (bool, error)
	CreateRevenueTable(ctx context.Context) error
	InsertRevenue(ctx context.Context, revenue domain.Revenue) (bool, error)
	Close() error
}

// SeedRepositoryOpener abre um SeedRepository com conexão própria
type SeedRepositoryOpener interface {
	Open(ctx context.Context) (SeedRepository, error)
}

type seedRepository struct {
	conn postgres.Conn
}

func NewSeedRepository(conn postgres.Conn) SeedRepository {
	return &seedRepository{
		conn: conn,
	}
}

type seedRepositoryOpener struct {
	cfg config.Database
}

// NewSeedRepositoryOpener usa a string de conexão sem pooler do seed
func NewSeedRepositoryOpener(cfg config.Database) SeedRepositoryOpener {
	return &seedRepositoryOpener{cfg: cfg}
}

func (o *seedRepositoryOpener) Open(ctx context.Context) (SeedRepository, error) {
	cfg := o.cfg
	cfg.DSN = cfg.SeedDSN

	conn, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao banco para o seed")
	}

	return NewSeedRepository(conn), nil
}

func (r *seedRepository) Close() error {
	return r.conn.Close()
}

func (r *seedRepository) ListTables(ctx context.Context) ([]string, error) {
	tablesSQL, tablesArgs, err := squirrel.
		Select("tablename").
		From("pg_tables").
		Where(squirrel.Eq{"schemaname": "public"}).
		OrderBy("tablename ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(ctx, tablesSQL, tablesArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tabelas: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return tables, nil
}

func (r *seedRepository) DropTable(ctx context.Context, table string) error {
	_, err := r.conn.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", pq.QuoteIdentifier(table)))
	if err != nil {
		return errors.Wrapf(err, "erro ao remover tabela %s", table)
	}
	return nil
}

func (r *seedRepository) EnsureUUIDExtension(ctx context.Context) error {
	return r.execDDL(ctx, "uuid-ossp", createUUIDExtensionSQL)
}

func (r *seedRepository) CreateUsersTable(ctx context.Context) error {
	return r.execDDL(ctx, usersTable, createUsersTableSQL)
}

func (r *seedRepository) CreateCustomersTable(ctx context.Context) error {
	return r.execDDL(ctx, customersTable, createCustomersTableSQL)
}

func (r *seedRepository) CreateInvoicesTable(ctx context.Context) error {
	return r.execDDL(ctx, invoicesTable, createInvoicesTableSQL)
}

func (r *seedRepository) CreateRevenueTable(ctx context.Context) error {
	return r.execDDL(ctx, revenueTable, createRevenueTableSQL)
}

func (r *seedRepository) execDDL(ctx context.Context, object, statement string) error {
	if _, err := r.conn.Exec(ctx, statement); err != nil {
		return errors.Wrapf(err, "erro ao criar %s", object)
	}
	return nil
}

func (r *seedRepository) InsertUser(ctx context.Context, user domain.User) (bool, error) {
	query := squirrel.
		Insert(usersTable).
		Columns("id", "name", "email", "password").
		Values(user.ID, user.Name, user.Email, user.Password).
		Suffix("ON CONFLICT (id) DO NOTHING")

	return r.insert(ctx, query)
}

func (r *seedRepository) InsertCustomer(ctx context.Context, customer domain.Customer) (bool, error) {
	query := squirrel.
		Insert(customersTable).
		Columns("id", "name", "email", "image_url").
		Values(customer.ID, customer.Name, customer.Email, customer.ImageURL).
		Suffix("ON CONFLICT (id) DO NOTHING")

	return r.insert(ctx, query)
}

// InsertInvoice grava a fatura como está; sem ID, o banco gera um novo
func (r *seedRepository) InsertInvoice(ctx context.Context, invoice domain.Invoice) (bool, error) {
	query := squirrel.Insert(invoicesTable)

	if invoice.ID != "" {
		query = query.
			Columns("id", "customer_id", "amount", "status", "date").
			Values(invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date)
	} else {
		query = query.
			Columns("customer_id", "amount", "status", "date").
			Values(invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date)
	}

	return r.insert(ctx, query.Suffix("ON CONFLICT (id) DO NOTHING"))
}

func (r *seedRepository) InsertRevenue(ctx context.Context, revenue domain.Revenue) (bool, error) {
	query := squirrel.
		Insert(revenueTable).
		Columns("month", "revenue").
		Values(revenue.Month, revenue.Revenue).
		Suffix("ON CONFLICT (month) DO NOTHING")

	return r.insert(ctx, query)
}

// insert retorna false quando a linha já existia (ON CONFLICT ou e-mail duplicado)
func (r *seedRepository) insert(ctx context.Context, query squirrel.InsertBuilder) (bool, error) {
	insertSQL, insertArgs, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(ctx, insertSQL, insertArgs...)
	if postgres.IsUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
