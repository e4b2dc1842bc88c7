package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoices-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoices-api/internal/domain"
)

func newSeedRepositoryMock(t *testing.T) (SeedRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSeedRepository(postgres.Wrap(db)), mock
}

func TestSeedRepository_ListTables(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT tablename FROM pg_tables WHERE schemaname = $1 ORDER BY tablename ASC")).
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"tablename"}).AddRow("customers").AddRow("invoices"))

	tables, err := repo.ListTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"customers", "invoices"}, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepository_DropTable(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE IF EXISTS "Weird""Name" CASCADE`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE IF EXISTS "users" CASCADE`)).
		WillReturnError(errors.New("permission denied for table users"))

	assert.NoError(t, repo.DropTable(context.Background(), `Weird"Name`))

	err := repo.DropTable(context.Background(), "users")
	assert.ErrorContains(t, err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepository_CreateTables(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS customers`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS invoices(.|\n)*REFERENCES customers`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS revenue(.|\n)*month VARCHAR\(4\) NOT NULL UNIQUE`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureUUIDExtension(ctx))
	require.NoError(t, repo.CreateUsersTable(ctx))
	require.NoError(t, repo.CreateCustomersTable(ctx))
	require.NoError(t, repo.CreateInvoicesTable(ctx))
	require.NoError(t, repo.CreateRevenueTable(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepository_InsertUser(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)
	user := domain.User{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "$2a$10$hash",
	}

	mock.ExpectExec(`INSERT INTO users \(id,name,email,password\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(user.ID, user.Name, user.Email, user.Password).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO users .* ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(user.ID, user.Name, user.Email, user.Password).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.InsertUser(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertUser(context.Background(), user)
	require.NoError(t, err)
	assert.False(t, inserted, "conflito no id deve ser ignorado")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepository_InsertUser_DuplicateEmailIsSkipped(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)
	user := domain.User{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "$2a$10$hash",
	}

	mock.ExpectExec(`INSERT INTO users .* ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(user.ID, user.Name, user.Email, user.Password).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	inserted, err := repo.InsertUser(context.Background(), user)

	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepository_InsertInvoice(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)
	date := time.Date(2022, 12, 6, 0, 0, 0, 0, time.UTC)

	t.Run("sem ID deixa o banco gerar", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO invoices \(customer_id,amount,status,date\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(id\) DO NOTHING`).
			WithArgs("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", int64(15795), "pending", date).
			WillReturnResult(sqlmock.NewResult(0, 1))

		inserted, err := repo.InsertInvoice(context.Background(), domain.Invoice{
			CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
			Amount:     15795,
			Status:     domain.InvoiceStatusPending,
			Date:       date,
		})

		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("com ID informado", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO invoices \(id,customer_id,amount,status,date\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \(id\) DO NOTHING`).
			WithArgs("3958dc9e-712f-4377-85e9-fec4b6a6442a", "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", int64(250), "paid", date).
			WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := repo.InsertInvoice(context.Background(), domain.Invoice{
			ID:         "3958dc9e-712f-4377-85e9-fec4b6a6442a",
			CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
			Amount:     250,
			Status:     domain.InvoiceStatusPaid,
			Date:       date,
		})

		require.NoError(t, err)
		assert.False(t, inserted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepository_InsertRevenue(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)

	mock.ExpectExec(`INSERT INTO revenue \(month,revenue\) VALUES \(\$1,\$2\) ON CONFLICT \(month\) DO NOTHING`).
		WithArgs("Jan", int64(2000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.InsertRevenue(context.Background(), domain.Revenue{Month: "Jan", Revenue: 2000})

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepository_Close(t *testing.T) {
	repo, mock := newSeedRepositoryMock(t)

	mock.ExpectClose()

	assert.NoError(t, repo.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
