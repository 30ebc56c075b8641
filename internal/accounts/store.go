package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Store is the persistence the signup service depends on.
type Store interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
}

// PostgresStore keeps accounts in the accounts table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE email=$1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query email: %w", err)
	}
	return exists, nil
}

// Insert stores a new account. A duplicate email is reported as ErrEmailTaken.
func (s *PostgresStore) Insert(ctx context.Context, a *Account) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO accounts (id,name,email,cpf,car_plate,is_passenger,is_driver,password,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.Name, a.Email, a.CPF, a.CarPlate, a.IsPassenger, a.IsDriver, a.Password, a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "accounts_email_key" {
			return fmt.Errorf("insert %s: %w", a.Email, ErrEmailTaken)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*Account, error) {
	var a Account
	err := s.db.QueryRow(ctx,
		`SELECT id,name,email,cpf,car_plate,is_passenger,is_driver,password,created_at
		 FROM accounts WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.Email, &a.CPF, &a.CarPlate,
			&a.IsPassenger, &a.IsDriver, &a.Password, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
