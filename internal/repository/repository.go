package repository

import (
	"context"
	"errors"
	"fmt"

	"txwatch/internal/core"
	"txwatch/internal/db"

	"github.com/google/uuid"
)

var ErrOperatorNotFound error = errors.New("operator not found")

type TransactionRepository struct {
	db Storage
}

func NewTransactionRepository(db Storage) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) Migrate() error {
	err := r.db.MigrateTable(&Transaction{}, &Operator{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, tx core.Transaction) error {
	records := []Transaction{fromCoreTransaction(tx)}
	err := r.db.Upsert(ctx, &records)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetAllTransactions(ctx context.Context) ([]core.Transaction, error) {
	var records []Transaction
	err := r.db.GetAll(ctx, "created_at, id", &records)
	if err != nil {
		return nil, fmt.Errorf("get all transactions: %w", err)
	}

	transactions := make([]core.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, record.toCore())
	}

	return transactions, nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	err := r.db.DeleteBy(ctx, "id", id, &Transaction{})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetOperator(ctx context.Context, username string) (Operator, error) {
	var operator Operator

	err := r.db.GetOneBy(ctx, "username", username, &operator)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Operator{}, ErrOperatorNotFound
		}
		return Operator{}, fmt.Errorf("get operator by username: %w", err)
	}

	return operator, nil
}

// SaveOperator creates the operator or replaces the password hash of an
// existing one, keeping its id.
func (r *TransactionRepository) SaveOperator(ctx context.Context, username, passwordHash string) (Operator, error) {
	operator, err := r.GetOperator(ctx, username)
	if err != nil {
		if !errors.Is(err, ErrOperatorNotFound) {
			return Operator{}, err
		}
		operator = Operator{
			ID:       uuid.NewString(),
			Username: username,
		}
	}
	operator.PasswordHash = passwordHash

	records := []Operator{operator}
	if err := r.db.Upsert(ctx, &records); err != nil {
		return Operator{}, fmt.Errorf("save operator: %w", err)
	}

	return operator, nil
}
