package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	base
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(
	db *gorm.DB,
	errorMapper *database.ErrorMapper,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	queryTimeout time.Duration,
) *TransactionRepository {
	return &TransactionRepository{base: newBase(db, errorMapper, timeProvider, logger, queryTimeout)}
}

func transactionToModel(tx *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:       tx.UserID,
		FromCurrency: tx.FromCurrency,
		ToCurrency:   tx.ToCurrency,
		Amount:       tx.Amount,
		Price:        tx.Price,
		ResultAmount: tx.ResultAmount,
		Status:       string(tx.Status),
		CreatedAt:    tx.CreatedAt,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		FromCurrency: m.FromCurrency,
		ToCurrency:   m.ToCurrency,
		Amount:       m.Amount,
		Price:        m.Price,
		ResultAmount: m.ResultAmount,
		Status:       entity.TransactionStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

func transactionsToEntities(rows []model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, transactionToEntity(&rows[i]))
	}
	return out
}

// ownedBy restricts a query to one user's rows
func ownedBy(userID uint64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Create saves a new transaction and writes the generated ID back to the entity
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	db, cancel := r.session(ctx)
	defer cancel()

	transactionModel := transactionToModel(transaction)
	if err := db.Omit(clause.Associations).Create(&transactionModel).Error; err != nil {
		return r.handleDatabaseError(err, database.EntityTypeTransaction, "create transaction", map[string]any{
			"user_id":       transaction.UserID,
			"from_currency": transaction.FromCurrency,
			"to_currency":   transaction.ToCurrency,
		})
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// List returns one page of the user's transactions, filtered by status when one is given
func (r *TransactionRepository) List(ctx context.Context, userID uint64, query entity.ListQuery) ([]*entity.Transaction, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = ownedBy(userID)(db)
		if query.Status != "" {
			db = db.Where("status = ?", query.Status)
		}
		return db
	}

	order := []clause.OrderByColumn{
		{Column: clause.Column{Name: string(entity.ParseSortField(string(query.Sort)))}, Desc: query.Order.Desc()},
		{Column: clause.Column{Name: "id"}, Desc: query.Order.Desc()},
	}

	return r.page(ctx, "list transactions", userID, filter, order, query.PageRequest)
}

// SearchByCurrency returns the user's transactions that have the currency on either side, newest first
func (r *TransactionRepository) SearchByCurrency(ctx context.Context, userID uint64, query entity.SearchQuery) ([]*entity.Transaction, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		return ownedBy(userID)(db).
			Where("LOWER(from_currency) = LOWER(?) OR LOWER(to_currency) = LOWER(?)", query.Currency, query.Currency)
	}

	order := []clause.OrderByColumn{
		{Column: clause.Column{Name: "created_at"}, Desc: true},
		{Column: clause.Column{Name: "id"}, Desc: true},
	}

	return r.page(ctx, "search transactions", userID, filter, order, query.PageRequest)
}

// page counts the filtered rows and then fetches one window of them
func (r *TransactionRepository) page(
	ctx context.Context,
	operation string,
	userID uint64,
	filter func(*gorm.DB) *gorm.DB,
	order []clause.OrderByColumn,
	req entity.PageRequest,
) ([]*entity.Transaction, int64, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var total int64
	if err := db.Model(&model.Transaction{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError(err, database.EntityTypeTransaction, operation, map[string]any{"user_id": userID})
	}
	if total == 0 {
		return []*entity.Transaction{}, 0, nil
	}

	var rows []model.Transaction
	err := db.Scopes(filter).
		Clauses(clause.OrderBy{Columns: order}).
		Limit(req.Limit).
		Offset(req.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError(err, database.EntityTypeTransaction, operation, map[string]any{"user_id": userID})
	}

	return transactionsToEntities(rows), total, nil
}

// GetByID retrieves one of the user's transactions
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var transactionModel model.Transaction
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&transactionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewTransactionNotFoundError("get", userID, id)
		}
		return nil, r.handleDatabaseError(err, database.EntityTypeTransaction, "get transaction", map[string]any{
			"transaction_id": id,
			"user_id":        userID,
		})
	}

	return transactionToEntity(&transactionModel), nil
}

// UpdateStatus overwrites the status of one of the user's transactions
func (r *TransactionRepository) UpdateStatus(ctx context.Context, userID, id uint64, status string) error {
	db, cancel := r.session(ctx)
	defer cancel()

	result := db.Model(&model.Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)

	if result.Error != nil {
		return r.handleDatabaseError(result.Error, database.EntityTypeTransaction, "update transaction", map[string]any{
			"transaction_id": id,
			"user_id":        userID,
		})
	}

	if result.RowsAffected == 0 {
		return errs.NewTransactionNotFoundError("update", userID, id)
	}
	return nil
}

// Delete removes one of the user's transactions
func (r *TransactionRepository) Delete(ctx context.Context, userID, id uint64) error {
	db, cancel := r.session(ctx)
	defer cancel()

	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Transaction{})

	if result.Error != nil {
		return r.handleDatabaseError(result.Error, database.EntityTypeTransaction, "delete transaction", map[string]any{
			"transaction_id": id,
			"user_id":        userID,
		})
	}

	if result.RowsAffected == 0 {
		return errs.NewTransactionNotFoundError("delete", userID, id)
	}
	return nil
}
