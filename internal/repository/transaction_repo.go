package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/utils/pagination"
)

// TransactionRepository provides access to the append-only XP ledger.
// Rows are only ever inserted; there is no update or delete path.
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new repository bound to the given DB connection.
func NewTransactionRepository(database *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: database}
}

// Create appends one ledger entry. CreatedAt is kept when already set, which
// lets replayed entries keep their original time.
func (r *TransactionRepository) Create(ctx context.Context, tx *db.XPTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// ListByUser returns a user's entries newest-first.
//
// Behavior:
//   - Ordered by id DESC, which is insertion order. created_at is not used
//     for paging since its stored precision differs between drivers.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListByUser(ctx, "u-1", "", 10) // ten most recent grants
func (r *TransactionRepository) ListByUser(
	ctx context.Context,
	userID string,
	paginationToken string,
	limit int,
) ([]db.XPTransaction, *string, error) {
	var rows []db.XPTransaction

	cursor, err := pagination.Decode(paginationToken)
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.IsZero() {
		query = query.Where("id < ?", cursor.ID)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(rows) > limit {
		last := rows[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{ID: last.ID})
		nextToken = &token
		rows = rows[:limit]
	}

	return rows, nextToken, nil
}

// CountByUser returns the number of ledger entries of a user.
func (r *TransactionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.XPTransaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// SumByUser totals the XP recorded in a user's ledger.
func (r *TransactionRepository) SumByUser(ctx context.Context, userID string) (int, error) {
	var sum int
	err := r.db.WithContext(ctx).
		Model(&db.XPTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(xp_amount), 0)").
		Scan(&sum).Error
	return sum, err
}
