package repository

import (
	"context"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// batchSize bounds the number of rows per INSERT statement.
const batchSize = 200

type MetricRepository interface {
	CreateBatch(ctx context.Context, records []domain.MetricRecord) error
	List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) ([]domain.MetricRecord, error)
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MetricRecord, error)
}

type metricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

// CreateBatch inserts all records in a single transaction.
func (r *metricRepository) CreateBatch(ctx context.Context, records []domain.MetricRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&records, batchSize).Error
	})
}

// List returns measurements newest first, one more than the page limit so callers can
// tell whether another page exists.
func (r *metricRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) ([]domain.MetricRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC")

	if filter.MetricType != "" {
		query = query.Where("metric_type = ?", filter.MetricType)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(timestamp < ?) OR (timestamp = ? AND id < ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.MetricRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByRange returns every measurement in [from, to] in chronological order.
func (r *metricRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MetricRecord, error) {
	var records []domain.MetricRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("timestamp >= ? AND timestamp <= ?", from, to).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
