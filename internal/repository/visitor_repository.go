package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hugely/internal/model"
)

// VisitorRepository defines visit persistence and counting.
type VisitorRepository interface {
	Create(ctx context.Context, visitor *model.Visitor) error
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountUpdatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository creates a new visitor repository.
func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) Create(ctx context.Context, visitor *model.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

func (r *visitorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).Count(&n).Error
	return n, err
}

func (r *visitorRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Where("created_at >= ?", since).
		Count(&n).Error
	return n, err
}

// CountUpdatedBetween counts rows whose update time lies in [from, to).
func (r *visitorRepository) CountUpdatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Where("updated_at >= ? AND updated_at < ?", from, to).
		Count(&n).Error
	return n, err
}
