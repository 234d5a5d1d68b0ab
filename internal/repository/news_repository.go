package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hugely/internal/model"
)

// NewsRepository defines news persistence operations.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	Update(ctx context.Context, news *model.News) error
	Delete(ctx context.Context, news *model.News) error
	FindByID(ctx context.Context, id uint) (*model.News, error)
	Paginate(ctx context.Context, keywords string, page int) (*Page[model.News], error)
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create inserts a news item in its own transaction.
func (r *newsRepository) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(news).Error
	})
}

// Update overwrites every column of an existing news item.
func (r *newsRepository) Update(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(news).Error
	})
}

// Delete removes a news item permanently.
func (r *newsRepository) Delete(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.News{}, news.ID).Error
	})
}

// FindByID finds a news item and its owner.
func (r *newsRepository) FindByID(ctx context.Context, id uint) (*model.News, error) {
	var news model.News
	if err := r.db.WithContext(ctx).Preload("User").First(&news, id).Error; err != nil {
		return nil, notFound(err, "news %d", id)
	}
	return &news, nil
}

// Paginate lists news newest first, filtered by title substring.
func (r *newsRepository) Paginate(ctx context.Context, keywords string, page int) (*Page[model.News], error) {
	return paginate[model.News](r.db.WithContext(ctx), page, PerPage,
		containing("title", keywords),
		func(db *gorm.DB) *gorm.DB {
			return db.Preload("User").Order("created_at DESC").Order("id DESC")
		},
	)
}
