package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "hugely/internal/errors"
	"hugely/internal/model"
)

// FeedBackRepository defines feedback persistence operations.
type FeedBackRepository interface {
	Create(ctx context.Context, feedback *model.FeedBack) error
	Delete(ctx context.Context, feedback *model.FeedBack) error
	FindByID(ctx context.Context, id uint) (*model.FeedBack, error)
	MarkReplied(ctx context.Context, id uint) error
	Paginate(ctx context.Context, keywords string, page int) (*Page[model.FeedBack], error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedBackRepository creates a new feedback repository.
func NewFeedBackRepository(db *gorm.DB) FeedBackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.FeedBack) error {
	if feedback.ReplyStatus == "" {
		feedback.ReplyStatus = model.ReplyStatusPending
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(feedback).Error
	})
}

func (r *feedbackRepository) Delete(ctx context.Context, feedback *model.FeedBack) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.FeedBack{}, feedback.ID).Error
	})
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uint) (*model.FeedBack, error) {
	var feedback model.FeedBack
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return nil, notFound(err, "feedback %d", id)
	}
	return &feedback, nil
}

// MarkReplied flips the reply status of one message to replied.
func (r *feedbackRepository) MarkReplied(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.FeedBack{}).
			Where("id = ?", id).
			Update("fb_whether_reply", model.ReplyStatusReplied)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("feedback %d: %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
}

// Paginate lists feedback newest first, filtered by content substring.
func (r *feedbackRepository) Paginate(ctx context.Context, keywords string, page int) (*Page[model.FeedBack], error) {
	return paginate[model.FeedBack](r.db.WithContext(ctx), page, PerPage,
		containing("fb_content", keywords),
		func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id DESC")
		},
	)
}
