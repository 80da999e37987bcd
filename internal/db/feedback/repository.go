package feedback

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, feedback *Feedback) error
	ListRecent(ctx context.Context, limit int) ([]Feedback, error)
}

type FeedbackSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &FeedbackSQLRepository{db: db}
}

func (r *FeedbackSQLRepository) Create(ctx context.Context, feedback *Feedback) error {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackSQLRepository) ListRecent(ctx context.Context, limit int) ([]Feedback, error) {
	var items []Feedback
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
