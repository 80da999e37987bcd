package weatherquery

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogWeatherQuery(ctx context.Context, query *WeatherQuery) error
	GetRecentWeatherQueries(ctx context.Context, limit int) ([]WeatherQuery, error)
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

func (r *WeatherSQLRepository) LogWeatherQuery(ctx context.Context, query *WeatherQuery) error {
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(query).Error
}

func (r *WeatherSQLRepository) GetRecentWeatherQueries(ctx context.Context, limit int) ([]WeatherQuery, error) {
	var queries []WeatherQuery
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}
