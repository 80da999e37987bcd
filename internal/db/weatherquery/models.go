package weatherquery

import (
	"time"
)

// WeatherQuery is one home screen activation whose weather resolved.
type WeatherQuery struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Latitude    float64   `json:"latitude" gorm:"column:latitude"`
	Longitude   float64   `json:"longitude" gorm:"column:longitude"`
	Place       string    `json:"place" gorm:"index:idx_place"`
	Temperature float64   `json:"temperature" gorm:"column:temperature"`
	WeatherCode int       `json:"weather_code" gorm:"column:weather_code"`
	Condition   string    `json:"condition" gorm:"column:condition"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
