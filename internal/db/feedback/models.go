package feedback

import "time"

type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_feedback_created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
