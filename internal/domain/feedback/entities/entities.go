package entities

import "time"

// StatusReceived is the initial status of every submission
const StatusReceived = "received"

// Feedback is a resident message sent through the contact form
type Feedback struct {
	ID         uint      `gorm:"primaryKey" db:"id" json:"id"`
	FirstName  string    `gorm:"not null" db:"first_name" json:"firstName"`
	LastName   string    `gorm:"not null" db:"last_name" json:"lastName"`
	Email      string    `gorm:"not null;index" db:"email" json:"email"`
	Department string    `gorm:"not null;index" db:"department" json:"department"`
	Message    string    `gorm:"type:text;not null" db:"message" json:"message"`
	Status     string    `gorm:"not null;default:received" db:"status" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" db:"updated_at" json:"updatedAt"`
}

// TableName returns the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
