package deps

import (
	"context"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/dto"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/entities"
)

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	// Create stores a new submission and fills its ID and timestamps
	Create(ctx context.Context, feedback *entities.Feedback) error
}

// EventPublisher defines interface for sending feedback events to Kafka
type EventPublisher interface {
	// SendFeedbackReceived announces a stored submission
	SendFeedbackReceived(ctx context.Context, feedbackID uint, department, email string) error
}

// FeedbackService defines contact form operations
type FeedbackService interface {
	// Submit validates and stores a contact form submission
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*entities.Feedback, error)
}
