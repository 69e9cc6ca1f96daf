package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/entities"
	domainerrors "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/errors"
)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) deps.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// Create stores a new submission
func (r *feedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) error {
	if result := r.db.WithContext(ctx).Create(feedback); result.Error != nil {
		return fmt.Errorf("%w: %w", domainerrors.ErrDatabaseOperation, result.Error)
	}
	return nil
}
