package business

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/dto"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/entities"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// UseCase implements contact form submission
type UseCase struct {
	repo      deps.FeedbackRepository
	publisher deps.EventPublisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewUseCase creates a new feedback use case
func NewUseCase(
	repo deps.FeedbackRepository,
	publisher deps.EventPublisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With().Str("usecase", "feedback").Logger(),
	}
}

// Submit validates, stores and announces a submission. The stored row is
// authoritative: a failed announcement does not fail the submission.
func (u *UseCase) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*entities.Feedback, error) {
	normalizeRequest(req)

	if err := validateRequest(req); err != nil {
		u.metrics.RecordFeedbackError("validation")
		return nil, err
	}

	feedback := &entities.Feedback{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		Message:    req.Message,
		Status:     entities.StatusReceived,
	}

	if err := u.repo.Create(ctx, feedback); err != nil {
		u.logger.Error().Err(err).
			Str("department", req.Department).
			Msg("Failed to store feedback")
		u.metrics.RecordFeedbackError("database")
		return nil, err
	}

	u.metrics.RecordFeedback()

	if err := u.publisher.SendFeedbackReceived(ctx, feedback.ID, feedback.Department, feedback.Email); err != nil {
		u.logger.Warn().Err(err).
			Uint("feedback_id", feedback.ID).
			Msg("Failed to publish feedback event")
		u.metrics.RecordFeedbackError("publish")
	}

	u.logger.Info().
		Uint("feedback_id", feedback.ID).
		Str("department", feedback.Department).
		Msg("Feedback received")

	return feedback, nil
}
