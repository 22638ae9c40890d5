package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().Str("type", TaskWelcome).Str("to", p.To).Logger()
	log.Info().Msg("processing welcome email task")

	if err := j.email.SendWelcomeEmail(ctx, p.To, p.FullName); err != nil {
		log.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	log.Info().Msg("sent welcome email")
	return nil
}

func (j *JobService) handleBookingReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p BookingReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal booking received payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskBookingReceived).
		Str("to", p.To).
		Int64("booking_id", p.BookingID).
		Logger()
	log.Info().Msg("processing booking received task")

	err := j.email.SendBookingReceivedEmail(ctx, p.To, p.VendorName, p.ServiceTitle, p.SubcategoryName, p.BookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to send booking received email")
		return err
	}

	log.Info().Msg("sent booking received email")
	return nil
}
