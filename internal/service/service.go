// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// payloads from the handlers, performs the business operations and calls the
// repositories through the narrow interfaces declared here.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

const enqueueTimeout = 2 * time.Second

// enqueue hands a task to the job queue. Failures are logged and never
// reach the caller.
func enqueue(ctx context.Context, jobs TaskEnqueuer, task *asynq.Task, buildErr error) {
	if jobs == nil {
		return
	}

	logger := zerolog.Ctx(ctx)
	if buildErr != nil {
		logger.Error().Err(buildErr).Msg("failed to build background task")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	if _, err := jobs.EnqueueContext(ctx, task); err != nil {
		logger.Warn().Err(err).Str("task", task.Type()).Msg("failed to enqueue background task")
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
