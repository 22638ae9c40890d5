// Package job provides background job processing using Asynq.
//
// Handlers enqueue tasks through Client; the worker server pulls them from
// Redis and delivers the e-mails.
package job

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/nyashahama/bkw-backend/internal/config"
	"github.com/nyashahama/bkw-backend/internal/lib/email"
	"github.com/rs/zerolog"
)

// Queue names and their worker weights.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	email  *email.Client
	logger *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			QueueCritical: 6,
			QueueDefault:  3,
			QueueLow:      1,
		},
		Logger: &asynqLogger{logger: logger},
	})

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		email:  email.NewClient(cfg, logger),
		logger: logger,
	}
}

// NewServeMux routes every task type to its handler.
func (j *JobService) NewServeMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskBookingReceived, j.handleBookingReceivedTask)
	return mux
}

// Start launches the worker goroutines and returns.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.NewServeMux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger routes asynq's own logging through zerolog.
type asynqLogger struct {
	logger *zerolog.Logger
}

func (l *asynqLogger) Debug(args ...any) {
	l.logger.Debug().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...any) {
	l.logger.Info().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...any) {
	l.logger.Warn().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...any) {
	l.logger.Error().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...any) {
	l.logger.Fatal().Str("component", "asynq").Msg(fmt.Sprint(args...))
}
