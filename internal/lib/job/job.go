// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued (producer) through asynq.Client
//   - a server runs workers that process them (consumer) through asynq.Server
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/visitor-log/internal/config"
	"github.com/deppfellow/visitor-log/internal/lib/email"
	"github.com/deppfellow/visitor-log/internal/model/visitor"
)

// visitorMailer sends the arrival email; *email.Client implements it.
type visitorMailer interface {
	SendVisitorArrivedEmail(ctx context.Context, to string, v visitor.Visitor) error
}

// QueueNotifications carries the visitor arrival emails. It is the only
// queue the worker pool serves.
const QueueNotifications = "notifications"

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server    *asynq.Server
	mailer    visitorMailer
	recipient string
	logger    *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis instance in cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueNotifications: 1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error().
					Err(err).
					Str("type", task.Type()).
					Msg("background task failed")
			}),
		},
	)

	return &JobService{
		Client:    asynq.NewClient(redisOpt),
		server:    server,
		mailer:    email.NewClient(cfg, logger),
		recipient: cfg.Notification.Recipient,
		logger:    logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskVisitorArrived, j.handleVisitorArrivedTask)
	return mux
}

// Start launches the worker pool in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}

	return nil
}

// Stop waits for running tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
