// Package job runs background work on asynq, a Redis-backed task queue.
// The API process both enqueues tasks and runs the worker.
package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/stroski-api/internal/config"
	"github.com/deppfellow/stroski-api/internal/lib/email"
)

// welcomeMailer is the part of email.Client the task handlers need.
type welcomeMailer interface {
	SendEmployeeWelcomeEmail(to, ime, priimek, polozaj string) error
}

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	mailer welcomeMailer
	logger *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   asynqLogger{logger: logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mailer: email.NewClient(cfg, logger),
		logger: logger,
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskEmployeeWelcome, j.handleEmployeeWelcomeTask)
	return mux
}

// Start launches the worker pool and returns once it is running.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.mux())
}

// Enqueue schedules task and logs the resulting task id.
func (j *JobService) Enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("type", info.Type).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("task enqueued")
	return nil
}

// Stop drains in-flight tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
