package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TaskEmployeeWelcome is sent once per newly created employee.
const TaskEmployeeWelcome = "email:employee_welcome"

type EmployeeWelcomePayload struct {
	To      string `json:"to"`
	Ime     string `json:"ime"`
	Priimek string `json:"priimek"`
	Polozaj string `json:"polozaj"`
}

func NewEmployeeWelcomeTask(p EmployeeWelcomePayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEmployeeWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueEmployeeWelcome builds and enqueues a TaskEmployeeWelcome.
func (j *JobService) EnqueueEmployeeWelcome(ctx context.Context, p EmployeeWelcomePayload) error {
	task, err := NewEmployeeWelcomeTask(p)
	if err != nil {
		return fmt.Errorf("failed to build welcome task: %w", err)
	}
	return j.Enqueue(ctx, task)
}

func (j *JobService) handleEmployeeWelcomeTask(_ context.Context, t *asynq.Task) error {
	var p EmployeeWelcomePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// a malformed payload will never succeed
		return fmt.Errorf("failed to unmarshal employee welcome payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().Str("type", TaskEmployeeWelcome).Str("to", p.To).Logger()
	log.Info().Msg("Processing employee welcome email task")

	if err := j.mailer.SendEmployeeWelcomeEmail(p.To, p.Ime, p.Priimek, p.Polozaj); err != nil {
		log.Error().Err(err).Msg("Failed to send employee welcome email")
		return err
	}

	log.Info().Msg("Successfully sent employee welcome email")
	return nil
}
