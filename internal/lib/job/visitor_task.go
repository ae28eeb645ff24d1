package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/visitor-log/internal/model/visitor"
)

// TaskVisitorArrived is the task type for the arrival email.
const TaskVisitorArrived = "visitor:arrived"

// VisitorArrivedPayload is stored in Redis as JSON.
type VisitorArrivedPayload struct {
	To      string          `json:"to"`
	Visitor visitor.Visitor `json:"visitor"`
}

// NewVisitorArrivedTask builds the arrival email task for recipient to.
func NewVisitorArrivedTask(to string, v visitor.Visitor) (*asynq.Task, error) {
	payload, err := json.Marshal(VisitorArrivedPayload{
		To:      to,
		Visitor: v,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TaskVisitorArrived, payload, visitorArrivedOptions()...), nil
}

func visitorArrivedOptions() []asynq.Option {
	return []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Queue(QueueNotifications),
		asynq.Timeout(30 * time.Second),
	}
}

// EnqueueVisitorArrived queues the arrival email for the configured recipient.
func (j *JobService) EnqueueVisitorArrived(ctx context.Context, v visitor.Visitor) error {
	task, err := NewVisitorArrivedTask(j.recipient, v)
	if err != nil {
		return fmt.Errorf("building %s task: %w", TaskVisitorArrived, err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueueing %s task: %w", TaskVisitorArrived, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("queued visitor arrival email")

	return nil
}

func (j *JobService) handleVisitorArrivedTask(ctx context.Context, t *asynq.Task) error {
	var p VisitorArrivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Malformed payloads never succeed on retry.
		return fmt.Errorf("failed to unmarshal visitor arrived payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskVisitorArrived).
		Str("to", p.To).
		Msg("Processing visitor arrived email task")

	if err := j.mailer.SendVisitorArrivedEmail(ctx, p.To, p.Visitor); err != nil {
		j.logger.Error().
			Str("type", TaskVisitorArrived).
			Str("to", p.To).
			Err(err).
			Msg("Failed to send visitor arrived email")
		return err
	}

	j.logger.Info().
		Str("type", TaskVisitorArrived).
		Str("to", p.To).
		Msg("Successfully sent visitor arrived email")

	return nil
}
