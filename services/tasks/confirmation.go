package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"rane/models"
)

const TypeSendConfirmation = "booking:confirmation"

// NewConfirmationTask builds the task that notifies the user after a
// successful submit.
func NewConfirmationTask(payload models.BookingConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}
