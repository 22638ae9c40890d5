package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/nyashahama/bkw-backend/internal/config"
	"github.com/nyashahama/bkw-backend/internal/lib/email"
	"github.com/rs/zerolog"
)

func newTestJobService() *JobService {
	logger := zerolog.Nop()
	return &JobService{
		email:  email.NewClient(&config.Config{}, &logger),
		logger: &logger,
	}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("ada@example.com", "Ada")
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != TaskWelcome {
		t.Errorf("type: got %s", task.Type())
	}

	var p WelcomeEmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatal(err)
	}
	if p.To != "ada@example.com" || p.FullName != "Ada" {
		t.Errorf("payload: got %+v", p)
	}
}

func TestHandlersDeliverWithoutProvider(t *testing.T) {
	j := newTestJobService()
	mux := j.NewServeMux()

	welcome, _ := NewWelcomeEmailTask("ada@example.com", "Ada")
	booking, _ := NewBookingReceivedTask(BookingReceivedPayload{
		To: "vendor@example.com", VendorName: "Bo", ServiceTitle: "Catering", BookingID: 9,
	})

	for _, task := range []*asynq.Task{welcome, booking} {
		if err := mux.ProcessTask(context.Background(), task); err != nil {
			t.Errorf("%s: unexpected error: %v", task.Type(), err)
		}
	}
}

func TestHandlerSkipsRetryOnBadPayload(t *testing.T) {
	j := newTestJobService()

	err := j.NewServeMux().ProcessTask(context.Background(), asynq.NewTask(TaskBookingReceived, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}
