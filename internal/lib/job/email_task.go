package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome         = "email:welcome"
	TaskBookingReceived = "email:booking_received"
)

type WelcomeEmailPayload struct {
	To       string `json:"to"`
	FullName string `json:"full_name"`
}

func NewWelcomeEmailTask(to, fullName string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		FullName: fullName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}

// BookingReceivedPayload notifies the vendor who owns the booked service.
type BookingReceivedPayload struct {
	To              string `json:"to"`
	VendorName      string `json:"vendor_name"`
	ServiceTitle    string `json:"service_title"`
	SubcategoryName string `json:"subcategory_name"`
	BookingID       int64  `json:"booking_id"`
}

func NewBookingReceivedTask(p BookingReceivedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskBookingReceived,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(QueueCritical),
		asynq.Timeout(30*time.Second),
	), nil
}
