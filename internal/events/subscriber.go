package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
)

const (
	maxRetries    = 3
	retryDelaySec = 2
)

// ChangeLogSubscriber consumes every table's change feed and appends the
// mutations to the change_log audit table.
type ChangeLogSubscriber struct {
	natsConn *nats.Conn
	logRepo  repository.ChangeLogRepository
}

func NewChangeLogSubscriber(natsURL string, logRepo repository.ChangeLogRepository) (*ChangeLogSubscriber, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, err
	}
	log.Println("Change-log subscriber connected to NATS.")

	subscriber := &ChangeLogSubscriber{
		natsConn: nc,
		logRepo:  logRepo,
	}

	subscriber.subscribeToChanges()

	return subscriber, nil
}

func (s *ChangeLogSubscriber) subscribeToChanges() {
	_, err := s.natsConn.Subscribe("schedule.*.changed", func(msg *nats.Msg) {
		var event ChangeEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Failed to unmarshal change event: %v", err)
			return
		}

		entry := &repository.ChangeLogEntry{
			TableName:  event.Table,
			Action:     event.Action,
			RecordID:   event.RecordID,
			OccurredAt: event.OccurredAt,
		}

		var saveErr error
		for attempt := 1; attempt <= maxRetries; attempt++ {
			saveErr = s.logRepo.Append(context.Background(), entry)
			if saveErr == nil {
				return
			}

			log.Printf("Failed appending change log (attempt %d): %v. Retrying in %d seconds...", attempt, saveErr, retryDelaySec)
			time.Sleep(time.Second * retryDelaySec)
		}

		log.Printf("Giving up on change-log entry for %s/%s after %d attempts. Last error: %v", event.Table, event.RecordID, maxRetries, saveErr)

		if err := s.natsConn.Publish(DLQSubject, msg.Data); err != nil {
			log.Printf("Failed to publish to DLQ '%s': %v", DLQSubject, err)
		} else {
			log.Printf("Published dropped change event to DLQ '%s'", DLQSubject)
		}
	})
	if err != nil {
		log.Printf("Failed to subscribe to change events: %v", err)
	} else {
		log.Println("Change-log subscriber listening on schedule.*.changed")
	}
}
