package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Table names carried in change events. Clients subscribe per table and
// re-fetch the whole collection on any change.
const (
	TableSessions    = "sessions"
	TableTracks      = "tracks"
	TableTrackGroups = "track_groups"
	TableCourses     = "courses"
	TableInstructors = "instructors"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// DLQSubject receives change events the subscriber could not persist.
const DLQSubject = "schedule.change.failed"

// ChangeSubject returns the NATS subject for one table's change feed.
func ChangeSubject(table string) string {
	return fmt.Sprintf("schedule.%s.changed", table)
}

type ChangeEvent struct {
	EventType  string    `json:"event_type"`
	Table      string    `json:"table"`
	Action     string    `json:"action"`
	RecordID   uuid.UUID `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishChange(table, action string, recordID uuid.UUID) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

func (p *NatsPublisher) PublishChange(table, action string, recordID uuid.UUID) error {
	subject := ChangeSubject(table)

	event := ChangeEvent{
		EventType:  subject,
		Table:      table,
		Action:     action,
		RecordID:   recordID,
		OccurredAt: time.Now(),
	}

	eventJSON, err := json.Marshal(event)

	if err != nil {
		log.Printf("Error marshalling change event JSON: %v", err)
		return err
	}

	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	return nil
}
