package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionTypeOnline  = "online"
	SessionTypeOffline = "offline"
)

// TimeCustom is the sentinel stored in Session.Time when the session uses
// free-form start/end times instead of one of the named slots.
const TimeCustom = "custom"

type Session struct {
	ID              uuid.UUID `db:"id" json:"id"`
	DayID           string    `db:"day_id" json:"day_id"`
	TrackID         uuid.UUID `db:"track_id" json:"track_id"`
	Title           string    `db:"title" json:"title"`
	Instructor      string    `db:"instructor" json:"instructor"`
	Type            string    `db:"type" json:"type"`
	Time            string    `db:"time" json:"time"`
	CustomStartTime *string   `db:"custom_start_time" json:"custom_start_time,omitempty"`
	CustomEndTime   *string   `db:"custom_end_time" json:"custom_end_time,omitempty"`
	Count           int       `db:"count" json:"count"`
	Total           int       `db:"total" json:"total"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
