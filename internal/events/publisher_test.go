package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/events"
)

func TestChangeSubject(t *testing.T) {
	require.Equal(t, "schedule.sessions.changed", events.ChangeSubject(events.TableSessions))
	require.Equal(t, "schedule.track_groups.changed", events.ChangeSubject(events.TableTrackGroups))
}

func TestChangeEvent_Marshal(t *testing.T) {
	id := uuid.New()
	ev := events.ChangeEvent{
		EventType:  events.ChangeSubject(events.TableSessions),
		Table:      events.TableSessions,
		Action:     events.ActionCreated,
		RecordID:   id,
		OccurredAt: time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "schedule.sessions.changed", decoded["event_type"])
	require.Equal(t, "created", decoded["action"])
	require.Equal(t, id.String(), decoded["record_id"])
}
