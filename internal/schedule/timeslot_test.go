package schedule_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/schedule"
)

func strPtr(s string) *string { return &s }

func customSession(instructor, dayID string, trackID uuid.UUID, start, end string) model.Session {
	return model.Session{
		ID:              uuid.New(),
		DayID:           dayID,
		TrackID:         trackID,
		Instructor:      instructor,
		Time:            model.TimeCustom,
		CustomStartTime: strPtr(start),
		CustomEndTime:   strPtr(end),
	}
}

func namedSession(instructor, dayID string, trackID uuid.UUID, slot string) model.Session {
	return model.Session{
		ID:         uuid.New(),
		DayID:      dayID,
		TrackID:    trackID,
		Instructor: instructor,
		Time:       slot,
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		token string
		want  int
	}{
		{"9am", 540},
		{"12pm", 720},
		{"12am", 0},
		{"1am", 60},
		{"11am", 660},
		{"1pm", 780},
		{"3:45pm", 945},
		{"11pm", 1380},
		{"00:00", 0},
		{"09:30", 570},
		{"13:00", 780},
		{"23:59", 1439},
		{" 9AM ", 540},
	}
	for _, tc := range cases {
		got, err := schedule.ParseTimeToMinutes(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		require.Equal(t, tc.want, got, "token %q", tc.token)
	}

	for _, bad := range []string{"", "am", "25:00", "13pm", "0pm", "abc", "9:75am", "9:?0"} {
		_, err := schedule.ParseTimeToMinutes(bad)
		require.Error(t, err, "token %q should not parse", bad)
	}
}

func TestParseTimeToMinutes_MidnightEdge(t *testing.T) {
	start, err := schedule.ParseTimeToMinutes("12am")
	require.NoError(t, err)
	end, err := schedule.ParseTimeToMinutes("1am")
	require.NoError(t, err)
	require.Equal(t, 0, start)
	require.Equal(t, 60, end)
}

func TestSlotsOverlap(t *testing.T) {
	morning := schedule.TimeSlot{StartTime: "9am", EndTime: "12pm"}

	// 11:00 < 12:00 and 13:00 > 9:00
	require.True(t, schedule.SlotsOverlap(morning, schedule.TimeSlot{StartTime: "11am", EndTime: "1pm"}))

	// adjacent slots touch but do not intersect under [start, end)
	require.False(t, schedule.SlotsOverlap(morning, schedule.TimeSlot{StartTime: "1pm", EndTime: "3:45pm"}))

	// mixed representations compare through one parser
	require.True(t, schedule.SlotsOverlap(morning, schedule.TimeSlot{StartTime: "09:30", EndTime: "10:30"}))
	require.False(t, schedule.SlotsOverlap(morning, schedule.TimeSlot{StartTime: "13:00", EndTime: "15:00"}))

	// malformed endpoints fail closed
	require.True(t, schedule.SlotsOverlap(morning, schedule.TimeSlot{StartTime: "garbage", EndTime: "10:00"}))
}

func TestSessionTimeSlot(t *testing.T) {
	trackID := uuid.New()

	s := customSession("Jane Doe", "2024-09-07", trackID, "09:30", "10:30")
	require.Equal(t, schedule.TimeSlot{StartTime: "09:30", EndTime: "10:30"}, schedule.SessionTimeSlot(s))

	s = namedSession("Jane Doe", "2024-09-07", trackID, schedule.SlotAfternoon)
	require.Equal(t, schedule.TimeSlot{StartTime: "1pm", EndTime: "3:45pm"}, schedule.SessionTimeSlot(s))

	// custom without an end time falls back to the default slot
	s = customSession("Jane Doe", "2024-09-07", trackID, "09:30", "10:30")
	s.CustomEndTime = nil
	require.Equal(t, schedule.TimeSlot{StartTime: "9am", EndTime: "12pm"}, schedule.SessionTimeSlot(s))

	// unrecognized time string falls back as well
	s = namedSession("Jane Doe", "2024-09-07", trackID, "whenever")
	require.Equal(t, schedule.TimeSlot{StartTime: "9am", EndTime: "12pm"}, schedule.SessionTimeSlot(s))
}

func TestSessionTimeSlot_UnknownHyphenatedTime(t *testing.T) {
	track1 := uuid.New()
	track2 := uuid.New()

	// a hyphenated string outside the named slots is not split into tokens;
	// it resolves to the default slot like any other unrecognized value
	broken := namedSession("Jane Doe", "2024-09-07", track1, "foo-bar")
	require.Equal(t, schedule.TimeSlot{StartTime: "9am", EndTime: "12pm"}, schedule.SessionTimeSlot(broken))

	// the stored row only blocks the slot it resolves to, not the whole day
	afternoon := customSession("Jane Doe", "2024-09-07", track2, "13:00", "15:00")
	require.False(t, schedule.CheckSessionOverlap([]model.Session{broken}, afternoon, uuid.Nil))

	morning := customSession("Jane Doe", "2024-09-07", track2, "09:30", "10:30")
	require.True(t, schedule.CheckSessionOverlap([]model.Session{broken}, morning, uuid.Nil))
}

func TestCheckSessionOverlap(t *testing.T) {
	track1 := uuid.New()
	track2 := uuid.New()

	existing := namedSession("Jane Doe", "2024-09-07", track1, schedule.SlotMorning)
	sessions := []model.Session{existing}

	// same instructor, same day, any track, 09:30-10:30 inside 9am-12pm
	candidate := customSession("Jane Doe", "2024-09-07", track2, "09:30", "10:30")
	require.True(t, schedule.CheckSessionOverlap(sessions, candidate, uuid.Nil))

	// afternoon custom slot does not collide
	candidate = customSession("Jane Doe", "2024-09-07", track2, "13:00", "15:00")
	require.False(t, schedule.CheckSessionOverlap(sessions, candidate, uuid.Nil))

	// different day never conflicts
	candidate = customSession("Jane Doe", "2024-09-08", track2, "09:30", "10:30")
	require.False(t, schedule.CheckSessionOverlap(sessions, candidate, uuid.Nil))

	// different instructor never conflicts
	candidate = customSession("John Roe", "2024-09-07", track2, "09:30", "10:30")
	require.False(t, schedule.CheckSessionOverlap(sessions, candidate, uuid.Nil))

	// surrounding whitespace in the stored name still matches
	padded := existing
	padded.Instructor = "  Jane Doe "
	candidate = customSession("Jane Doe", "2024-09-07", track2, "09:30", "10:30")
	require.True(t, schedule.CheckSessionOverlap([]model.Session{padded}, candidate, uuid.Nil))
}

func TestCheckSessionOverlap_SelfExclusion(t *testing.T) {
	track1 := uuid.New()
	existing := namedSession("Jane Doe", "2024-09-07", track1, schedule.SlotMorning)

	// editing a session against a set containing only itself is not a conflict
	require.False(t, schedule.CheckSessionOverlap([]model.Session{existing}, existing, existing.ID))

	// without the exclusion the stored row collides with its own edit
	edited := existing
	edited.ID = uuid.Nil
	require.True(t, schedule.CheckSessionOverlap([]model.Session{existing}, edited, uuid.Nil))
}

func TestOccupiedTimeSlots(t *testing.T) {
	track1 := uuid.New()
	track2 := uuid.New()

	sessions := []model.Session{
		namedSession("Jane Doe", "2024-09-07", track1, schedule.SlotMorning),
		customSession("John Roe", "2024-09-07", track1, "16:00", "18:00"),
		namedSession("Jane Doe", "2024-09-07", track2, schedule.SlotAfternoon),
		namedSession("Jane Doe", "2024-09-08", track1, schedule.SlotAfternoon),
	}

	slots := schedule.OccupiedTimeSlots(sessions, "2024-09-07", track1)
	require.Len(t, slots, 2)
	require.Equal(t, schedule.TimeSlot{StartTime: "9am", EndTime: "12pm"}, slots[0])
	require.Equal(t, schedule.TimeSlot{StartTime: "16:00", EndTime: "18:00"}, slots[1])

	require.Empty(t, schedule.OccupiedTimeSlots(sessions, "2024-09-09", track1))
}

func TestSameSlotOtherTrack(t *testing.T) {
	track1 := uuid.New()
	track2 := uuid.New()

	a := namedSession("Jane Doe", "2024-09-07", track1, schedule.SlotMorning)
	b := namedSession("Jane Doe", "2024-09-07", track2, schedule.SlotMorning)
	c := namedSession("Jane Doe", "2024-09-07", track2, schedule.SlotAfternoon)

	require.True(t, schedule.SameSlotOtherTrack([]model.Session{a, b}, a))
	require.False(t, schedule.SameSlotOtherTrack([]model.Session{a, c}, a))
	// same track does not highlight
	require.False(t, schedule.SameSlotOtherTrack([]model.Session{a}, a))
}

func TestValidateCustomTimes(t *testing.T) {
	trackID := uuid.New()

	ok := customSession("Jane Doe", "2024-09-07", trackID, "09:30", "10:30")
	require.NoError(t, schedule.ValidateCustomTimes(ok))

	named := namedSession("Jane Doe", "2024-09-07", trackID, schedule.SlotMorning)
	require.NoError(t, schedule.ValidateCustomTimes(named))

	missing := customSession("Jane Doe", "2024-09-07", trackID, "09:30", "10:30")
	missing.CustomEndTime = nil
	require.Error(t, schedule.ValidateCustomTimes(missing))

	inverted := customSession("Jane Doe", "2024-09-07", trackID, "11:00", "10:00")
	require.Error(t, schedule.ValidateCustomTimes(inverted))

	malformed := customSession("Jane Doe", "2024-09-07", trackID, "soon", "10:00")
	require.Error(t, schedule.ValidateCustomTimes(malformed))
}
