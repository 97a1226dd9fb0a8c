package schedule

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
)

// The three named slots offered by the add-session form.
const (
	SlotMorning   = "9am-12pm"
	SlotAfternoon = "1pm-3:45pm"
	SlotEvening   = "4pm-6:45pm"
)

// NamedSlots lists the fixed slots in display order.
var NamedSlots = []string{SlotMorning, SlotAfternoon, SlotEvening}

// TimeSlot is a derived start/end pair, never persisted. StartTime and
// EndTime are either 12-hour tokens ("9am", "3:45pm") for named slots or
// 24-hour "HH:MM" strings for custom sessions.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

var defaultSlot = TimeSlot{StartTime: "9am", EndTime: "12pm"}

// SessionTimeSlot resolves a session's stored time fields into a TimeSlot.
// Only the three named slots are split on their hyphen; any other time
// string falls back to the default morning slot, so a malformed row resolves
// deterministically instead of producing unparseable tokens. A custom
// session missing either bound falls back the same way; the service layer
// rejects such sessions before they are saved, so the fallback only applies
// to legacy rows.
func SessionTimeSlot(s model.Session) TimeSlot {
	if s.Time == model.TimeCustom {
		if s.CustomStartTime != nil && *s.CustomStartTime != "" &&
			s.CustomEndTime != nil && *s.CustomEndTime != "" {
			return TimeSlot{StartTime: *s.CustomStartTime, EndTime: *s.CustomEndTime}
		}
		return defaultSlot
	}
	if slices.Contains(NamedSlots, s.Time) {
		start, end, _ := strings.Cut(s.Time, "-")
		return TimeSlot{StartTime: start, EndTime: end}
	}
	return defaultSlot
}

// ParseTimeToMinutes converts a time token into minutes since midnight.
// It accepts both representations that reach the comparator: 12-hour tokens
// with an am/pm suffix ("9am", "3:45pm", "12pm") and 24-hour "HH:MM"
// strings. 12am maps to 0 and 12pm to 720.
func ParseTimeToMinutes(token string) (int, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return 0, fmt.Errorf("empty time token")
	}

	var meridiem string
	if strings.HasSuffix(t, "am") || strings.HasSuffix(t, "pm") {
		meridiem = t[len(t)-2:]
		t = t[:len(t)-2]
	}

	hourStr, minStr, hasMinute := strings.Cut(t, ":")
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in time token %q", token)
	}

	minute := 0
	if hasMinute {
		minute, err = strconv.Atoi(minStr)
		if err != nil {
			return 0, fmt.Errorf("invalid minute in time token %q", token)
		}
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in time token %q", token)
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in time token %q", token)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in time token %q", token)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("hour out of range in time token %q", token)
		}
	}

	return hour*60 + minute, nil
}

// SlotsOverlap reports whether two half-open [start, end) intervals
// intersect, so back-to-back slots do not conflict. An endpoint that fails
// to parse counts as overlapping: malformed data blocks a save rather than
// slipping past the gate.
func SlotsOverlap(a, b TimeSlot) bool {
	aStart, err := ParseTimeToMinutes(a.StartTime)
	if err != nil {
		return true
	}
	aEnd, err := ParseTimeToMinutes(a.EndTime)
	if err != nil {
		return true
	}
	bStart, err := ParseTimeToMinutes(b.StartTime)
	if err != nil {
		return true
	}
	bEnd, err := ParseTimeToMinutes(b.EndTime)
	if err != nil {
		return true
	}

	return aStart < bEnd && aEnd > bStart
}

// CheckSessionOverlap reports whether the candidate would double-book its
// instructor at an overlapping time on the same day. excludeID lets an edit
// ignore its own stored row; pass uuid.Nil for creates. Instructor names are
// compared after trimming surrounding whitespace.
func CheckSessionOverlap(sessions []model.Session, candidate model.Session, excludeID uuid.UUID) bool {
	candidateSlot := SessionTimeSlot(candidate)
	instructor := strings.TrimSpace(candidate.Instructor)

	for _, s := range sessions {
		if s.ID == excludeID {
			continue
		}
		if s.DayID != candidate.DayID {
			continue
		}
		if strings.TrimSpace(s.Instructor) != instructor {
			continue
		}
		if SlotsOverlap(SessionTimeSlot(s), candidateSlot) {
			return true
		}
	}

	return false
}

// OccupiedTimeSlots returns the slots already taken in one day+track cell,
// used by the add-session form to disable taken named slots.
func OccupiedTimeSlots(sessions []model.Session, dayID string, trackID uuid.UUID) []TimeSlot {
	slots := []TimeSlot{}
	for _, s := range sessions {
		if s.DayID == dayID && s.TrackID == trackID {
			slots = append(slots, SessionTimeSlot(s))
		}
	}
	return slots
}

// SameSlotOtherTrack reports whether the instructor teaches the identical
// time string on another track the same day. This is the loose display-only
// highlight used by the grid renderer; CheckSessionOverlap remains the
// authoritative gate.
func SameSlotOtherTrack(sessions []model.Session, s model.Session) bool {
	instructor := strings.TrimSpace(s.Instructor)
	for _, other := range sessions {
		if other.ID == s.ID || other.DayID != s.DayID || other.TrackID == s.TrackID {
			continue
		}
		if strings.TrimSpace(other.Instructor) == instructor && other.Time == s.Time {
			return true
		}
	}
	return false
}

// ValidateCustomTimes checks that a custom session carries both bounds,
// that each parses, and that start precedes end. Named-slot sessions pass
// unchanged.
func ValidateCustomTimes(s model.Session) error {
	if s.Time != model.TimeCustom {
		return nil
	}
	if s.CustomStartTime == nil || *s.CustomStartTime == "" ||
		s.CustomEndTime == nil || *s.CustomEndTime == "" {
		return fmt.Errorf("custom session requires both start and end times")
	}
	start, err := ParseTimeToMinutes(*s.CustomStartTime)
	if err != nil {
		return err
	}
	end, err := ParseTimeToMinutes(*s.CustomEndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("custom start time %q must be before end time %q", *s.CustomStartTime, *s.CustomEndTime)
	}
	return nil
}
