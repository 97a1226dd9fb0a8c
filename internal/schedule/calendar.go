package schedule

import "time"

// ViewDensity selects how many calendar days the grid shows.
type ViewDensity string

const (
	DensityWeek      ViewDensity = "week"
	DensityTwoWeeks  ViewDensity = "2weeks"
	DensityMonth     ViewDensity = "month"
	DensityTwoMonths ViewDensity = "2months"
)

// ParseDensity maps a density string to a known value. Unknown values
// (including the UI's "custom") fall back to the week view.
func ParseDensity(s string) ViewDensity {
	switch ViewDensity(s) {
	case DensityWeek, DensityTwoWeeks, DensityMonth, DensityTwoMonths:
		return ViewDensity(s)
	}
	return DensityWeek
}

// DayKeyFormat is the canonical date key joining sessions to grid cells.
const DayKeyFormat = "2006-01-02"

// Day is one grid cell descriptor, derived and never persisted. WeekNumber
// is set only on Saturdays, the week-start day.
type Day struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date"`
	FullDate   time.Time `json:"full_date"`
	IsFriday   bool      `json:"is_friday"`
	IsToday    bool      `json:"is_today"`
	WeekNumber *int      `json:"week_number,omitempty"`
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Saturday on or before t. The academic week runs
// Saturday through Friday.
func startOfWeek(t time.Time) time.Time {
	d := truncateToDay(t)
	offset := (int(d.Weekday()) - int(time.Saturday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// DensityBounds returns the inclusive [start, end] date range the grid shows
// for an anchor date and density.
func DensityBounds(anchor time.Time, density ViewDensity) (time.Time, time.Time) {
	switch density {
	case DensityTwoWeeks:
		start := startOfWeek(anchor)
		return start, start.AddDate(0, 0, 13)
	case DensityMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(0, 1, -1)
	case DensityTwoMonths:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(0, 2, -1)
	default:
		start := startOfWeek(anchor)
		return start, start.AddDate(0, 0, 6)
	}
}

// GenerateDays enumerates every calendar day between the density bounds in
// ascending order. now only feeds the IsToday flag, so callers inject it and
// tests stay deterministic.
func GenerateDays(anchor time.Time, density ViewDensity, now time.Time) []Day {
	start, end := DensityBounds(anchor, density)
	// compare day keys, not instants: anchor and now may carry different
	// locations (a UTC-parsed query param vs the server clock)
	todayKey := now.Format(DayKeyFormat)

	days := make([]Day, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		id := d.Format(DayKeyFormat)
		day := Day{
			ID:       id,
			Name:     d.Weekday().String(),
			Date:     d.Format("Jan 2"),
			FullDate: d,
			IsFriday: d.Weekday() == time.Friday,
			IsToday:  id == todayKey,
		}
		if d.Weekday() == time.Saturday {
			_, week := d.ISOWeek()
			day.WeekNumber = &week
		}
		days = append(days, day)
	}

	return days
}

// NextAnchor advances the anchor by one week for the week densities and one
// month for the month densities.
func NextAnchor(anchor time.Time, density ViewDensity) time.Time {
	if density == DensityMonth || density == DensityTwoMonths {
		return anchor.AddDate(0, 1, 0)
	}
	return anchor.AddDate(0, 0, 7)
}

// PrevAnchor is the inverse of NextAnchor.
func PrevAnchor(anchor time.Time, density ViewDensity) time.Time {
	if density == DensityMonth || density == DensityTwoMonths {
		return anchor.AddDate(0, -1, 0)
	}
	return anchor.AddDate(0, 0, -7)
}
