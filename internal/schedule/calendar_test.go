package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDays_Week(t *testing.T) {
	// Wednesday anchor; the week runs from the previous Saturday
	anchor := date(2024, time.September, 4)
	days := schedule.GenerateDays(anchor, schedule.DensityWeek, anchor)

	require.Len(t, days, 7)
	require.Equal(t, "2024-08-31", days[0].ID)
	require.Equal(t, time.Saturday, days[0].FullDate.Weekday())
	require.Equal(t, "2024-09-06", days[6].ID)
	require.Equal(t, time.Friday, days[6].FullDate.Weekday())

	for i, d := range days {
		require.Equal(t, i == 6, d.IsFriday, "day %s", d.ID)
	}

	require.NotNil(t, days[0].WeekNumber)
	require.Equal(t, 35, *days[0].WeekNumber)
	for _, d := range days[1:] {
		require.Nil(t, d.WeekNumber, "day %s", d.ID)
	}
}

func TestGenerateDays_WeekAnchoredOnSaturday(t *testing.T) {
	anchor := date(2024, time.September, 7)
	days := schedule.GenerateDays(anchor, schedule.DensityWeek, anchor)

	require.Len(t, days, 7)
	require.Equal(t, "2024-09-07", days[0].ID)
	require.Equal(t, "2024-09-13", days[6].ID)
}

func TestGenerateDays_TwoWeeks(t *testing.T) {
	anchor := date(2024, time.September, 4)
	days := schedule.GenerateDays(anchor, schedule.DensityTwoWeeks, anchor)

	require.Len(t, days, 14)
	require.Equal(t, "2024-08-31", days[0].ID)
	require.Equal(t, "2024-09-13", days[13].ID)

	var numbered []string
	for _, d := range days {
		if d.WeekNumber != nil {
			numbered = append(numbered, d.ID)
			require.Equal(t, time.Saturday, d.FullDate.Weekday())
		}
	}
	require.Equal(t, []string{"2024-08-31", "2024-09-07"}, numbered)
}

func TestGenerateDays_Month(t *testing.T) {
	anchor := date(2024, time.September, 17)
	days := schedule.GenerateDays(anchor, schedule.DensityMonth, anchor)

	require.Len(t, days, 30)
	require.Equal(t, "2024-09-01", days[0].ID)
	require.Equal(t, "2024-09-30", days[29].ID)

	// leap February
	days = schedule.GenerateDays(date(2024, time.February, 10), schedule.DensityMonth, anchor)
	require.Len(t, days, 29)
}

func TestGenerateDays_TwoMonths(t *testing.T) {
	anchor := date(2024, time.September, 17)
	days := schedule.GenerateDays(anchor, schedule.DensityTwoMonths, anchor)

	require.Len(t, days, 61)
	require.Equal(t, "2024-09-01", days[0].ID)
	require.Equal(t, "2024-10-31", days[60].ID)
}

func TestGenerateDays_Idempotent(t *testing.T) {
	anchor := date(2024, time.September, 4)
	now := date(2024, time.September, 5)
	first := schedule.GenerateDays(anchor, schedule.DensityTwoWeeks, now)
	second := schedule.GenerateDays(anchor, schedule.DensityTwoWeeks, now)
	require.Equal(t, first, second)
}

func TestGenerateDays_IsToday(t *testing.T) {
	anchor := date(2024, time.September, 4)
	now := time.Date(2024, time.September, 5, 14, 30, 0, 0, time.UTC)
	days := schedule.GenerateDays(anchor, schedule.DensityWeek, now)

	for _, d := range days {
		require.Equal(t, d.ID == "2024-09-05", d.IsToday, "day %s", d.ID)
	}
}

func TestGenerateDays_IsTodayAcrossTimezones(t *testing.T) {
	// anchors arrive as UTC-parsed date keys while now carries the server
	// zone; the flag must still land on the matching calendar day
	anchor := date(2024, time.September, 4)
	cairo := time.FixedZone("EET", 2*60*60)
	now := time.Date(2024, time.September, 4, 14, 30, 0, 0, cairo)

	days := schedule.GenerateDays(anchor, schedule.DensityWeek, now)
	for _, d := range days {
		require.Equal(t, d.ID == "2024-09-04", d.IsToday, "day %s", d.ID)
	}
}

func TestParseDensity_FallsBackToWeek(t *testing.T) {
	require.Equal(t, schedule.DensityWeek, schedule.ParseDensity("custom"))
	require.Equal(t, schedule.DensityWeek, schedule.ParseDensity(""))
	require.Equal(t, schedule.DensityWeek, schedule.ParseDensity("fortnight"))
	require.Equal(t, schedule.DensityTwoMonths, schedule.ParseDensity("2months"))

	anchor := date(2024, time.September, 4)
	fallback := schedule.GenerateDays(anchor, schedule.ParseDensity("bogus"), anchor)
	week := schedule.GenerateDays(anchor, schedule.DensityWeek, anchor)
	require.Equal(t, week, fallback)
}

func TestAnchorNavigation(t *testing.T) {
	anchor := date(2024, time.September, 4)

	require.Equal(t, date(2024, time.September, 11), schedule.NextAnchor(anchor, schedule.DensityWeek))
	require.Equal(t, date(2024, time.September, 11), schedule.NextAnchor(anchor, schedule.DensityTwoWeeks))
	require.Equal(t, date(2024, time.October, 4), schedule.NextAnchor(anchor, schedule.DensityMonth))
	require.Equal(t, date(2024, time.October, 4), schedule.NextAnchor(anchor, schedule.DensityTwoMonths))

	require.Equal(t, date(2024, time.August, 28), schedule.PrevAnchor(anchor, schedule.DensityWeek))
	require.Equal(t, date(2024, time.August, 4), schedule.PrevAnchor(anchor, schedule.DensityMonth))

	require.Equal(t, anchor, schedule.PrevAnchor(schedule.NextAnchor(anchor, schedule.DensityWeek), schedule.DensityWeek))
}
