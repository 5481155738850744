package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-backend/internal/calendar"
)

func moscow(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return loc
}

func localDates(times []time.Time) []calendar.Date {
	dates := make([]calendar.Date, 0, len(times))
	for _, t := range times {
		dates = append(dates, calendar.DateOf(t))
	}
	return dates
}

func TestExpandDaily_CappedWithoutUntil(t *testing.T) {
	loc := time.UTC
	anchor := time.Date(2023, 1, 1, 0, 0, 0, 0, loc)
	from := anchor
	to := anchor.AddDate(0, 2, 0)

	times, err := calendar.Expand(calendar.NewDailyPeriodicity(), loc, anchor, from, to, nil)
	require.NoError(t, err)

	assert.Len(t, times, 30, "open-ended daily expansion stops after 30 occurrences from the anchor")
	assert.Equal(t, calendar.Date{Year: 2023, Month: time.January, Day: 1}, calendar.DateOf(times[0]))
	assert.Equal(t, calendar.Date{Year: 2023, Month: time.January, Day: 30}, calendar.DateOf(times[29]))
}

func TestExpandDaily_ExplicitUntilLiftsCap(t *testing.T) {
	loc := time.UTC
	anchor := time.Date(2023, 1, 1, 0, 0, 0, 0, loc)
	until := anchor.AddDate(0, 2, 0)

	times, err := calendar.Expand(calendar.NewDailyPeriodicity(), loc, anchor, anchor, until, &until)
	require.NoError(t, err)

	assert.Greater(t, len(times), 30)
}

func TestExpandWeekly_MondayAndFriday(t *testing.T) {
	loc := moscow(t)
	// 2023-01-23 is a Monday.
	anchor := time.Date(2023, 1, 23, 0, 0, 0, 0, loc)
	from := anchor
	to := anchor.AddDate(0, 0, 7)

	weekly, err := calendar.NewWeeklyPeriodicity([]int{0, 4})
	require.NoError(t, err)

	times, err := calendar.Expand(weekly, loc, anchor, from, to, nil)
	require.NoError(t, err)

	assert.Equal(t, []calendar.Date{
		{Year: 2023, Month: time.January, Day: 23},
		{Year: 2023, Month: time.January, Day: 27},
	}, localDates(times))
}

func TestExpandBiweekly_SecondWeekUsesOwnWeekdaySet(t *testing.T) {
	loc := moscow(t)
	anchor := time.Date(2023, 1, 23, 0, 0, 0, 0, loc) // Monday
	from := anchor
	to := anchor.AddDate(0, 0, 28)

	biweekly, err := calendar.NewBiweeklyPeriodicity([]int{0}, []int{3})
	require.NoError(t, err)

	times, err := calendar.Expand(biweekly, loc, anchor, from, to, nil)
	require.NoError(t, err)

	// week1 Mondays every 14 days from the anchor, week2 Thursdays every
	// 14 days anchored one week later.
	assert.Equal(t, []calendar.Date{
		{Year: 2023, Month: time.January, Day: 23},
		{Year: 2023, Month: time.February, Day: 2},
		{Year: 2023, Month: time.February, Day: 6},
		{Year: 2023, Month: time.February, Day: 16},
	}, localDates(times))
}

func TestExpandMonthly_ShortMonthSkipsDay(t *testing.T) {
	loc := time.UTC
	anchor := time.Date(2023, 1, 31, 0, 0, 0, 0, loc)

	monthly, err := calendar.NewMonthlyPeriodicity([]int{31})
	require.NoError(t, err)

	t.Run("february yields nothing", func(t *testing.T) {
		from := time.Date(2023, 2, 1, 0, 0, 0, 0, loc)
		to := time.Date(2023, 3, 1, 0, 0, 0, 0, loc)

		times, err := calendar.Expand(monthly, loc, anchor, from, to, nil)
		require.NoError(t, err)
		assert.Empty(t, times, "a 28-day February has no 31st and the day is not rolled forward")
	})

	t.Run("january and march both match", func(t *testing.T) {
		from := time.Date(2023, 1, 15, 0, 0, 0, 0, loc)
		to := time.Date(2023, 4, 1, 0, 0, 0, 0, loc)

		times, err := calendar.Expand(monthly, loc, anchor, from, to, nil)
		require.NoError(t, err)
		assert.Equal(t, []calendar.Date{
			{Year: 2023, Month: time.January, Day: 31},
			{Year: 2023, Month: time.March, Day: 31},
		}, localDates(times))
	})
}

func TestExpandWindowBoundaries(t *testing.T) {
	loc := time.UTC
	anchor := time.Date(2023, 1, 25, 0, 0, 0, 0, loc)

	t.Run("occurrence exactly at from is included", func(t *testing.T) {
		times, err := calendar.Expand(calendar.NewDailyPeriodicity(), loc, anchor, anchor, anchor.AddDate(0, 0, 1), nil)
		require.NoError(t, err)
		require.Len(t, times, 1)
		assert.True(t, times[0].Equal(anchor))
	})

	t.Run("occurrence exactly at to is excluded", func(t *testing.T) {
		times, err := calendar.Expand(calendar.NewDailyPeriodicity(), loc, anchor, anchor, anchor.AddDate(0, 0, 2), nil)
		require.NoError(t, err)
		assert.Equal(t, []calendar.Date{
			{Year: 2023, Month: time.January, Day: 25},
			{Year: 2023, Month: time.January, Day: 26},
		}, localDates(times))
	})
}

func TestExpandIsRestartable(t *testing.T) {
	loc := moscow(t)
	anchor := time.Date(2023, 1, 23, 11, 48, 38, 0, loc)
	from := time.Date(2023, 1, 23, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 14)

	weekly, err := calendar.NewWeeklyPeriodicity([]int{0, 2, 4})
	require.NoError(t, err)

	first, err := calendar.Expand(weekly, loc, anchor, from, to, nil)
	require.NoError(t, err)
	second, err := calendar.Expand(weekly, loc, anchor, from, to, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpandTimezoneStability(t *testing.T) {
	loc := moscow(t)
	anchor := time.Date(2023, 1, 23, 0, 0, 0, 0, loc)
	from := time.Date(2023, 1, 23, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 7)

	weekly, err := calendar.NewWeeklyPeriodicity([]int{0, 4})
	require.NoError(t, err)

	localWindow, err := calendar.Expand(weekly, loc, anchor, from, to, nil)
	require.NoError(t, err)
	utcWindow, err := calendar.Expand(weekly, loc, anchor, from.UTC(), to.UTC(), nil)
	require.NoError(t, err)

	require.Len(t, utcWindow, len(localWindow))
	for i := range localWindow {
		assert.True(t, localWindow[i].Equal(utcWindow[i]),
			"the window is a pair of instants; its textual zone must not matter")
	}
}
