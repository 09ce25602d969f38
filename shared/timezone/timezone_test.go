package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	// 20:00 UTC is already the next day at UTC+7.
	input := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	got := timezone.StartOfDay(input, loc)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc), got)
}

func TestDayBounds(t *testing.T) {
	start, err := timezone.ParseDate("2024-03-10")
	require.NoError(t, err)

	from, to := timezone.DayBounds(start.Add(15*time.Hour), start.Add(9*time.Hour))

	assert.True(t, from.Equal(start), "from = %s", from)
	assert.True(t, to.Equal(start.AddDate(0, 0, 1).Add(-time.Nanosecond)), "to = %s", to)
	assert.True(t, timezone.SameDate(from, to))
}

func TestParseDateAndSameDate(t *testing.T) {
	day, err := timezone.ParseDate("2024-05-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-01", timezone.FormatDate(day))

	later := day.Add(10 * time.Hour)
	assert.True(t, timezone.SameDate(day, later))
	assert.False(t, timezone.SameDate(day, day.Add(24*time.Hour)))

	_, err = timezone.ParseDate("05/01/2024")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, 0, today.Hour())
	assert.True(t, timezone.SameDate(today, timezone.Now()))
}
