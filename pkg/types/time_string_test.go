package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		got, err := NewTimeStringFromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, got.String())
	}

	invalid := []string{"", "24:00", "12:60", "12-30", "garbage"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, s)
	}
}

func TestTimeStringMinutes(t *testing.T) {
	minutes, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"09:00", 90, "10:30"},
		{"09:00", 0, "09:00"},
		{"09:00", -120, "07:00"},
		// Переход через полночь обрезается по границам дня
		{"23:00", 120, "23:59"},
		{"00:30", -60, "00:00"},
	}

	for _, tt := range tests {
		got, err := TimeString(tt.start).AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("13:00"))
	assert.True(t, TimeString("13:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeStringOnDate(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("16:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 16, 30, 0, 0, time.UTC), got)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	// PostgreSQL тип time отдаёт секунды, они отбрасываются
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("13:15")))
	assert.Equal(t, "13:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
