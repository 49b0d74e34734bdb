package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTo24Hour(t *testing.T) {
	cases := map[string]string{
		"09:30 AM": "09:30",
		"09:30 PM": "21:30",
		"12:00 AM": "00:00",
		"12:15 PM": "12:15",
		"01:05 pm": "13:05",
	}

	for input, want := range cases {
		got, err := ConvertTo24Hour(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestConvertTo24HourRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "09:30", "25:00 PM", "09:61 AM", "09 PM", "09:30 XX"} {
		_, err := ConvertTo24Hour(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestCombineDateTime(t *testing.T) {
	ts, err := CombineDateTime("2026-03-01", "09:30 PM")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 21, 30, 0, 0, time.UTC), ts)
}

func TestCombineDateTimeRejectsInvalid(t *testing.T) {
	_, err := CombineDateTime("2026-13-40", "09:30 PM")
	assert.Error(t, err)

	_, err = CombineDateTime("2026-03-01", "nonsense")
	assert.Error(t, err)
}
