package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "10:00", want: 600},
		{in: "00:00", want: 0},
		{in: "23:59", want: 1439},
		{in: "9:30", want: 570},
		{in: "19:30", want: 1170},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "10", wantErr: true},
		{in: "10:0", wantErr: true},
		{in: "", wantErr: true},
		{in: "ten:30", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "10:00", FormatClock(600))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "19:30", FormatClock(1170))
}

func TestDurationOrDefault(t *testing.T) {
	assert.Equal(t, 90, (&Service{Duration: 90}).DurationOrDefault())
	assert.Equal(t, DefaultServiceDuration, (&Service{}).DurationOrDefault())
	assert.Equal(t, DefaultServiceDuration, (&Service{Duration: -15}).DurationOrDefault())
}
