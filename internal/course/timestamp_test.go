package course

import "testing"

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{45, "00:45"},
		{60, "01:00"},
		{300, "05:00"},
		{754, "12:34"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-5, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.seconds); got != tc.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		ts   string
		want int
	}{
		{"00:00", 0},
		{"00:45", 45},
		{"05:00", 300},
		{"12:34", 754},
		{"1:00:00", 3600},
		{"1:02:05", 3725},
		{" 05:00 ", 300},
		{"garbage", 0},
		{"", 0},
		{"1:2:3:4", 0},
	}
	for _, tc := range cases {
		if got := ParseTimestamp(tc.ts); got != tc.want {
			t.Errorf("ParseTimestamp(%q) = %d, want %d", tc.ts, got, tc.want)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, seconds := range []int{0, 1, 59, 60, 61, 3599, 3600, 7325} {
		if got := ParseTimestamp(FormatTimestamp(seconds)); got != seconds {
			t.Errorf("round trip %d came back as %d", seconds, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{45, "45s"},
		{0, "0s"},
		{725, "12m 5s"},
		{5400, "1h 30m"},
		{-10, "0s"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestParseDurationEstimate(t *testing.T) {
	cases := []struct {
		estimate string
		want     int
	}{
		{"15 minutes", 900},
		{"1 hour 30 minutes", 5400},
		{"45 seconds", 45},
		{"approximately 20 minutes", 1200},
		{"2 hours", 7200},
		{"unknown", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ParseDurationEstimate(tc.estimate); got != tc.want {
			t.Errorf("ParseDurationEstimate(%q) = %d, want %d", tc.estimate, got, tc.want)
		}
	}
}
