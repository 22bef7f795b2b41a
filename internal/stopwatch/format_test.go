package stopwatch

import "testing"

func TestFormatTime(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want string
	}{
		{"zero", 0, "0:00"},
		{"single digit", 4, "0:04"},
		{"last second of minute", 59, "0:59"},
		{"one minute", 60, "1:00"},
		{"minutes and seconds", 125, "2:05"},
		{"hour is not wrapped", 3600, "60:00"},
		{"negative clamps", -5, "0:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTime(tc.in); got != tc.want {
				t.Fatalf("FormatTime(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
