package entity

import "testing"

func TestParseMinuteOfDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    MinuteOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"10:30", 630, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"12", 0, true},
		{"12:00:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseMinuteOfDay(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMinuteOfDay(%q): expected error, got %d", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMinuteOfDay(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMinuteOfDay(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestMinuteOfDayString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   MinuteOfDay
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{630, "10:30"},
		{1439, "23:59"},
	}

	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("MinuteOfDay(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMinuteOfDayDiffAbs(t *testing.T) {
	t.Parallel()

	if got := MinuteOfDay(600).DiffAbs(630); got != 30 {
		t.Errorf("DiffAbs(600, 630) = %d, want 30", got)
	}
	if got := MinuteOfDay(630).DiffAbs(600); got != 30 {
		t.Errorf("DiffAbs(630, 600) = %d, want 30", got)
	}
	if got := MinuteOfDay(540).DiffAbs(540); got != 0 {
		t.Errorf("DiffAbs(540, 540) = %d, want 0", got)
	}
}
