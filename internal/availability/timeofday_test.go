package availability

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: TimeOfDay{0, 0}},
		{name: "end of day", input: "23:59", want: TimeOfDay{23, 59}},
		{name: "plain morning", input: "09:30", want: TimeOfDay{9, 30}},
		{name: "24:00 rejected", input: "24:00", wantErr: true},
		{name: "single-digit hour rejected", input: "9:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "trailing garbage", input: "12:30pm", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeOfDay(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrBadTimeFormat) {
					t.Errorf("error = %v, want ErrBadTimeFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   TimeOfDay
		n    int
		skip bool
		want TimeOfDay
	}{
		{name: "within hour", in: TimeOfDay{10, 15}, n: 30, want: TimeOfDay{10, 45}},
		{name: "wraps day without skip", in: TimeOfDay{23, 30}, n: 90, want: TimeOfDay{1, 0}},
		{name: "keeps overflow hour with skip", in: TimeOfDay{23, 30}, n: 90, skip: true, want: TimeOfDay{25, 0}},
		{name: "exactly midnight with skip", in: TimeOfDay{22, 0}, n: 120, skip: true, want: TimeOfDay{24, 0}},
		{name: "exactly midnight without skip", in: TimeOfDay{22, 0}, n: 120, want: TimeOfDay{0, 0}},
		{name: "full day shift with skip", in: TimeOfDay{0, 30}, n: minutesPerDay, skip: true, want: TimeOfDay{24, 30}},
		{name: "negative wraps back", in: TimeOfDay{0, 10}, n: -30, want: TimeOfDay{23, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.AddMinutes(tt.n, tt.skip)
			if got != tt.want {
				t.Errorf("%v.AddMinutes(%d, %v) = %v, want %v", tt.in, tt.n, tt.skip, got, tt.want)
			}
			// The receiver must be untouched.
			if tt.in.Hour > 23 || tt.in.Minute > 59 {
				t.Errorf("receiver mutated: %v", tt.in)
			}
		})
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	a := TimeOfDay{9, 30}
	b := TimeOfDay{9, 45}
	c := TimeOfDay{10, 0}

	if !a.Before(b) || !b.Before(c) || !a.Before(c) {
		t.Error("Before is not a total order over (hour, minute)")
	}
	if !c.After(a) {
		t.Error("After disagrees with Before")
	}
	if a.Before(a) || a.After(a) || !a.Equal(a) {
		t.Error("comparison against self is wrong")
	}
	// Overflowed hours stay ordered after normal ones.
	overflow := TimeOfDay{25, 0}
	if !c.Before(overflow) {
		t.Error("boundary-skipped value must compare after 23:59 values")
	}
}

func TestTimeOfDayString(t *testing.T) {
	tests := []struct {
		in   TimeOfDay
		want string
	}{
		{TimeOfDay{0, 0}, "00:00"},
		{TimeOfDay{9, 5}, "09:05"},
		{TimeOfDay{23, 59}, "23:59"},
		{TimeOfDay{25, 0}, "25:00"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
