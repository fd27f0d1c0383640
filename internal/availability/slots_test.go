package availability

import (
	"testing"
	"time"
)

func at(t *testing.T, date string, hour, minute int) time.Time {
	t.Helper()
	return time.Date(day(t, date).Year(), day(t, date).Month(), day(t, date).Day(), hour, minute, 0, 0, time.UTC)
}

func span(t *testing.T, date string, fromH, fromM, toH, toM int) Span {
	t.Helper()
	return Span{Start: at(t, date, fromH, fromM), End: at(t, date, toH, toM)}
}

func TestSubtractBusy(t *testing.T) {
	const d = "2025-03-10"

	tests := []struct {
		name string
		open []Span
		busy []Span
		want []Span
	}{
		{
			name: "disjoint busy leaves window untouched",
			open: []Span{span(t, d, 9, 0, 12, 0)},
			busy: []Span{span(t, d, 13, 0, 14, 0)},
			want: []Span{span(t, d, 9, 0, 12, 0)},
		},
		{
			name: "busy covering window removes it",
			open: []Span{span(t, d, 9, 0, 10, 0)},
			busy: []Span{span(t, d, 8, 0, 11, 0)},
			want: nil,
		},
		{
			name: "busy clips the front",
			open: []Span{span(t, d, 9, 0, 12, 0)},
			busy: []Span{span(t, d, 8, 0, 10, 0)},
			want: []Span{span(t, d, 10, 0, 12, 0)},
		},
		{
			name: "busy clips the back",
			open: []Span{span(t, d, 9, 0, 12, 0)},
			busy: []Span{span(t, d, 11, 0, 13, 0)},
			want: []Span{span(t, d, 9, 0, 11, 0)},
		},
		{
			name: "busy in the middle splits the window",
			open: []Span{span(t, d, 9, 0, 12, 0)},
			busy: []Span{span(t, d, 10, 0, 10, 30)},
			want: []Span{span(t, d, 9, 0, 10, 0), span(t, d, 10, 30, 12, 0)},
		},
		{
			name: "second busy folds over the remainder of the first",
			open: []Span{span(t, d, 9, 0, 13, 0)},
			busy: []Span{span(t, d, 10, 0, 11, 0), span(t, d, 12, 0, 12, 30)},
			want: []Span{span(t, d, 9, 0, 10, 0), span(t, d, 11, 0, 12, 0), span(t, d, 12, 30, 13, 0)},
		},
		{
			name: "touching busy does not clip",
			open: []Span{span(t, d, 9, 0, 12, 0)},
			busy: []Span{span(t, d, 12, 0, 13, 0)},
			want: []Span{span(t, d, 9, 0, 12, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtractBusy(tt.open, tt.busy)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d spans, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) {
					t.Errorf("span[%d] = [%v, %v), want [%v, %v)", i, got[i].Start, got[i].End, tt.want[i].Start, tt.want[i].End)
				}
			}
		})
	}
}

func TestSliceStarts(t *testing.T) {
	const d = "2025-03-10"

	tests := []struct {
		name    string
		free    []Span
		session int
		step    int
		want    []time.Time
	}{
		{
			name:    "even slicing",
			free:    []Span{span(t, d, 9, 0, 11, 0)},
			session: 60,
			step:    60,
			want:    []time.Time{at(t, d, 9, 0), at(t, d, 10, 0)},
		},
		{
			name:    "last start must still fit the session",
			free:    []Span{span(t, d, 9, 0, 10, 30)},
			session: 60,
			step:    30,
			want:    []time.Time{at(t, d, 9, 0), at(t, d, 9, 30)},
		},
		{
			name:    "window shorter than session yields nothing",
			free:    []Span{span(t, d, 9, 0, 9, 30)},
			session: 60,
			step:    60,
			want:    nil,
		},
		{
			name:    "zero step defaults to session length",
			free:    []Span{span(t, d, 9, 0, 12, 0)},
			session: 90,
			step:    0,
			want:    []time.Time{at(t, d, 9, 0), at(t, d, 10, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SliceStarts(tt.free, tt.session, tt.step)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d starts (%v), want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("start[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Generated slots must never overlap any busy interval supplied as input.
func TestGenerateSlotsAvoidsBusy(t *testing.T) {
	const d = "2025-03-10"
	windows := []Span{span(t, d, 8, 0, 14, 0), span(t, d, 22, 0, 23, 30)}
	busy := []Span{
		span(t, d, 9, 0, 9, 45),
		span(t, d, 11, 30, 12, 15),
		span(t, d, 22, 30, 22, 45),
	}
	const session = 30

	starts := GenerateSlots(windows, busy, session, session)
	if len(starts) == 0 {
		t.Fatal("expected at least one bookable slot")
	}
	for _, start := range starts {
		candidate := Span{Start: start, End: start.Add(session * time.Minute)}
		for _, b := range busy {
			if candidate.Overlaps(b) {
				t.Errorf("slot starting %v overlaps busy [%v, %v)", start, b.Start, b.End)
			}
		}
		contained := false
		for _, w := range windows {
			if !candidate.Start.Before(w.Start) && !candidate.End.After(w.End) {
				contained = true
			}
		}
		if !contained {
			t.Errorf("slot starting %v does not lie inside any window", start)
		}
	}
}
