package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.February, 30)
	if want := New(2025, time.March, 2); got != want {
		t.Errorf("New(2025, 2, 30) = %v, want %v", got, want)
	}
}

func TestOf(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	at := time.Date(2025, time.October, 17, 23, 30, 0, 0, loc)
	if got, want := Of(at), New(2025, time.October, 17); got != want {
		t.Errorf("Of(%v) = %v, want %v", at, got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-10-17", want: New(2025, time.October, 17)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "17/10/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, time.October, 7)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2025-10-07"` {
		t.Errorf("Marshal() = %s, want %q", b, "2025-10-07")
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("Unmarshal() = %v, want %v", got, d)
	}
}
