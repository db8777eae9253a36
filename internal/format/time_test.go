package format

import "testing"

func TestFiletimeToTime_Epoch(t *testing.T) {
	got := FiletimeToTime(0)
	if !got.Equal(got.Truncate(0)) {
		t.Fatalf("unexpected")
	}
	if got.Unix() != 0 {
		t.Fatalf("got unix %d, want 0", got.Unix())
	}
}

func TestFiletimeToTime_KnownValue(t *testing.T) {
	// 2021-01-01T00:00:00Z in FILETIME units.
	const ft = 132539328000000000
	got := FiletimeToTime(ft)
	if got.Year() != 2021 || got.Month() != 1 || got.Day() != 1 {
		t.Fatalf("got %v", got)
	}
}
