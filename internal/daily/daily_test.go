package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	at := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	if got, want := DateKey(at), "2024-03-10"; got != want {
		t.Errorf("DateKey = %q, want %q", got, want)
	}
}

func TestBoardSeed(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	a := BoardSeed(day, "salt")
	b := BoardSeed(day.Add(3*time.Hour), "salt") // same UTC day
	if a != b {
		t.Errorf("same day produced different seeds: %d vs %d", a, b)
	}

	if BoardSeed(day, "salt") == BoardSeed(day, "other") {
		t.Error("different salts produced the same seed")
	}
	if BoardSeed(day, "salt") == BoardSeed(day.AddDate(0, 0, 1), "salt") {
		t.Error("consecutive days produced the same seed")
	}
}
