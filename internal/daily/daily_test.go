package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	if got := DateKey(d); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
}

func TestPuzzleIndexDeterministic(t *testing.T) {
	d := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	later := d.Add(10 * time.Hour)
	if PuzzleIndex(d, "salt", 7) != PuzzleIndex(later, "salt", 7) {
		t.Fatal("same day must map to the same index")
	}
	for i := 0; i < 60; i++ {
		day := d.AddDate(0, 0, i)
		if idx := PuzzleIndex(day, "salt", 3); idx < 0 || idx >= 3 {
			t.Fatalf("index %d out of range", idx)
		}
	}
	if PuzzleIndex(d, "salt", 0) != 0 || PuzzleIndex(d, "salt", -1) != 0 {
		t.Fatal("expected 0 for empty range")
	}
}

func TestPick(t *testing.T) {
	d := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	if Pick(d, "salt", nil) != "" {
		t.Fatal("expected empty pick for no names")
	}
	names := []string{"life-sciences", "planets"}
	if got := Pick(d, "salt", names); got != names[PuzzleIndex(d, "salt", 2)] {
		t.Fatalf("unexpected pick %q", got)
	}
	if Pick(d, "salt", []string{"only"}) != "only" {
		t.Fatal("single entry must always be picked")
	}
}

func TestSaltFromEnv(t *testing.T) {
	t.Setenv("DAILY_SALT", "")
	if got := SaltFromEnv(); got != DefaultSalt {
		t.Fatalf("unset salt = %q, want %q", got, DefaultSalt)
	}
	t.Setenv("DAILY_SALT", "pepper")
	if got := SaltFromEnv(); got != "pepper" {
		t.Fatalf("salt = %q", got)
	}
}
