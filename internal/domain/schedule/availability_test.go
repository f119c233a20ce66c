package schedule

import (
	"testing"
	"time"
)

func TestFilterAvailable_RemovesBooked(t *testing.T) {
	// segunda-feira com uma reserva às 10:00
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	slots := Slots(mustTime(t, "09:00"), mustTime(t, "17:00"), SlotDuration)
	booked := []TimeOfDay{mustTime(t, "10:00")}

	free := FilterAvailable(slots, booked, date, now)

	if len(free) != 15 {
		t.Fatalf("expected 15 free slots, got %d", len(free))
	}

	seen := make(map[string]bool)
	for _, s := range free {
		seen[s.String()] = true
	}
	if !seen["09:30"] || !seen["10:30"] {
		t.Error("expected 09:30 and 10:30 to be free")
	}
	if seen["10:00"] {
		t.Error("10:00 should be taken")
	}
}

func TestFilterAvailable_IsSetDifference(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	slots := Slots(mustTime(t, "09:00"), mustTime(t, "17:00"), SlotDuration)
	booked := []TimeOfDay{mustTime(t, "09:00"), mustTime(t, "16:30")}

	all := collect(slots)
	free := FilterAvailable(slots, booked, date, now)

	if len(free) != len(all)-len(booked) {
		t.Fatalf("expected %d free slots, got %d", len(all)-len(booked), len(free))
	}

	// resultado é subconjunto da grade
	grade := make(map[TimeOfDay]bool)
	for _, s := range all {
		grade[s] = true
	}
	for _, s := range free {
		if !grade[s] {
			t.Errorf("slot %s not in generated grid", s)
		}
		for _, b := range booked {
			if s == b {
				t.Errorf("booked slot %s leaked into result", s)
			}
		}
	}
}

func TestFilterAvailable_Idempotent(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 4, 11, 40, 0, 0, time.UTC)

	slots := Slots(mustTime(t, "09:00"), mustTime(t, "17:00"), SlotDuration)
	booked := []TimeOfDay{mustTime(t, "14:00")}

	first := FilterAvailable(slots, booked, date, now)
	second := FilterAvailable(slots, booked, date, now)

	if len(first) != len(second) {
		t.Fatalf("non-idempotent: %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("mismatch at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestFilterAvailable_ExcludesPastSlotsToday(t *testing.T) {
	// hoje, 11:40 → tudo até 11:30 (inclusive) já era
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 4, 11, 40, 0, 0, time.UTC)

	slots := Slots(mustTime(t, "09:00"), mustTime(t, "17:00"), SlotDuration)
	free := FilterAvailable(slots, nil, date, now)

	if len(free) == 0 {
		t.Fatal("expected some free slots")
	}
	if free[0].String() != "12:00" {
		t.Errorf("first free slot = %s, want 12:00", free[0])
	}
}

func TestFilterAvailable_SlotEqualToNowExcluded(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	slots := Slots(mustTime(t, "09:00"), mustTime(t, "17:00"), SlotDuration)
	free := FilterAvailable(slots, nil, date, now)

	for _, s := range free {
		if s.String() == "12:00" {
			t.Error("slot at exactly now should be excluded")
		}
	}
}

func TestFilterAvailable_PastDateIsEmpty(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	slots := Slots(mustTime(t, "09:00"), mustTime(t, "17:00"), SlotDuration)
	free := FilterAvailable(slots, nil, date, now)

	if len(free) != 0 {
		t.Fatalf("expected no slots for past date, got %d", len(free))
	}
}
