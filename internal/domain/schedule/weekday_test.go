package schedule

import (
	"testing"
	"time"
)

func TestParseWorkingDays(t *testing.T) {
	days, err := ParseWorkingDays("Mon,Tue,Wed,Thu,Fri")
	if err != nil {
		t.Fatalf("ParseWorkingDays: %v", err)
	}

	for _, wd := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	} {
		if !days.Contains(wd) {
			t.Errorf("expected %v to be a working day", wd)
		}
	}
	if days.Contains(time.Saturday) || days.Contains(time.Sunday) {
		t.Error("weekend should not be working days")
	}
}

func TestParseWorkingDays_SundayMapping(t *testing.T) {
	// Sun é índice 6 na tabela interna, mas time.Sunday é 0 no stdlib
	days, err := ParseWorkingDays("Sun")
	if err != nil {
		t.Fatalf("ParseWorkingDays: %v", err)
	}

	if !days.Contains(time.Sunday) {
		t.Error("expected Sunday to be a working day")
	}
	if days.Contains(time.Monday) {
		t.Error("Monday should not be a working day")
	}
}

func TestParseWorkingDays_Invalid(t *testing.T) {
	for _, s := range []string{"Seg", "Monday", "Mon,Xyz"} {
		if _, err := ParseWorkingDays(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestParseWorkingDays_SpacesAndEmpty(t *testing.T) {
	days, err := ParseWorkingDays(" Mon , Fri ")
	if err != nil {
		t.Fatalf("ParseWorkingDays: %v", err)
	}
	if !days.Contains(time.Monday) || !days.Contains(time.Friday) {
		t.Error("expected Mon and Fri")
	}

	empty, err := ParseWorkingDays("")
	if err != nil {
		t.Fatalf("ParseWorkingDays(\"\"): %v", err)
	}
	if !empty.IsEmpty() {
		t.Error("expected empty set")
	}
}

func TestWorkingDays_String(t *testing.T) {
	days, _ := ParseWorkingDays("Fri,Mon,Sun")
	if got := days.String(); got != "Mon,Fri,Sun" {
		t.Errorf("String() = %q, want canonical Mon,Fri,Sun", got)
	}
}
