package catalog

import "testing"

func TestSymptomByID(t *testing.T) {
	s, ok := SymptomByID("fever")
	if !ok {
		t.Fatal("expected fever to exist in the catalog")
	}
	if s.Department != GeneralMedicine {
		t.Errorf("expected fever to route to General Medicine, got %s", s.Department.Label())
	}
	if len(s.Conditions) == 0 {
		t.Error("expected fever to carry conditions")
	}
	if s.Conditions[0].Label() != "Acute Viral Fever / तीव्र वायरल बुखार" {
		t.Errorf("unexpected first condition label: %s", s.Conditions[0].Label())
	}
}

func TestSymptomByIDMiss(t *testing.T) {
	s, ok := SymptomByID("no-such-symptom")
	if ok {
		t.Fatal("expected miss for unknown id")
	}
	if s.ID != "" || len(s.Conditions) != 0 {
		t.Errorf("expected zero value on miss, got %+v", s)
	}
}

func TestEverySymptomHasDepartmentAndNames(t *testing.T) {
	for _, s := range Symptoms() {
		if s.ID == "" {
			t.Fatal("symptom with empty id")
		}
		if s.Name.English == "" || s.Name.Hindi == "" {
			t.Errorf("symptom %s missing a localized name", s.ID)
		}
		if s.Department.English == "" {
			t.Errorf("symptom %s missing a department", s.ID)
		}
	}
}

func TestDurations(t *testing.T) {
	want := []string{"1-2", "3-5", "6-10", "10+"}
	got := Durations()
	if len(got) != len(want) {
		t.Fatalf("expected %d durations, got %d", len(want), len(got))
	}
	for i, d := range got {
		if d.ID != want[i] {
			t.Errorf("duration %d: expected %s, got %s", i, want[i], d.ID)
		}
	}
	if _, ok := DurationByID("3-5"); !ok {
		t.Error("expected 3-5 duration to exist")
	}
	if _, ok := DurationByID("forever"); ok {
		t.Error("expected miss for unknown duration")
	}
}

func TestFacilityByIDReturnsCopy(t *testing.T) {
	a, ok := FacilityByID("fac-002")
	if !ok {
		t.Fatal("expected fac-002 to exist")
	}
	a.Specialties[0] = "mutated"
	a.Name.English = "mutated"

	b, _ := FacilityByID("fac-002")
	if b.Specialties[0] == "mutated" {
		t.Error("catalog specialties were mutated through a returned copy")
	}
	if b.Name.English == "mutated" {
		t.Error("catalog name was mutated through a returned copy")
	}
}

func TestEveryDepartmentBookableSomewhere(t *testing.T) {
	depts := map[string]bool{}
	for _, s := range Symptoms() {
		depts[s.Department.English] = false
	}
	for _, f := range Facilities() {
		for _, spec := range f.Specialties {
			if _, ok := depts[spec]; ok {
				depts[spec] = true
			}
		}
	}
	for d, covered := range depts {
		if !covered {
			t.Errorf("department %s has no facility offering it", d)
		}
	}
}

func TestValidTimeSlot(t *testing.T) {
	if !ValidTimeSlot("10:00 AM") {
		t.Error("expected 10:00 AM to be a valid slot")
	}
	if ValidTimeSlot("10:15 AM") {
		t.Error("expected 10:15 AM to be rejected")
	}
	if len(TimeSlots()) != 12 {
		t.Errorf("expected 12 slots, got %d", len(TimeSlots()))
	}
}
