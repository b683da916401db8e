package sandbox

import "testing"

func TestAccessorsReturnFreshCopies(t *testing.T) {
	first := Patients()
	first[0].Name = "Mutated"
	if got := Patients()[0].Name; got != "John Doe" {
		t.Fatalf("seed leaked a shared pointer: %q", got)
	}

	appts := Appointments()
	appts[0].Status = "Bogus"
	if got := Appointments()[0].Status; got != "Scheduled" {
		t.Fatalf("seed leaked a shared pointer: %q", got)
	}
}

func TestReferencesResolve(t *testing.T) {
	patients := map[string]bool{}
	for _, p := range Patients() {
		patients[p.ID] = true
	}
	doctors := map[string]bool{}
	for _, d := range Doctors() {
		doctors[d.ID] = true
	}

	for _, a := range Appointments() {
		if !patients[a.PatientID] {
			t.Errorf("appointment %s references unknown patient %s", a.ID, a.PatientID)
		}
		if !doctors[a.DoctorID] {
			t.Errorf("appointment %s references unknown doctor %s", a.ID, a.DoctorID)
		}
	}
	for _, rx := range Prescriptions() {
		if !patients[rx.PatientID] {
			t.Errorf("prescription %s references unknown patient %s", rx.ID, rx.PatientID)
		}
		if !doctors[rx.DoctorID] {
			t.Errorf("prescription %s references unknown doctor %s", rx.ID, rx.DoctorID)
		}
	}
}
