package scheduling

import "testing"

func TestCreateDTOValidate(t *testing.T) {
	valid := CreateDTO{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      "2025-03-10",
		Time:      "10:00",
		Reason:    "Follow-up",
		Status:    StatusScheduled,
	}
	if errs := valid.Validate(); !errs.Valid() {
		t.Fatalf("expected valid form, got %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*CreateDTO)
		field  string
	}{
		{"missing patient", func(d *CreateDTO) { d.PatientID = "" }, "patientId"},
		{"missing doctor", func(d *CreateDTO) { d.DoctorID = "" }, "doctorId"},
		{"missing date", func(d *CreateDTO) { d.Date = "" }, "date"},
		{"missing time", func(d *CreateDTO) { d.Time = "" }, "time"},
		{"blank reason", func(d *CreateDTO) { d.Reason = "   " }, "reason"},
		{"unknown status", func(d *CreateDTO) { d.Status = "Pending" }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			errs := form.Validate()
			if errs.Valid() {
				t.Fatal("expected validation error")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateEmptyStatusAllowed(t *testing.T) {
	form := CreateDTO{
		PatientID: "p1", DoctorID: "d1",
		Date: "2025-03-10", Time: "10:00", Reason: "Checkup",
	}
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("expected empty status to pass, got %v", errs)
	}
}
