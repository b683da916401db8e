package medication

import "testing"

func TestCreateDTOValidate(t *testing.T) {
	valid := CreateDTO{
		PatientID:   "p1",
		DoctorID:    "d1",
		Diagnosis:   "Hypertension",
		Medications: "Lisinopril 10mg daily",
		Date:        "2025-03-10",
	}
	if errs := valid.Validate(); !errs.Valid() {
		t.Fatalf("expected valid form, got %v", errs)
	}

	tests := []struct {
		name    string
		mutate  func(*CreateDTO)
		field   string
		message string
	}{
		{"missing patient", func(d *CreateDTO) { d.PatientID = "" }, "patientId", "Patient is required"},
		{"missing doctor", func(d *CreateDTO) { d.DoctorID = "" }, "doctorId", "Doctor is required"},
		{"blank diagnosis", func(d *CreateDTO) { d.Diagnosis = " " }, "diagnosis", "Diagnosis is required"},
		{"blank medications", func(d *CreateDTO) { d.Medications = "" }, "medications", "Medications are required"},
		{"missing date", func(d *CreateDTO) { d.Date = "" }, "date", "Date is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			errs := form.Validate()
			if got := errs[tt.field]; got != tt.message {
				t.Fatalf("field %q: got %q, want %q", tt.field, got, tt.message)
			}
		})
	}
}
