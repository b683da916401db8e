// Package medication owns the Prescription entity and the prescriptions
// screen controller.
package medication

import (
	"strings"

	"github.com/hms/console/internal/platform/forms"
)

// Prescription is the wire shape of a prescription. Medications is a free
// text field listing drugs and dosages; PatientName and DoctorName are
// denormalized display caches.
type Prescription struct {
	ID           string   `json:"id"`
	PatientID    string   `json:"patientId"`
	PatientName  string   `json:"patientName,omitempty"`
	DoctorID     string   `json:"doctorId"`
	DoctorName   string   `json:"doctorName,omitempty"`
	Diagnosis    string   `json:"diagnosis"`
	Medications  string   `json:"medications"`
	Instructions string   `json:"instructions"`
	Date         string   `json:"date"`
	Attachments  []string `json:"attachments,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// CreateDTO is a prescription minus the server-assigned and denormalized
// fields.
type CreateDTO struct {
	PatientID    string   `json:"patientId"`
	DoctorID     string   `json:"doctorId"`
	Diagnosis    string   `json:"diagnosis"`
	Medications  string   `json:"medications"`
	Instructions string   `json:"instructions"`
	Date         string   `json:"date"`
	Attachments  []string `json:"attachments,omitempty"`
}

// UpdateDTO carries the client-editable fields of an update.
type UpdateDTO = CreateDTO

// Validate runs the client-side checks that block submission.
func (d CreateDTO) Validate() forms.Errors {
	errs := forms.Errors{}
	if d.PatientID == "" {
		errs.Add("patientId", "Patient is required")
	}
	if d.DoctorID == "" {
		errs.Add("doctorId", "Doctor is required")
	}
	if strings.TrimSpace(d.Diagnosis) == "" {
		errs.Add("diagnosis", "Diagnosis is required")
	}
	if strings.TrimSpace(d.Medications) == "" {
		errs.Add("medications", "Medications are required")
	}
	if d.Date == "" {
		errs.Add("date", "Date is required")
	}
	return errs
}
