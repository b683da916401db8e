// Package scheduling owns the Appointment entity and the appointments
// screen controller.
package scheduling

import (
	"strings"

	"github.com/hms/console/internal/platform/forms"
)

// Appointment statuses accepted by the backend.
const (
	StatusScheduled   = "Scheduled"
	StatusCompleted   = "Completed"
	StatusCancelled   = "Cancelled"
	StatusRescheduled = "Rescheduled"
)

// Statuses lists the valid appointment statuses in display order.
var Statuses = []string{StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled}

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusCompleted: true,
	StatusCancelled: true, StatusRescheduled: true,
}

// Appointment is the wire shape of an appointment. PatientName and
// DoctorName are denormalized display caches equal to the referenced
// entity's name at the moment of creation or update.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName,omitempty"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateDTO is an appointment minus the server-assigned and denormalized
// fields.
type CreateDTO struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
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
	if d.Date == "" {
		errs.Add("date", "Date is required")
	}
	if d.Time == "" {
		errs.Add("time", "Time is required")
	}
	if strings.TrimSpace(d.Reason) == "" {
		errs.Add("reason", "Reason is required")
	}
	if d.Status != "" && !validStatuses[d.Status] {
		errs.Add("status", "Invalid status")
	}
	return errs
}
