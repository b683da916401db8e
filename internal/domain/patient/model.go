// Package patient owns the Patient entity: its wire shape, its data
// sources, and the patients screen controller.
package patient

import (
	"strings"

	"github.com/hms/console/internal/platform/forms"
)

// Gender values accepted by the backend.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

var validGenders = map[string]bool{
	GenderMale: true, GenderFemale: true, GenderOther: true,
}

// Patient is the wire shape of a patient record. Timestamps are ISO-8601
// strings assigned by whichever side materializes the record.
type Patient struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Contact        string `json:"contact"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medicalHistory"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CreateDTO is a patient minus the server-assigned fields.
type CreateDTO struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Contact        string `json:"contact"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medicalHistory"`
}

// UpdateDTO carries the client-editable fields of an update.
type UpdateDTO = CreateDTO

// Validate runs the client-side checks that block submission.
func (d CreateDTO) Validate() forms.Errors {
	errs := forms.Errors{}
	if strings.TrimSpace(d.Name) == "" {
		errs.Add("name", "Name is required")
	}
	if d.Age <= 0 {
		errs.Add("age", "Valid age is required")
	}
	if strings.TrimSpace(d.Contact) == "" {
		errs.Add("contact", "Contact is required")
	} else if !forms.ValidPhone(d.Contact) {
		errs.Add("contact", "Invalid phone number")
	}
	if strings.TrimSpace(d.Address) == "" {
		errs.Add("address", "Address is required")
	}
	if d.Gender != "" && !validGenders[d.Gender] {
		errs.Add("gender", "Invalid gender")
	}
	return errs
}
