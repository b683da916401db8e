// Package sandbox is the built-in offline dataset. It seeds the in-memory
// data sources in offline mode and serves as the fallback when a live
// fetch fails. Accessors return fresh copies so callers can mutate freely.
package sandbox

import (
	"github.com/hms/console/internal/domain/dashboard"
	"github.com/hms/console/internal/domain/doctor"
	"github.com/hms/console/internal/domain/medication"
	"github.com/hms/console/internal/domain/patient"
	"github.com/hms/console/internal/domain/scheduling"
)

// Patients returns the seed patient collection.
func Patients() []*patient.Patient {
	return []*patient.Patient{
		{
			ID: "1", Name: "John Doe", Age: 35, Gender: patient.GenderMale,
			Contact: "+1234567890", Address: "123 Main St, City, State",
			MedicalHistory: "Hypertension, Type 2 Diabetes",
			CreatedAt:      "2024-01-15T10:30:00Z", UpdatedAt: "2024-01-15T10:30:00Z",
		},
		{
			ID: "2", Name: "Jane Smith", Age: 28, Gender: patient.GenderFemale,
			Contact: "+1234567891", Address: "456 Oak Ave, City, State",
			MedicalHistory: "Asthma",
			CreatedAt:      "2024-01-16T14:20:00Z", UpdatedAt: "2024-01-16T14:20:00Z",
		},
		{
			ID: "3", Name: "Robert Johnson", Age: 52, Gender: patient.GenderMale,
			Contact: "+1234567892", Address: "789 Pine Rd, City, State",
			MedicalHistory: "Heart Disease, High Cholesterol",
			CreatedAt:      "2024-01-17T09:15:00Z", UpdatedAt: "2024-01-17T09:15:00Z",
		},
		{
			ID: "4", Name: "Emily Davis", Age: 41, Gender: patient.GenderFemale,
			Contact: "+1234567893", Address: "321 Elm St, City, State",
			MedicalHistory: "Migraine, Anxiety",
			CreatedAt:      "2024-01-18T11:45:00Z", UpdatedAt: "2024-01-18T11:45:00Z",
		},
	}
}

// Doctors returns the seed doctor collection.
func Doctors() []*doctor.Doctor {
	return []*doctor.Doctor{
		{ID: "1", Name: "Dr. Sarah Williams", Specialization: "Cardiology", Contact: "+1234560001", Email: "sarah.williams@hospital.com"},
		{ID: "2", Name: "Dr. Michael Brown", Specialization: "General Medicine", Contact: "+1234560002", Email: "michael.brown@hospital.com"},
		{ID: "3", Name: "Dr. Lisa Anderson", Specialization: "Neurology", Contact: "+1234560003", Email: "lisa.anderson@hospital.com"},
		{ID: "4", Name: "Dr. James Wilson", Specialization: "Orthopedics", Contact: "+1234560004", Email: "james.wilson@hospital.com"},
	}
}

// Appointments returns the seed appointment collection.
func Appointments() []*scheduling.Appointment {
	return []*scheduling.Appointment{
		{
			ID: "1", PatientID: "1", PatientName: "John Doe",
			DoctorID: "1", DoctorName: "Dr. Sarah Williams",
			Date: "2024-10-25", Time: "10:00",
			Reason: "Regular checkup for hypertension", Status: scheduling.StatusScheduled,
			CreatedAt: "2024-01-20T08:00:00Z", UpdatedAt: "2024-01-20T08:00:00Z",
		},
		{
			ID: "2", PatientID: "2", PatientName: "Jane Smith",
			DoctorID: "2", DoctorName: "Dr. Michael Brown",
			Date: "2024-10-24", Time: "14:30",
			Reason: "Asthma follow-up", Status: scheduling.StatusScheduled,
			CreatedAt: "2024-01-21T09:30:00Z", UpdatedAt: "2024-01-21T09:30:00Z",
		},
		{
			ID: "3", PatientID: "3", PatientName: "Robert Johnson",
			DoctorID: "1", DoctorName: "Dr. Sarah Williams",
			Date: "2024-10-20", Time: "11:00",
			Reason: "Cardiac consultation", Status: scheduling.StatusCompleted,
			CreatedAt: "2024-01-15T10:00:00Z", UpdatedAt: "2024-01-20T11:30:00Z",
		},
		{
			ID: "4", PatientID: "4", PatientName: "Emily Davis",
			DoctorID: "3", DoctorName: "Dr. Lisa Anderson",
			Date: "2024-10-26", Time: "15:00",
			Reason: "Migraine treatment", Status: scheduling.StatusScheduled,
			CreatedAt: "2024-01-22T12:00:00Z", UpdatedAt: "2024-01-22T12:00:00Z",
		},
	}
}

// Prescriptions returns the seed prescription collection.
func Prescriptions() []*medication.Prescription {
	return []*medication.Prescription{
		{
			ID: "1", PatientID: "1", PatientName: "John Doe",
			DoctorID: "1", DoctorName: "Dr. Sarah Williams",
			Diagnosis:    "Hypertension",
			Medications:  "Lisinopril 10mg - Once daily, Amlodipine 5mg - Once daily",
			Instructions: "Take medications with food. Monitor blood pressure daily.",
			Date:         "2024-10-20",
			CreatedAt:    "2024-01-20T11:00:00Z", UpdatedAt: "2024-01-20T11:00:00Z",
		},
		{
			ID: "2", PatientID: "2", PatientName: "Jane Smith",
			DoctorID: "2", DoctorName: "Dr. Michael Brown",
			Diagnosis:    "Acute Asthma Exacerbation",
			Medications:  "Albuterol inhaler - As needed, Fluticasone 250mcg - Twice daily",
			Instructions: "Use rescue inhaler for breathing difficulty. Avoid allergens.",
			Date:         "2024-10-18",
			CreatedAt:    "2024-01-18T15:00:00Z", UpdatedAt: "2024-01-18T15:00:00Z",
		},
		{
			ID: "3", PatientID: "3", PatientName: "Robert Johnson",
			DoctorID: "1", DoctorName: "Dr. Sarah Williams",
			Diagnosis:    "High Cholesterol",
			Medications:  "Atorvastatin 20mg - Once daily at bedtime",
			Instructions: "Follow low-cholesterol diet. Exercise regularly. Recheck lipids in 3 months.",
			Date:         "2024-10-20",
			CreatedAt:    "2024-01-20T12:00:00Z", UpdatedAt: "2024-01-20T12:00:00Z",
		},
	}
}

// Stats returns the seed dashboard counters.
func Stats() dashboard.Stats {
	return dashboard.Stats{
		TotalPatients:       124,
		TotalAppointments:   48,
		ActivePrescriptions: 87,
		TodayAppointments:   12,
	}
}
