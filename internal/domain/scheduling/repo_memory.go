package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemorySource keeps appointments in process memory for offline use. It
// stores the resolved patient and doctor names alongside the references so
// listings stay readable without a join.
type MemorySource struct {
	mu           sync.Mutex
	appointments []*Appointment
	now          func() time.Time
}

func NewMemorySource(seed []*Appointment) *MemorySource {
	return &MemorySource{appointments: seed, now: time.Now}
}

func (m *MemorySource) List(_ context.Context) ([]*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out, nil
}

func (m *MemorySource) Get(_ context.Context, id string) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appointments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (m *MemorySource) Create(_ context.Context, dto CreateDTO, patientName, doctorName string) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp := m.now().UTC().Format(time.RFC3339)
	appt := &Appointment{
		ID:          uuid.New().String(),
		PatientID:   dto.PatientID,
		DoctorID:    dto.DoctorID,
		PatientName: patientName,
		DoctorName:  doctorName,
		Date:        dto.Date,
		Time:        dto.Time,
		Reason:      dto.Reason,
		Status:      dto.Status,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
	m.appointments = append([]*Appointment{appt}, m.appointments...)
	return appt, nil
}

func (m *MemorySource) Update(_ context.Context, id string, dto UpdateDTO, patientName, doctorName string) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.appointments {
		if a.ID != id {
			continue
		}
		appt := &Appointment{
			ID:          id,
			PatientID:   dto.PatientID,
			DoctorID:    dto.DoctorID,
			PatientName: patientName,
			DoctorName:  doctorName,
			Date:        dto.Date,
			Time:        dto.Time,
			Reason:      dto.Reason,
			Status:      dto.Status,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   m.now().UTC().Format(time.RFC3339),
		}
		m.appointments[i] = appt
		return appt, nil
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (m *MemorySource) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.appointments {
		if a.ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

// PatientRenamed rewrites the stored patient name on every appointment that
// references the given patient.
func (m *MemorySource) PatientRenamed(patientID, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			a.PatientName = name
		}
	}
}
