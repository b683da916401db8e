package medication

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemorySource keeps prescriptions in process memory for offline use.
type MemorySource struct {
	mu            sync.Mutex
	prescriptions []*Prescription
	now           func() time.Time
}

func NewMemorySource(seed []*Prescription) *MemorySource {
	return &MemorySource{prescriptions: seed, now: time.Now}
}

func (m *MemorySource) List(_ context.Context) ([]*Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Prescription, len(m.prescriptions))
	copy(out, m.prescriptions)
	return out, nil
}

func (m *MemorySource) ListByPatient(_ context.Context, patientID string) ([]*Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Prescription
	for _, p := range m.prescriptions {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemorySource) Get(_ context.Context, id string) (*Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.prescriptions {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("prescription %s not found", id)
}

func (m *MemorySource) Create(_ context.Context, dto CreateDTO, patientName, doctorName string) (*Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp := m.now().UTC().Format(time.RFC3339)
	rx := &Prescription{
		ID:           uuid.New().String(),
		PatientID:    dto.PatientID,
		DoctorID:     dto.DoctorID,
		PatientName:  patientName,
		DoctorName:   doctorName,
		Diagnosis:    dto.Diagnosis,
		Medications:  dto.Medications,
		Instructions: dto.Instructions,
		Date:         dto.Date,
		Attachments:  dto.Attachments,
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}
	m.prescriptions = append([]*Prescription{rx}, m.prescriptions...)
	return rx, nil
}

func (m *MemorySource) Update(_ context.Context, id string, dto UpdateDTO, patientName, doctorName string) (*Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.prescriptions {
		if p.ID != id {
			continue
		}
		rx := &Prescription{
			ID:           id,
			PatientID:    dto.PatientID,
			DoctorID:     dto.DoctorID,
			PatientName:  patientName,
			DoctorName:   doctorName,
			Diagnosis:    dto.Diagnosis,
			Medications:  dto.Medications,
			Instructions: dto.Instructions,
			Date:         dto.Date,
			Attachments:  dto.Attachments,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    m.now().UTC().Format(time.RFC3339),
		}
		m.prescriptions[i] = rx
		return rx, nil
	}
	return nil, fmt.Errorf("prescription %s not found", id)
}

func (m *MemorySource) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.prescriptions {
		if p.ID == id {
			m.prescriptions = append(m.prescriptions[:i], m.prescriptions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("prescription %s not found", id)
}

// PatientRenamed rewrites the stored patient name on every prescription
// that references the given patient.
func (m *MemorySource) PatientRenamed(patientID, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.prescriptions {
		if p.PatientID == patientID {
			p.PatientName = name
		}
	}
}
