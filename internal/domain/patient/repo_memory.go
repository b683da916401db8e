package patient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemorySource keeps the collection in memory for offline mode. It
// synthesizes ids, stamps timestamps, and splices the backing slice the
// way the remote side would materialize records.
type MemorySource struct {
	mu       sync.Mutex
	patients []*Patient
	now      func() time.Time
}

// NewMemorySource creates an in-memory source over the given seed
// collection. The seed slice is not retained.
func NewMemorySource(seed []*Patient) *MemorySource {
	m := &MemorySource{now: time.Now}
	m.patients = append(m.patients, seed...)
	return m
}

func (m *MemorySource) List(_ context.Context) ([]*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Patient, len(m.patients))
	copy(out, m.patients)
	return out, nil
}

func (m *MemorySource) Get(_ context.Context, id string) (*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("patient %s not found", id)
}

func (m *MemorySource) Create(_ context.Context, dto CreateDTO) (*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stamp := m.now().UTC().Format(time.RFC3339)
	p := &Patient{
		ID:             uuid.New().String(),
		Name:           dto.Name,
		Age:            dto.Age,
		Gender:         dto.Gender,
		Contact:        dto.Contact,
		Address:        dto.Address,
		MedicalHistory: dto.MedicalHistory,
		CreatedAt:      stamp,
		UpdatedAt:      stamp,
	}
	// Newest first, matching how the remote collection comes back.
	m.patients = append([]*Patient{p}, m.patients...)
	return p, nil
}

func (m *MemorySource) Update(_ context.Context, id string, dto UpdateDTO) (*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.patients {
		if p.ID != id {
			continue
		}
		updated := &Patient{
			ID:             p.ID,
			Name:           dto.Name,
			Age:            dto.Age,
			Gender:         dto.Gender,
			Contact:        dto.Contact,
			Address:        dto.Address,
			MedicalHistory: dto.MedicalHistory,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      m.now().UTC().Format(time.RFC3339),
		}
		m.patients[i] = updated
		return updated, nil
	}
	return nil, fmt.Errorf("patient %s not found", id)
}

func (m *MemorySource) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.patients {
		if p.ID == id {
			m.patients = append(m.patients[:i], m.patients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", id)
}
