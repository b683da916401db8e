// Package doctor owns the read-only Doctor entity. The client never
// creates, updates, or deletes doctors; it only lists them for reference
// and lets appointments and prescriptions point at them.
package doctor

import (
	"context"
	"fmt"

	"github.com/hms/console/internal/platform/gateway"
)

// Doctor is the wire shape of a doctor record.
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
}

// DataSource supplies the doctor collection.
type DataSource interface {
	List(ctx context.Context) ([]*Doctor, error)
	Get(ctx context.Context, id string) (*Doctor, error)
}

// RemoteSource reads doctors from the hospital API.
type RemoteSource struct {
	gw *gateway.Client
}

func NewRemoteSource(gw *gateway.Client) *RemoteSource {
	return &RemoteSource{gw: gw}
}

func (r *RemoteSource) List(ctx context.Context) ([]*Doctor, error) {
	var out []*Doctor
	if err := r.gw.GetJSON(ctx, "/doctors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteSource) Get(ctx context.Context, id string) (*Doctor, error) {
	var out Doctor
	if err := r.gw.GetJSON(ctx, "/doctors/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MemorySource serves a fixed doctor collection in offline mode.
type MemorySource struct {
	doctors []*Doctor
}

func NewMemorySource(seed []*Doctor) *MemorySource {
	m := &MemorySource{}
	m.doctors = append(m.doctors, seed...)
	return m
}

func (m *MemorySource) List(_ context.Context) ([]*Doctor, error) {
	out := make([]*Doctor, len(m.doctors))
	copy(out, m.doctors)
	return out, nil
}

func (m *MemorySource) Get(_ context.Context, id string) (*Doctor, error) {
	for _, d := range m.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("doctor %s not found", id)
}
