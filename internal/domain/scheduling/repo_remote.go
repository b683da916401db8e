package scheduling

import (
	"context"

	"github.com/hms/console/internal/platform/gateway"
)

// RemoteSource is the typed CRUD façade over the hospital API. Denormalized
// names are server-derived, so the resolved names are dropped here.
type RemoteSource struct {
	gw *gateway.Client
}

func NewRemoteSource(gw *gateway.Client) *RemoteSource {
	return &RemoteSource{gw: gw}
}

func (r *RemoteSource) List(ctx context.Context) ([]*Appointment, error) {
	var out []*Appointment
	if err := r.gw.GetJSON(ctx, "/appointments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteSource) Get(ctx context.Context, id string) (*Appointment, error) {
	var out Appointment
	if err := r.gw.GetJSON(ctx, "/appointments/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Create(ctx context.Context, dto CreateDTO, _, _ string) (*Appointment, error) {
	var out Appointment
	if err := r.gw.PostJSON(ctx, "/appointments", dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Update(ctx context.Context, id string, dto UpdateDTO, _, _ string) (*Appointment, error) {
	var out Appointment
	if err := r.gw.PutJSON(ctx, "/appointments/"+id, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, "/appointments/"+id)
}
