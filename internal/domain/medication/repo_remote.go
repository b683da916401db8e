package medication

import (
	"context"

	"github.com/hms/console/internal/platform/gateway"
)

// RemoteSource is the typed CRUD façade over the hospital API.
type RemoteSource struct {
	gw *gateway.Client
}

func NewRemoteSource(gw *gateway.Client) *RemoteSource {
	return &RemoteSource{gw: gw}
}

func (r *RemoteSource) List(ctx context.Context) ([]*Prescription, error) {
	var out []*Prescription
	if err := r.gw.GetJSON(ctx, "/prescriptions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteSource) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	var out []*Prescription
	if err := r.gw.GetJSON(ctx, "/prescriptions/patient/"+patientID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteSource) Get(ctx context.Context, id string) (*Prescription, error) {
	var out Prescription
	if err := r.gw.GetJSON(ctx, "/prescriptions/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Create(ctx context.Context, dto CreateDTO, _, _ string) (*Prescription, error) {
	var out Prescription
	if err := r.gw.PostJSON(ctx, "/prescriptions", dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Update(ctx context.Context, id string, dto UpdateDTO, _, _ string) (*Prescription, error) {
	var out Prescription
	if err := r.gw.PutJSON(ctx, "/prescriptions/"+id, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, "/prescriptions/"+id)
}
