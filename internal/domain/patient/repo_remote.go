package patient

import (
	"context"

	"github.com/hms/console/internal/platform/gateway"
)

// RemoteSource is the typed CRUD façade over the hospital API. It does not
// catch gateway failures; the controller is the error-reporting boundary.
type RemoteSource struct {
	gw *gateway.Client
}

func NewRemoteSource(gw *gateway.Client) *RemoteSource {
	return &RemoteSource{gw: gw}
}

func (r *RemoteSource) List(ctx context.Context) ([]*Patient, error) {
	var out []*Patient
	if err := r.gw.GetJSON(ctx, "/patients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteSource) Get(ctx context.Context, id string) (*Patient, error) {
	var out Patient
	if err := r.gw.GetJSON(ctx, "/patients/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Create(ctx context.Context, dto CreateDTO) (*Patient, error) {
	var out Patient
	if err := r.gw.PostJSON(ctx, "/patients", dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Update(ctx context.Context, id string, dto UpdateDTO) (*Patient, error) {
	var out Patient
	if err := r.gw.PutJSON(ctx, "/patients/"+id, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteSource) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, "/patients/"+id)
}
