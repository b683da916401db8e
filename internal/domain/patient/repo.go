package patient

import "context"

// DataSource is the strategy a controller mutates patients through. The
// remote implementation talks to the hospital API; the in-memory one backs
// offline mode. Both produce the same observable shapes.
type DataSource interface {
	List(ctx context.Context) ([]*Patient, error)
	Get(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, dto CreateDTO) (*Patient, error)
	Update(ctx context.Context, id string, dto UpdateDTO) (*Patient, error)
	Delete(ctx context.Context, id string) error
}
