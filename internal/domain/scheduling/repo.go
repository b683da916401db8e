package scheduling

import "context"

// DataSource is the strategy the appointments controller mutates through.
// patientName and doctorName are the denormalized display names resolved by
// the caller from the loaded reference collections; the remote source
// ignores them (the server re-derives), the in-memory source stores them.
type DataSource interface {
	List(ctx context.Context) ([]*Appointment, error)
	Get(ctx context.Context, id string) (*Appointment, error)
	Create(ctx context.Context, dto CreateDTO, patientName, doctorName string) (*Appointment, error)
	Update(ctx context.Context, id string, dto UpdateDTO, patientName, doctorName string) (*Appointment, error)
	Delete(ctx context.Context, id string) error
}
