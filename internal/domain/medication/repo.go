package medication

import "context"

// DataSource abstracts where prescriptions come from. Create and Update
// receive the resolved patient and doctor names; the remote source ignores
// them (the server re-derives), the in-memory source stores them.
type DataSource interface {
	List(ctx context.Context) ([]*Prescription, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error)
	Get(ctx context.Context, id string) (*Prescription, error)
	Create(ctx context.Context, dto CreateDTO, patientName, doctorName string) (*Prescription, error)
	Update(ctx context.Context, id string, dto UpdateDTO, patientName, doctorName string) (*Prescription, error)
	Delete(ctx context.Context, id string) error
}
