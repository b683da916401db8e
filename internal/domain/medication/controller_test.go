package medication

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/console/internal/domain/doctor"
	"github.com/hms/console/internal/domain/patient"
	"github.com/hms/console/internal/platform/confirm"
	"github.com/hms/console/internal/platform/notification"
	"github.com/hms/console/internal/platform/screen"
)

type failingSource struct{}

func (failingSource) List(context.Context) ([]*Prescription, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) ListByPatient(context.Context, string) ([]*Prescription, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Get(context.Context, string) (*Prescription, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Create(context.Context, CreateDTO, string, string) (*Prescription, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Update(context.Context, string, UpdateDTO, string, string) (*Prescription, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func seedPatients() []*patient.Patient {
	return []*patient.Patient{
		{ID: "p1", Name: "John Doe"},
		{ID: "p2", Name: "Jane Smith"},
	}
}

func seedDoctors() []*doctor.Doctor {
	return []*doctor.Doctor{
		{ID: "d1", Name: "Dr. Lisa Anderson", Specialization: "Neurology"},
	}
}

func seedPrescriptions() []*Prescription {
	return []*Prescription{
		{
			ID: "rx1", PatientID: "p1", PatientName: "John Doe",
			DoctorID: "d1", DoctorName: "Dr. Lisa Anderson",
			Diagnosis: "Migraine", Medications: "Sumatriptan 50mg as needed",
			Date: "2025-03-01",
		},
		{
			ID: "rx2", PatientID: "p2", PatientName: "Jane Smith",
			DoctorID: "d1", DoctorName: "Dr. Lisa Anderson",
			Diagnosis: "Hypertension", Medications: "Lisinopril 10mg daily",
			Date: "2025-03-02",
		},
	}
}

func newTestController(src DataSource, rec *notification.Recorder, confirmer confirm.Confirmer) *Controller {
	return NewController(
		src,
		patient.NewMemorySource(seedPatients()),
		doctor.NewMemorySource(seedDoctors()),
		rec,
		confirmer,
		func() Fallback {
			return Fallback{
				Prescriptions: seedPrescriptions(),
				Patients:      seedPatients(),
				Doctors:       seedDoctors(),
			}
		},
		zerolog.Nop(),
	)
}

func TestLoadFallsBackOnFetchFailure(t *testing.T) {
	rec := notification.NewRecorder()
	ctrl := newTestController(failingSource{}, rec, confirm.Static(true))

	ctrl.Load(context.Background())

	if ctrl.State() != screen.StateReady {
		t.Fatalf("expected ready state, got %s", ctrl.State())
	}
	if len(ctrl.Visible()) != 2 {
		t.Fatalf("expected fallback prescriptions, got %d", len(ctrl.Visible()))
	}
	if len(rec.Errors()) != 1 {
		t.Fatalf("expected exactly one error notification, got %v", rec.Errors())
	}
}

func TestPatientFilterScopesLoad(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seedPrescriptions())
	ctrl := newTestController(src, rec, confirm.Static(true))

	ctrl.SetPatientFilter("p1")
	ctrl.Load(context.Background())

	visible := ctrl.Visible()
	if len(visible) != 1 || visible[0].PatientID != "p1" {
		t.Fatalf("patient filter failed: %v", visible)
	}
}

func TestOfflineCreateResolvesNames(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(nil)
	ctrl := newTestController(src, rec, confirm.Static(true))
	ctrl.Load(context.Background())

	form := CreateDTO{
		PatientID: "p2", DoctorID: "d1",
		Diagnosis: "Seasonal allergies", Medications: "Loratadine 10mg daily",
		Date: "2025-04-01",
	}
	errs, err := ctrl.Submit(context.Background(), form, "")
	if err != nil || !errs.Valid() {
		t.Fatalf("submit failed: errs=%v err=%v", errs, err)
	}

	visible := ctrl.Visible()
	if len(visible) != 1 {
		t.Fatalf("expected 1 prescription, got %d", len(visible))
	}
	if visible[0].PatientName != "Jane Smith" || visible[0].DoctorName != "Dr. Lisa Anderson" {
		t.Fatalf("names not resolved: %+v", visible[0])
	}
	if got := rec.Successes(); len(got) != 1 || got[0] != "Prescription added successfully" {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

func TestSubmitRejectsDanglingReferences(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(nil)
	ctrl := newTestController(src, rec, confirm.Static(true))
	ctrl.Load(context.Background())

	form := CreateDTO{
		PatientID: "ghost", DoctorID: "d1",
		Diagnosis: "Flu", Medications: "Rest", Date: "2025-04-01",
	}
	errs, err := ctrl.Submit(context.Background(), form, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := errs["patientId"]; !ok {
		t.Fatalf("expected patientId error, got %v", errs)
	}
	if list, _ := src.List(context.Background()); len(list) != 0 {
		t.Fatal("rejected form must not mutate the collection")
	}
}

func TestDeleteDeclinedIsNoOp(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seedPrescriptions())
	ctrl := newTestController(src, rec, confirm.Static(false))
	ctrl.Load(context.Background())

	if err := ctrl.Delete(context.Background(), "rx1"); err != nil {
		t.Fatalf("declined delete must not error: %v", err)
	}
	if len(ctrl.Visible()) != 2 {
		t.Fatal("declined delete must leave the collection unchanged")
	}
	if len(rec.All()) != 0 {
		t.Fatalf("declined delete must not notify, got %v", rec.All())
	}
}

func TestVisibleSearch(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seedPrescriptions())
	ctrl := newTestController(src, rec, confirm.Static(true))
	ctrl.Load(context.Background())

	ctrl.SetSearch("lisinopril")
	if got := ctrl.Visible(); len(got) != 1 || got[0].ID != "rx2" {
		t.Fatalf("search by medications failed: %v", got)
	}

	ctrl.SetSearch("migraine")
	if got := ctrl.Visible(); len(got) != 1 || got[0].ID != "rx1" {
		t.Fatalf("search by diagnosis failed: %v", got)
	}

	ctrl.SetSearch("anderson")
	if got := ctrl.Visible(); len(got) != 2 {
		t.Fatalf("search by doctor name failed: %v", got)
	}
}
