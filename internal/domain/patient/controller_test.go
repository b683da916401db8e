package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/console/internal/platform/confirm"
	"github.com/hms/console/internal/platform/notification"
	"github.com/hms/console/internal/platform/screen"
)

type failingSource struct{}

func (failingSource) List(context.Context) ([]*Patient, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Get(context.Context, string) (*Patient, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Create(context.Context, CreateDTO) (*Patient, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Update(context.Context, string, UpdateDTO) (*Patient, error) {
	return nil, errors.New("connection refused")
}
func (failingSource) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func seed() []*Patient {
	return []*Patient{
		{ID: "1", Name: "John Doe", Age: 35, Gender: GenderMale, Contact: "+1234567890", Address: "123 Main St"},
		{ID: "2", Name: "Jane Smith", Age: 28, Gender: GenderFemale, Contact: "+1234567891", Address: "456 Oak Ave"},
	}
}

func newTestController(src DataSource, rec *notification.Recorder, confirmer confirm.Confirmer) *Controller {
	return NewController(src, rec, confirmer, seed, zerolog.Nop())
}

func TestLoadFallsBackOnFetchFailure(t *testing.T) {
	rec := notification.NewRecorder()
	ctrl := newTestController(failingSource{}, rec, confirm.Static(true))

	ctrl.Load(context.Background())

	if ctrl.State() != screen.StateReady {
		t.Fatalf("expected ready state, got %s", ctrl.State())
	}
	if len(ctrl.Patients()) != 2 {
		t.Fatalf("expected fallback patients, got %d", len(ctrl.Patients()))
	}
	if len(rec.Errors()) != 1 {
		t.Fatalf("expected exactly one error notification, got %v", rec.Errors())
	}
}

func TestOfflineCreateFlow(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seed())
	ctrl := newTestController(src, rec, confirm.Static(true))
	ctrl.Load(context.Background())

	form := CreateDTO{
		Name: "Alice Brown", Age: 44, Gender: GenderFemale,
		Contact: "+1234567894", Address: "77 Birch Ln",
	}
	errs, err := ctrl.Submit(context.Background(), form, "")
	if err != nil || !errs.Valid() {
		t.Fatalf("submit failed: errs=%v err=%v", errs, err)
	}

	patients := ctrl.Patients()
	if len(patients) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(patients))
	}
	created := patients[0]
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Fatalf("fresh record should share timestamps: %s vs %s", created.CreatedAt, created.UpdatedAt)
	}
	if got := rec.Successes(); len(got) != 1 || got[0] != "Patient added successfully" {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

func TestSubmitValidationAbortsBeforeMutation(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seed())
	ctrl := newTestController(src, rec, confirm.Static(true))
	ctrl.Load(context.Background())

	errs, err := ctrl.Submit(context.Background(), CreateDTO{Age: -1}, "")
	if err != nil {
		t.Fatalf("field errors must not be errors: %v", err)
	}
	for _, field := range []string{"name", "age", "contact", "address"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error on %q, got %v", field, errs)
		}
	}
	if list, _ := src.List(context.Background()); len(list) != 2 {
		t.Fatal("rejected form must not mutate the collection")
	}
	if len(rec.All()) != 0 {
		t.Fatalf("rejected form must not notify, got %v", rec.All())
	}
}

func TestUpdateFiresRenameListeners(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seed())
	ctrl := newTestController(src, rec, confirm.Static(true))

	var gotID, gotName string
	ctrl.OnRename(func(patientID, name string) {
		gotID, gotName = patientID, name
	})
	ctrl.Load(context.Background())

	form := CreateDTO{
		Name: "Johnathan Doe", Age: 35, Gender: GenderMale,
		Contact: "+1234567890", Address: "123 Main St",
	}
	if _, err := ctrl.Submit(context.Background(), form, "1"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if gotID != "1" || gotName != "Johnathan Doe" {
		t.Fatalf("rename listener not fired: id=%q name=%q", gotID, gotName)
	}
}

func TestUpdateWithoutRenameIsSilentToListeners(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seed())
	ctrl := newTestController(src, rec, confirm.Static(true))

	fired := false
	ctrl.OnRename(func(string, string) { fired = true })
	ctrl.Load(context.Background())

	form := CreateDTO{
		Name: "John Doe", Age: 36, Gender: GenderMale,
		Contact: "+1234567890", Address: "123 Main St",
	}
	if _, err := ctrl.Submit(context.Background(), form, "1"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if fired {
		t.Fatal("listener must not fire when the name is unchanged")
	}
}

func TestDeleteDeclinedIsNoOp(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seed())
	ctrl := newTestController(src, rec, confirm.Static(false))
	ctrl.Load(context.Background())

	if err := ctrl.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("declined delete must not error: %v", err)
	}
	if len(ctrl.Patients()) != 2 {
		t.Fatal("declined delete must leave the collection unchanged")
	}
	if len(rec.All()) != 0 {
		t.Fatalf("declined delete must not notify, got %v", rec.All())
	}
}

func TestVisibleSearch(t *testing.T) {
	rec := notification.NewRecorder()
	src := NewMemorySource(seed())
	ctrl := newTestController(src, rec, confirm.Static(true))
	ctrl.Load(context.Background())

	ctrl.SetSearch("JANE")
	if got := ctrl.Visible(); len(got) != 1 || got[0].Name != "Jane Smith" {
		t.Fatalf("case-insensitive search failed: %v", got)
	}

	ctrl.SetSearch("oak")
	if got := ctrl.Visible(); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("address search failed: %v", got)
	}

	ctrl.SetSearch("")
	if got := ctrl.Visible(); len(got) != 2 {
		t.Fatalf("empty query must return everything, got %d", len(got))
	}
}
