package medication

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hms/console/internal/domain/doctor"
	"github.com/hms/console/internal/domain/patient"
	"github.com/hms/console/internal/platform/confirm"
	"github.com/hms/console/internal/platform/forms"
	"github.com/hms/console/internal/platform/gateway"
	"github.com/hms/console/internal/platform/notification"
	"github.com/hms/console/internal/platform/screen"
)

// Fallback supplies the offline dataset used when the initial load fails.
type Fallback struct {
	Prescriptions []*Prescription
	Patients      []*patient.Patient
	Doctors       []*doctor.Doctor
}

// Controller drives the prescriptions screen. An optional patient filter
// narrows loading to one patient's prescriptions.
type Controller struct {
	src        DataSource
	patientSrc patient.DataSource
	doctorSrc  doctor.DataSource
	notify     notification.Notifier
	confirm    confirm.Confirmer
	fallback   func() Fallback
	logger     zerolog.Logger

	state         screen.State
	prescriptions []*Prescription
	patients      []*patient.Patient
	doctors       []*doctor.Doctor
	searchQuery   string
	patientFilter string
}

func NewController(src DataSource, patientSrc patient.DataSource, doctorSrc doctor.DataSource, notify notification.Notifier, confirmer confirm.Confirmer, fallback func() Fallback, logger zerolog.Logger) *Controller {
	return &Controller{
		src:        src,
		patientSrc: patientSrc,
		doctorSrc:  doctorSrc,
		notify:     notify,
		confirm:    confirmer,
		fallback:   fallback,
		logger:     logger.With().Str("screen", "prescriptions").Logger(),
	}
}

func (c *Controller) State() screen.State { return c.state }

// Patients returns the loaded patient collection used for reference
// resolution.
func (c *Controller) Patients() []*patient.Patient { return c.patients }

// Doctors returns the loaded doctor collection used for reference
// resolution.
func (c *Controller) Doctors() []*doctor.Doctor { return c.doctors }

// SetPatientFilter restricts Load and refresh to one patient's
// prescriptions. An empty id loads everything.
func (c *Controller) SetPatientFilter(patientID string) {
	c.patientFilter = patientID
}

// Load fetches the prescription, patient and doctor collections together.
// A failure in any fetch abandons the batch and falls back to the offline
// dataset with a single error notification.
func (c *Controller) Load(ctx context.Context) {
	c.state = screen.StateLoading

	var (
		prescriptions []*Prescription
		patients      []*patient.Patient
		doctors       []*doctor.Doctor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prescriptions, err = c.list(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		patients, err = c.patientSrc.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		doctors, err = c.doctorSrc.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Error().Err(err).Msg("failed to load prescriptions")
		fb := c.fallback()
		c.prescriptions = fb.Prescriptions
		c.patients = fb.Patients
		c.doctors = fb.Doctors
		c.notify.Error(gateway.ErrorMessage(err))
		c.state = screen.StateReady
		return
	}

	c.prescriptions = prescriptions
	c.patients = patients
	c.doctors = doctors
	c.state = screen.StateReady
}

func (c *Controller) SetSearch(query string) { c.searchQuery = query }

// Visible returns the prescriptions matching the search query. The search
// matches patient name, doctor name, diagnosis and medications, case
// insensitively.
func (c *Controller) Visible() []*Prescription {
	if c.searchQuery == "" {
		return c.prescriptions
	}
	q := strings.ToLower(c.searchQuery)
	var out []*Prescription
	for _, p := range c.prescriptions {
		if strings.Contains(strings.ToLower(p.PatientName), q) ||
			strings.Contains(strings.ToLower(p.DoctorName), q) ||
			strings.Contains(strings.ToLower(p.Diagnosis), q) ||
			strings.Contains(strings.ToLower(p.Medications), q) {
			out = append(out, p)
		}
	}
	return out
}

// Submit validates the form and creates or updates a prescription. The
// patient and doctor references must resolve against the loaded
// collections.
func (c *Controller) Submit(ctx context.Context, form CreateDTO, editingID string) (forms.Errors, error) {
	errs := form.Validate()
	if !errs.Valid() {
		return errs, nil
	}

	patientName, ok := c.patientName(form.PatientID)
	if !ok {
		errs.Add("patientId", "Selected patient does not exist")
	}
	doctorName, ok := c.doctorName(form.DoctorID)
	if !ok {
		errs.Add("doctorId", "Selected doctor does not exist")
	}
	if !errs.Valid() {
		return errs, nil
	}

	c.state = screen.StateSubmitting
	defer func() { c.state = screen.StateReady }()

	if editingID != "" {
		if _, err := c.src.Update(ctx, editingID, form, patientName, doctorName); err != nil {
			c.logger.Error().Err(err).Str("id", editingID).Msg("failed to update prescription")
			c.notify.Error(gateway.ErrorMessage(err))
			return nil, err
		}
		c.refresh(ctx)
		c.notify.Success("Prescription updated successfully")
		return nil, nil
	}

	if _, err := c.src.Create(ctx, form, patientName, doctorName); err != nil {
		c.logger.Error().Err(err).Msg("failed to create prescription")
		c.notify.Error(gateway.ErrorMessage(err))
		return nil, err
	}
	c.refresh(ctx)
	c.notify.Success("Prescription added successfully")
	return nil, nil
}

// Delete removes a prescription after confirmation. A declined
// confirmation is a no-op.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.state = screen.StateAwaitingConfirmation
	ok := c.confirm.Confirm("Are you sure you want to delete this prescription?")
	c.state = screen.StateReady
	if !ok {
		return nil
	}

	if err := c.src.Delete(ctx, id); err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("failed to delete prescription")
		c.notify.Error(gateway.ErrorMessage(err))
		return err
	}
	c.refresh(ctx)
	c.notify.Success("Prescription deleted successfully")
	return nil
}

func (c *Controller) list(ctx context.Context) ([]*Prescription, error) {
	if c.patientFilter != "" {
		return c.src.ListByPatient(ctx, c.patientFilter)
	}
	return c.src.List(ctx)
}

func (c *Controller) patientName(id string) (string, bool) {
	for _, p := range c.patients {
		if p.ID == id {
			return p.Name, true
		}
	}
	return "", false
}

func (c *Controller) doctorName(id string) (string, bool) {
	for _, d := range c.doctors {
		if d.ID == id {
			return d.Name, true
		}
	}
	return "", false
}

func (c *Controller) refresh(ctx context.Context) {
	prescriptions, err := c.list(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to refresh prescriptions")
		return
	}
	c.prescriptions = prescriptions
}
