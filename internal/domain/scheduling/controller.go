package scheduling

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
	Appointments []*Appointment
	Patients     []*patient.Patient
	Doctors      []*doctor.Doctor
}

// Controller drives the appointment screen. It owns the appointment
// collection plus the patient and doctor collections needed to resolve
// references, a status filter and a free-text search, and the screen state.
type Controller struct {
	src        DataSource
	patientSrc patient.DataSource
	doctorSrc  doctor.DataSource
	notify     notification.Notifier
	confirm    confirm.Confirmer
	fallback   func() Fallback
	logger     zerolog.Logger

	state        screen.State
	appointments []*Appointment
	patients     []*patient.Patient
	doctors      []*doctor.Doctor
	searchQuery  string
	statusFilter string
}

func NewController(src DataSource, patientSrc patient.DataSource, doctorSrc doctor.DataSource, notify notification.Notifier, confirmer confirm.Confirmer, fallback func() Fallback, logger zerolog.Logger) *Controller {
	return &Controller{
		src:        src,
		patientSrc: patientSrc,
		doctorSrc:  doctorSrc,
		notify:     notify,
		confirm:    confirmer,
		fallback:   fallback,
		logger:     logger.With().Str("screen", "appointments").Logger(),
	}
}

func (c *Controller) State() screen.State { return c.state }

// Patients returns the loaded patient collection used for reference
// resolution.
func (c *Controller) Patients() []*patient.Patient { return c.patients }

// Doctors returns the loaded doctor collection used for reference
// resolution.
func (c *Controller) Doctors() []*doctor.Doctor { return c.doctors }

// Load fetches the appointment, patient and doctor collections together.
// A failure in any fetch abandons the batch and falls back to the offline
// dataset with a single error notification.
func (c *Controller) Load(ctx context.Context) {
	c.state = screen.StateLoading

	var (
		appointments []*Appointment
		patients     []*patient.Patient
		doctors      []*doctor.Doctor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = c.src.List(gctx)
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
		c.logger.Error().Err(err).Msg("failed to load appointments")
		fb := c.fallback()
		c.appointments = fb.Appointments
		c.patients = fb.Patients
		c.doctors = fb.Doctors
		c.notify.Error(gateway.ErrorMessage(err))
		c.state = screen.StateReady
		return
	}

	c.appointments = appointments
	c.patients = patients
	c.doctors = doctors
	c.state = screen.StateReady
}

func (c *Controller) SetSearch(query string)  { c.searchQuery = query }
func (c *Controller) SetStatus(status string) { c.statusFilter = status }

// Visible returns the appointments matching the status filter and the search
// query. The search matches patient name, doctor name and reason, case
// insensitively. Empty filters pass everything through.
func (c *Controller) Visible() []*Appointment {
	out := c.appointments
	if c.statusFilter != "" {
		filtered := make([]*Appointment, 0, len(out))
		for _, a := range out {
			if a.Status == c.statusFilter {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}
	if c.searchQuery == "" {
		return out
	}
	q := strings.ToLower(c.searchQuery)
	filtered := make([]*Appointment, 0, len(out))
	for _, a := range out {
		if strings.Contains(strings.ToLower(a.PatientName), q) ||
			strings.Contains(strings.ToLower(a.DoctorName), q) ||
			strings.Contains(strings.ToLower(a.Reason), q) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Submit validates the form and creates or updates an appointment. The
// patient and doctor references must resolve against the loaded collections.
// Field errors abort before any mutation.
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
			c.logger.Error().Err(err).Str("id", editingID).Msg("failed to update appointment")
			c.notify.Error(gateway.ErrorMessage(err))
			return nil, err
		}
		c.refresh(ctx)
		c.notify.Success("Appointment updated successfully")
		return nil, nil
	}

	if _, err := c.src.Create(ctx, form, patientName, doctorName); err != nil {
		c.logger.Error().Err(err).Msg("failed to create appointment")
		c.notify.Error(gateway.ErrorMessage(err))
		return nil, err
	}
	c.refresh(ctx)
	c.notify.Success("Appointment scheduled successfully")
	return nil, nil
}

// Delete removes an appointment after confirmation. A declined confirmation
// is a no-op.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.state = screen.StateAwaitingConfirmation
	ok := c.confirm.Confirm("Are you sure you want to delete this appointment?")
	c.state = screen.StateReady
	if !ok {
		return nil
	}

	if err := c.src.Delete(ctx, id); err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("failed to delete appointment")
		c.notify.Error(gateway.ErrorMessage(err))
		return err
	}
	c.refresh(ctx)
	c.notify.Success("Appointment deleted successfully")
	return nil
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
	appointments, err := c.src.List(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to refresh appointments")
		return
	}
	c.appointments = appointments
}
