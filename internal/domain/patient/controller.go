package patient

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hms/console/internal/platform/confirm"
	"github.com/hms/console/internal/platform/forms"
	"github.com/hms/console/internal/platform/gateway"
	"github.com/hms/console/internal/platform/notification"
	"github.com/hms/console/internal/platform/screen"
)

// RenameListener is notified when a patient's name changes, so holders of
// denormalized name copies can refresh them.
type RenameListener func(patientID, name string)

// Controller owns the patients screen: the loaded collection, the search
// projection, and the submit/delete life-cycle.
type Controller struct {
	src      DataSource
	notify   notification.Notifier
	confirm  confirm.Confirmer
	fallback func() []*Patient
	logger   zerolog.Logger

	state       screen.State
	patients    []*Patient
	searchQuery string
	onRename    []RenameListener
}

// NewController wires a patients screen controller. fallback supplies the
// offline dataset used when the initial fetch fails.
func NewController(src DataSource, notify notification.Notifier, confirmer confirm.Confirmer, fallback func() []*Patient, logger zerolog.Logger) *Controller {
	return &Controller{
		src:      src,
		notify:   notify,
		confirm:  confirmer,
		fallback: fallback,
		logger:   logger,
		state:    screen.StateLoading,
	}
}

// OnRename registers a listener invoked after a successful update that
// changed the patient's name.
func (c *Controller) OnRename(l RenameListener) {
	c.onRename = append(c.onRename, l)
}

func (c *Controller) State() screen.State { return c.state }

// Patients returns the loaded collection in source order.
func (c *Controller) Patients() []*Patient { return c.patients }

// Load fetches the collection. On failure it reports the error once and
// falls back to the offline dataset rather than leaving the screen blank.
func (c *Controller) Load(ctx context.Context) {
	c.state = screen.StateLoading
	list, err := c.src.List(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("patient load failed, using offline dataset")
		c.notify.Error(gateway.ErrorMessage(err))
		c.patients = c.fallback()
		c.state = screen.StateReady
		return
	}
	c.patients = list
	c.state = screen.StateReady
}

// SetSearch sets the query the Visible projection filters on.
func (c *Controller) SetSearch(query string) {
	c.searchQuery = query
}

// Visible re-derives the filtered projection of the loaded collection.
// Matching is a case-insensitive substring test across name, contact, and
// address; an empty query returns the collection unchanged.
func (c *Controller) Visible() []*Patient {
	query := strings.ToLower(strings.TrimSpace(c.searchQuery))
	if query == "" {
		return c.patients
	}
	var out []*Patient
	for _, p := range c.patients {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Contact), query) ||
			strings.Contains(strings.ToLower(p.Address), query) {
			out = append(out, p)
		}
	}
	return out
}

// Submit validates the form and applies the mutation. A non-empty Errors
// map aborts with no side effect; a data-source failure is reported and
// returned with the collection left unchanged. editingID selects update
// over create.
func (c *Controller) Submit(ctx context.Context, form CreateDTO, editingID string) (forms.Errors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return errs, nil
	}

	c.state = screen.StateSubmitting
	defer func() { c.state = screen.StateReady }()

	if editingID != "" {
		previousName := ""
		for _, p := range c.patients {
			if p.ID == editingID {
				previousName = p.Name
				break
			}
		}
		updated, err := c.src.Update(ctx, editingID, form)
		if err != nil {
			c.notify.Error(gateway.ErrorMessage(err))
			return nil, err
		}
		c.refresh(ctx)
		c.notify.Success("Patient updated successfully")
		if previousName != "" && previousName != updated.Name {
			for _, l := range c.onRename {
				l(updated.ID, updated.Name)
			}
		}
		return nil, nil
	}

	if _, err := c.src.Create(ctx, form); err != nil {
		c.notify.Error(gateway.ErrorMessage(err))
		return nil, err
	}
	c.refresh(ctx)
	c.notify.Success("Patient added successfully")
	return nil, nil
}

// Delete asks for confirmation, then removes the patient. A declined
// confirmation leaves the collection unchanged and raises nothing.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.state = screen.StateAwaitingConfirmation
	ok := c.confirm.Confirm("Are you sure you want to delete this patient?")
	c.state = screen.StateReady
	if !ok {
		return nil
	}
	if err := c.src.Delete(ctx, id); err != nil {
		c.notify.Error(gateway.ErrorMessage(err))
		return err
	}
	c.refresh(ctx)
	c.notify.Success("Patient deleted successfully")
	return nil
}

// refresh re-fetches the collection after a mutation so the screen shows
// the source's materialized state. A refresh failure keeps the previous
// collection; the fallback dataset is only for the initial load.
func (c *Controller) refresh(ctx context.Context) {
	list, err := c.src.List(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("patient refresh failed, keeping stale collection")
		c.notify.Error(gateway.ErrorMessage(err))
		return
	}
	c.patients = list
}
