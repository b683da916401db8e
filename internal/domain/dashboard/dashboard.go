// Package dashboard aggregates the landing-screen statistics and the
// recent-appointments feed.
package dashboard

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hms/console/internal/domain/scheduling"
	"github.com/hms/console/internal/platform/gateway"
	"github.com/hms/console/internal/platform/notification"
	"github.com/hms/console/internal/platform/screen"
)

// Stats is the wire shape of the dashboard counters.
type Stats struct {
	TotalPatients       int `json:"totalPatients"`
	TotalAppointments   int `json:"totalAppointments"`
	ActivePrescriptions int `json:"activePrescriptions"`
	TodayAppointments   int `json:"todayAppointments"`
}

// DataSource supplies the dashboard counters.
type DataSource interface {
	Stats(ctx context.Context) (*Stats, error)
}

// RemoteSource reads the counters from the hospital API.
type RemoteSource struct {
	gw *gateway.Client
}

func NewRemoteSource(gw *gateway.Client) *RemoteSource {
	return &RemoteSource{gw: gw}
}

func (r *RemoteSource) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := r.gw.GetJSON(ctx, "/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MemorySource serves fixed counters in offline mode.
type MemorySource struct {
	stats Stats
}

func NewMemorySource(stats Stats) *MemorySource {
	return &MemorySource{stats: stats}
}

func (m *MemorySource) Stats(_ context.Context) (*Stats, error) {
	cp := m.stats
	return &cp, nil
}

// recentLimit caps the recent-appointments feed.
const recentLimit = 5

// Fallback supplies the offline dataset used when the initial load fails.
type Fallback struct {
	Stats        Stats
	Appointments []*scheduling.Appointment
}

// Controller drives the dashboard screen: the counters plus the most
// recent appointments.
type Controller struct {
	src      DataSource
	apptSrc  scheduling.DataSource
	notify   notification.Notifier
	fallback func() Fallback
	logger   zerolog.Logger

	state  screen.State
	stats  *Stats
	recent []*scheduling.Appointment
}

func NewController(src DataSource, apptSrc scheduling.DataSource, notify notification.Notifier, fallback func() Fallback, logger zerolog.Logger) *Controller {
	return &Controller{
		src:      src,
		apptSrc:  apptSrc,
		notify:   notify,
		fallback: fallback,
		logger:   logger.With().Str("screen", "dashboard").Logger(),
	}
}

func (c *Controller) State() screen.State { return c.state }

// Stats returns the loaded counters, nil before a Load.
func (c *Controller) Stats() *Stats { return c.stats }

// Recent returns up to five appointments, newest first in source order.
func (c *Controller) Recent() []*scheduling.Appointment { return c.recent }

// Load fetches the counters and the appointment feed together. A failure
// in either fetch abandons the batch and falls back to the offline dataset
// with a single error notification.
func (c *Controller) Load(ctx context.Context) {
	c.state = screen.StateLoading

	var (
		stats        *Stats
		appointments []*scheduling.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = c.src.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = c.apptSrc.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Error().Err(err).Msg("failed to load dashboard")
		fb := c.fallback()
		c.stats = &fb.Stats
		c.recent = clip(fb.Appointments)
		c.notify.Error(gateway.ErrorMessage(err))
		c.state = screen.StateReady
		return
	}

	c.stats = stats
	c.recent = clip(appointments)
	c.state = screen.StateReady
}

func clip(appointments []*scheduling.Appointment) []*scheduling.Appointment {
	if len(appointments) > recentLimit {
		return appointments[:recentLimit]
	}
	return appointments
}
