package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/console/internal/domain/scheduling"
	"github.com/hms/console/internal/platform/notification"
	"github.com/hms/console/internal/platform/screen"
)

type failingStats struct{}

func (failingStats) Stats(context.Context) (*Stats, error) {
	return nil, errors.New("connection refused")
}

func manyAppointments(n int) []*scheduling.Appointment {
	out := make([]*scheduling.Appointment, n)
	for i := range out {
		out[i] = &scheduling.Appointment{ID: fmt.Sprintf("a%d", i), Status: scheduling.StatusScheduled}
	}
	return out
}

func fallbackData() Fallback {
	return Fallback{
		Stats:        Stats{TotalPatients: 124, TotalAppointments: 48, ActivePrescriptions: 87, TodayAppointments: 12},
		Appointments: manyAppointments(3),
	}
}

func TestLoadClipsRecentFeed(t *testing.T) {
	rec := notification.NewRecorder()
	ctrl := NewController(
		NewMemorySource(Stats{TotalPatients: 10}),
		scheduling.NewMemorySource(manyAppointments(8)),
		rec,
		fallbackData,
		zerolog.Nop(),
	)

	ctrl.Load(context.Background())

	if ctrl.State() != screen.StateReady {
		t.Fatalf("expected ready state, got %s", ctrl.State())
	}
	if got := ctrl.Stats(); got == nil || got.TotalPatients != 10 {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if len(ctrl.Recent()) != 5 {
		t.Fatalf("expected feed clipped to 5, got %d", len(ctrl.Recent()))
	}
	if len(rec.All()) != 0 {
		t.Fatalf("successful load must not notify, got %v", rec.All())
	}
}

func TestLoadFallsBackOnFetchFailure(t *testing.T) {
	rec := notification.NewRecorder()
	ctrl := NewController(
		failingStats{},
		scheduling.NewMemorySource(manyAppointments(2)),
		rec,
		fallbackData,
		zerolog.Nop(),
	)

	ctrl.Load(context.Background())

	if got := ctrl.Stats(); got == nil || got.TotalPatients != 124 {
		t.Fatalf("expected fallback stats, got %+v", got)
	}
	if len(ctrl.Recent()) != 3 {
		t.Fatalf("expected fallback feed, got %d", len(ctrl.Recent()))
	}
	if len(rec.Errors()) != 1 {
		t.Fatalf("expected exactly one error notification, got %v", rec.Errors())
	}
}
