package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/hms/console/internal/config"
	"github.com/hms/console/internal/domain/dashboard"
	"github.com/hms/console/internal/domain/doctor"
	"github.com/hms/console/internal/domain/identity"
	"github.com/hms/console/internal/domain/medication"
	"github.com/hms/console/internal/domain/patient"
	"github.com/hms/console/internal/domain/scheduling"
	"github.com/hms/console/internal/platform/auth"
	"github.com/hms/console/internal/platform/confirm"
	"github.com/hms/console/internal/platform/gateway"
	"github.com/hms/console/internal/platform/notification"
	"github.com/hms/console/internal/platform/sandbox"
	"github.com/hms/console/pkg/datefmt"
)

// app is the composition root: one wired set of stores, sources and
// controllers shared by every command in a single invocation.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	sessions *auth.Store
	guard    *auth.Guard
	notify   notification.Notifier
	confirm  confirm.Confirmer

	identity      *identity.Service
	patients      *patient.Controller
	appointments  *scheduling.Controller
	prescriptions *medication.Controller
	dashboard     *dashboard.Controller
	doctorSrc     doctor.DataSource
}

func newApp(assumeYes bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	sessions := auth.NewStore(cfg.SessionDir)
	sessions.LoadPersisted()

	notify := notification.NewWriter(os.Stdout)
	var confirmer confirm.Confirmer = confirm.NewTerminal(os.Stdin, os.Stdout)
	if assumeYes {
		confirmer = confirm.Static(true)
	}

	gw := gateway.NewClient(cfg.APIBaseURL, sessions.Credential, logger)

	var (
		patientSrc patient.DataSource
		doctorSrc  doctor.DataSource
		apptSrc    scheduling.DataSource
		rxSrc      medication.DataSource
		statsSrc   dashboard.DataSource
	)
	var apptMem *scheduling.MemorySource
	var rxMem *medication.MemorySource
	if cfg.Offline {
		patientSrc = patient.NewMemorySource(sandbox.Patients())
		doctorSrc = doctor.NewMemorySource(sandbox.Doctors())
		apptMem = scheduling.NewMemorySource(sandbox.Appointments())
		rxMem = medication.NewMemorySource(sandbox.Prescriptions())
		apptSrc = apptMem
		rxSrc = rxMem
		stats := sandbox.Stats()
		stats.TodayAppointments = countToday(sandbox.Appointments())
		statsSrc = dashboard.NewMemorySource(stats)
	} else {
		patientSrc = patient.NewRemoteSource(gw)
		doctorSrc = doctor.NewRemoteSource(gw)
		apptSrc = scheduling.NewRemoteSource(gw)
		rxSrc = medication.NewRemoteSource(gw)
		statsSrc = dashboard.NewRemoteSource(gw)
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		guard:    auth.NewGuard(sessions),
		notify:   notify,
		confirm:  confirmer,
	}

	a.identity = identity.NewService(gw, sessions, notify, logger)
	a.patients = patient.NewController(patientSrc, notify, confirmer, sandbox.Patients, logger)
	a.appointments = scheduling.NewController(apptSrc, patientSrc, doctorSrc, notify, confirmer, func() scheduling.Fallback {
		return scheduling.Fallback{
			Appointments: sandbox.Appointments(),
			Patients:     sandbox.Patients(),
			Doctors:      sandbox.Doctors(),
		}
	}, logger)
	a.prescriptions = medication.NewController(rxSrc, patientSrc, doctorSrc, notify, confirmer, func() medication.Fallback {
		return medication.Fallback{
			Prescriptions: sandbox.Prescriptions(),
			Patients:      sandbox.Patients(),
			Doctors:       sandbox.Doctors(),
		}
	}, logger)
	a.dashboard = dashboard.NewController(statsSrc, apptSrc, notify, func() dashboard.Fallback {
		return dashboard.Fallback{Stats: sandbox.Stats(), Appointments: sandbox.Appointments()}
	}, logger)
	a.doctorSrc = doctorSrc

	// Offline mutations to patients must keep the denormalized names on
	// appointments and prescriptions in sync.
	if apptMem != nil {
		a.patients.OnRename(apptMem.PatientRenamed)
	}
	if rxMem != nil {
		a.patients.OnRename(rxMem.PatientRenamed)
	}

	return a, nil
}

func countToday(appointments []*scheduling.Appointment) int {
	n := 0
	for _, a := range appointments {
		if datefmt.IsToday(a.Date) {
			n++
		}
	}
	return n
}

// requireAuth gates protected commands. Offline mode is a local sandbox
// with no one to authenticate against, so the guard is skipped there.
func (a *app) requireAuth() error {
	if a.cfg.Offline {
		return nil
	}
	return a.guard.Require()
}
