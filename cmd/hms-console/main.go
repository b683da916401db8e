package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hms/console/internal/domain/identity"
	"github.com/hms/console/internal/domain/medication"
	"github.com/hms/console/internal/domain/patient"
	"github.com/hms/console/internal/domain/scheduling"
	"github.com/hms/console/internal/platform/auth"
	"github.com/hms/console/internal/platform/forms"
	"github.com/hms/console/pkg/datefmt"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "hms-console",
		Short:         "Hospital Management Console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(patientsCmd())
	rootCmd.AddCommand(appointmentsCmd())
	rootCmd.AddCommand(prescriptionsCmd())
	rootCmd.AddCommand(doctorsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printFieldErrors renders a validation failure and returns a non-nil
// error so the process exits non-zero.
func printFieldErrors(errs forms.Errors) error {
	for field, msg := range errs {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
	}
	return fmt.Errorf("validation failed")
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			errs, err := a.identity.Login(cmd.Context(), identity.LoginForm{Email: email, Password: password})
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	return cmd
}

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			form := identity.RegisterForm{}
			form.Username, _ = cmd.Flags().GetString("username")
			form.Email, _ = cmd.Flags().GetString("email")
			form.Password, _ = cmd.Flags().GetString("password")
			form.FullName, _ = cmd.Flags().GetString("full-name")
			form.Role, _ = cmd.Flags().GetString("role")
			errs, err := a.identity.Register(cmd.Context(), form)
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	cmd.Flags().String("username", "", "Account username")
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	cmd.Flags().String("full-name", "", "Display name")
	cmd.Flags().String("role", "", "Account role (admin, doctor, staff)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			a.identity.Logout()
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			session := a.sessions.Current()
			if session == nil {
				return fmt.Errorf("not signed in")
			}
			id := session.Identity
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Username:\t%s\n", id.Username)
			fmt.Fprintf(w, "Email:\t%s\n", id.Email)
			if id.FullName != "" {
				fmt.Fprintf(w, "Name:\t%s\n", id.FullName)
			}
			fmt.Fprintf(w, "Role:\t%s\n", id.Role)
			if claims := auth.DecodeClaims(session.Credential); claims != nil && !claims.ExpiresAt.IsZero() {
				fmt.Fprintf(w, "Session expires:\t%s\n", claims.ExpiresAt.Local().Format("Jan 02, 2006 3:04 PM"))
			}
			return w.Flush()
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show hospital statistics and recent appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.dashboard.Load(cmd.Context())

			stats := a.dashboard.Stats()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Total Patients:\t%d\n", stats.TotalPatients)
			fmt.Fprintf(w, "Total Appointments:\t%d\n", stats.TotalAppointments)
			fmt.Fprintf(w, "Active Prescriptions:\t%d\n", stats.ActivePrescriptions)
			fmt.Fprintf(w, "Today's Appointments:\t%d\n", stats.TodayAppointments)
			w.Flush()

			if recent := a.dashboard.Recent(); len(recent) > 0 {
				fmt.Println("\nRecent Appointments")
				printAppointments(recent)
			}
			return nil
		},
	}
}

func doctorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Browse the doctor directory",
	}
	cmd.AddCommand(doctorsListCmd())
	return cmd
}

func doctorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			doctors, err := a.doctorSrc.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSPECIALIZATION\tCONTACT\tEMAIL")
			for _, d := range doctors {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Specialization, d.Contact, d.Email)
			}
			return w.Flush()
		},
	}
}

// -- patients --

func patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage patient records",
	}
	cmd.AddCommand(patientsListCmd())
	cmd.AddCommand(patientsAddCmd())
	cmd.AddCommand(patientsUpdateCmd())
	cmd.AddCommand(patientsDeleteCmd())
	return cmd
}

func patientsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.patients.Load(cmd.Context())
			search, _ := cmd.Flags().GetString("search")
			a.patients.SetSearch(search)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tAGE\tGENDER\tCONTACT\tADDRESS")
			for _, p := range a.patients.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Age, p.Gender, p.Contact, p.Address)
			}
			return w.Flush()
		},
	}
	cmd.Flags().String("search", "", "Filter by name, contact or address")
	return cmd
}

func patientFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Patient name")
	cmd.Flags().Int("age", 0, "Patient age")
	cmd.Flags().String("gender", "", "Gender (Male, Female, Other)")
	cmd.Flags().String("contact", "", "Contact number")
	cmd.Flags().String("address", "", "Home address")
	cmd.Flags().String("history", "", "Medical history")
}

func patientFormFromFlags(cmd *cobra.Command) patient.CreateDTO {
	form := patient.CreateDTO{}
	form.Name, _ = cmd.Flags().GetString("name")
	form.Age, _ = cmd.Flags().GetInt("age")
	form.Gender, _ = cmd.Flags().GetString("gender")
	form.Contact, _ = cmd.Flags().GetString("contact")
	form.Address, _ = cmd.Flags().GetString("address")
	form.MedicalHistory, _ = cmd.Flags().GetString("history")
	return form
}

func patientsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.patients.Load(cmd.Context())
			errs, err := a.patients.Submit(cmd.Context(), patientFormFromFlags(cmd), "")
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	patientFormFlags(cmd)
	return cmd
}

func patientsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.patients.Load(cmd.Context())
			errs, err := a.patients.Submit(cmd.Context(), patientFormFromFlags(cmd), args[0])
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	patientFormFlags(cmd)
	return cmd
}

func patientsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			a, err := newApp(yes)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.patients.Load(cmd.Context())
			return a.patients.Delete(cmd.Context(), args[0])
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

// -- appointments --

func printAppointments(appointments []*scheduling.Appointment) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATIENT\tDOCTOR\tDATE\tTIME\tSTATUS\tREASON")
	for _, a := range appointments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.PatientName, a.DoctorName,
			datefmt.FormatDate(a.Date), datefmt.FormatTime(a.Time), a.Status, a.Reason)
	}
	w.Flush()
}

func appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Manage appointments",
	}
	cmd.AddCommand(appointmentsListCmd())
	cmd.AddCommand(appointmentsAddCmd())
	cmd.AddCommand(appointmentsUpdateCmd())
	cmd.AddCommand(appointmentsDeleteCmd())
	return cmd
}

func appointmentsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.appointments.Load(cmd.Context())
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")
			a.appointments.SetSearch(search)
			a.appointments.SetStatus(status)
			printAppointments(a.appointments.Visible())
			return nil
		},
	}
	cmd.Flags().String("search", "", "Filter by patient, doctor or reason")
	cmd.Flags().String("status", "", "Filter by status")
	return cmd
}

func appointmentFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("patient", "", "Patient id")
	cmd.Flags().String("doctor", "", "Doctor id")
	cmd.Flags().String("date", "", "Appointment date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "Appointment time (HH:MM)")
	cmd.Flags().String("reason", "", "Visit reason")
	cmd.Flags().String("status", scheduling.StatusScheduled, "Appointment status")
}

func appointmentFormFromFlags(cmd *cobra.Command) scheduling.CreateDTO {
	form := scheduling.CreateDTO{}
	form.PatientID, _ = cmd.Flags().GetString("patient")
	form.DoctorID, _ = cmd.Flags().GetString("doctor")
	form.Date, _ = cmd.Flags().GetString("date")
	form.Time, _ = cmd.Flags().GetString("time")
	form.Reason, _ = cmd.Flags().GetString("reason")
	form.Status, _ = cmd.Flags().GetString("status")
	return form
}

func appointmentsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.appointments.Load(cmd.Context())
			errs, err := a.appointments.Submit(cmd.Context(), appointmentFormFromFlags(cmd), "")
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	appointmentFormFlags(cmd)
	return cmd
}

func appointmentsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.appointments.Load(cmd.Context())
			errs, err := a.appointments.Submit(cmd.Context(), appointmentFormFromFlags(cmd), args[0])
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	appointmentFormFlags(cmd)
	return cmd
}

func appointmentsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Cancel and remove an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			a, err := newApp(yes)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.appointments.Load(cmd.Context())
			return a.appointments.Delete(cmd.Context(), args[0])
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

// -- prescriptions --

func prescriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescriptions",
		Short: "Manage prescriptions",
	}
	cmd.AddCommand(prescriptionsListCmd())
	cmd.AddCommand(prescriptionsAddCmd())
	cmd.AddCommand(prescriptionsUpdateCmd())
	cmd.AddCommand(prescriptionsDeleteCmd())
	return cmd
}

func prescriptionsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			patientID, _ := cmd.Flags().GetString("patient")
			a.prescriptions.SetPatientFilter(patientID)
			a.prescriptions.Load(cmd.Context())
			search, _ := cmd.Flags().GetString("search")
			a.prescriptions.SetSearch(search)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPATIENT\tDOCTOR\tDIAGNOSIS\tMEDICATIONS\tDATE")
			for _, rx := range a.prescriptions.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					rx.ID, rx.PatientName, rx.DoctorName, rx.Diagnosis, rx.Medications,
					datefmt.FormatDate(rx.Date))
			}
			return w.Flush()
		},
	}
	cmd.Flags().String("search", "", "Filter by patient, doctor, diagnosis or medications")
	cmd.Flags().String("patient", "", "Only this patient's prescriptions")
	return cmd
}

func prescriptionFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("patient", "", "Patient id")
	cmd.Flags().String("doctor", "", "Doctor id")
	cmd.Flags().String("diagnosis", "", "Diagnosis")
	cmd.Flags().String("medications", "", "Medications and dosages")
	cmd.Flags().String("instructions", "", "Usage instructions")
	cmd.Flags().String("date", "", "Prescription date (YYYY-MM-DD)")
}

func prescriptionFormFromFlags(cmd *cobra.Command) medication.CreateDTO {
	form := medication.CreateDTO{}
	form.PatientID, _ = cmd.Flags().GetString("patient")
	form.DoctorID, _ = cmd.Flags().GetString("doctor")
	form.Diagnosis, _ = cmd.Flags().GetString("diagnosis")
	form.Medications, _ = cmd.Flags().GetString("medications")
	form.Instructions, _ = cmd.Flags().GetString("instructions")
	form.Date, _ = cmd.Flags().GetString("date")
	return form
}

func prescriptionsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a prescription",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.prescriptions.Load(cmd.Context())
			errs, err := a.prescriptions.Submit(cmd.Context(), prescriptionFormFromFlags(cmd), "")
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	prescriptionFormFlags(cmd)
	return cmd
}

func prescriptionsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a prescription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.prescriptions.Load(cmd.Context())
			errs, err := a.prescriptions.Submit(cmd.Context(), prescriptionFormFromFlags(cmd), args[0])
			if err != nil {
				return err
			}
			if !errs.Valid() {
				return printFieldErrors(errs)
			}
			return nil
		},
	}
	prescriptionFormFlags(cmd)
	return cmd
}

func prescriptionsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a prescription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			a, err := newApp(yes)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			a.prescriptions.Load(cmd.Context())
			return a.prescriptions.Delete(cmd.Context(), args[0])
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}
