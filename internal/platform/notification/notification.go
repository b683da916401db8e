// Package notification delivers the transient success/error messages every
// mutation and fetch fallback raises. Screens report through a Notifier;
// the terminal implementation prints, the recorder captures for tests.
package notification

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is one transient user-facing message.
type Notification struct {
	ID        string
	Severity  Severity
	Message   string
	CreatedAt time.Time
}

// Notifier is the reporting boundary for user-visible outcomes. Nothing in
// the client treats a notification as fatal.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Writer prints notifications to an io.Writer, one per line.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Notifier printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Success(message string) {
	fmt.Fprintf(w.out, "✔ %s\n", message)
}

func (w *Writer) Error(message string) {
	fmt.Fprintf(w.out, "✖ %s\n", message)
}

// Recorder captures notifications for assertions.
type Recorder struct {
	mu     sync.Mutex
	events []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(sev Severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Notification{
		ID:        uuid.New().String(),
		Severity:  sev,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

func (r *Recorder) Success(message string) { r.record(SeveritySuccess, message) }
func (r *Recorder) Error(message string)   { r.record(SeverityError, message) }

// All returns a copy of everything recorded, in order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.events))
	copy(out, r.events)
	return out
}

// Errors returns the recorded error messages, in order.
func (r *Recorder) Errors() []string {
	return r.messages(SeverityError)
}

// Successes returns the recorded success messages, in order.
func (r *Recorder) Successes() []string {
	return r.messages(SeveritySuccess)
}

func (r *Recorder) messages(sev Severity) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.events {
		if n.Severity == sev {
			out = append(out, n.Message)
		}
	}
	return out
}
