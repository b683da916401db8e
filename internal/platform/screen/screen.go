// Package screen defines the life-cycle states shared by every screen
// controller.
package screen

// State is a screen controller's position in its load/submit life-cycle.
// Failures are reported and degrade back to Ready; nothing is fatal.
type State string

const (
	StateLoading              State = "loading"
	StateReady                State = "ready"
	StateSubmitting           State = "submitting"
	StateAwaitingConfirmation State = "awaiting-confirmation"
)
