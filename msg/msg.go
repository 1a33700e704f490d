// Package msg defines all tea.Msg types dispatched within the remise TUI.
// It has no upstream imports (client, app) to avoid import cycles.
package msg

// -- Lifecycle --

// HealthResult from the initial health check.
type HealthResult struct {
	Status  string
	Version string
	Err     error
}

// -- UI events --

type TickMsg struct{}

// DismissDetail closes the detail overlay.
type DismissDetail struct{}
