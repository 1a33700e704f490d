package app

// State represents the current application state.
type State int

const (
	StateConnecting   State = iota // Waiting for backend health check
	StateConnectError              // Health check failed; offering retry
	StateBrowsing                  // Scrolling a dataset table
	StateFiltering                 // Editing the filter query
	StateDetail                    // Row detail overlay open
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnectError:
		return "connect_error"
	case StateBrowsing:
		return "browsing"
	case StateFiltering:
		return "filtering"
	case StateDetail:
		return "detail"
	default:
		return "unknown"
	}
}
