package domain

// ConnectionState is the Connection Monitor's probe state.
type ConnectionState string

const (
	StateChecking     ConnectionState = "checking"
	StateConnected    ConnectionState = "connected"
	StateDisconnected ConnectionState = "disconnected"
)

// ConnectionStatus is an immutable snapshot of backend reachability.
// The monitor replaces the whole value after each probe; readers never see
// a partially updated status.
type ConnectionStatus struct {
	State     ConnectionState        `json:"state"`
	Connected bool                   `json:"connected"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
