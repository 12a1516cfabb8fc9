// Package providers defines the shared result vocabulary for upstream data
// source adapters. Every adapter performs a single attempt per request and
// reports presence explicitly instead of leaking transport errors upward.
package providers

// Status tells the orchestrator what an adapter call produced.
type Status int

const (
	// StatusOK: the provider returned usable data.
	StatusOK Status = iota
	// StatusAbsent: the provider had no data for this identity, or a
	// precondition (missing code, missing credential) was not met.
	StatusAbsent
	// StatusFailed: a transport, parse, or decode fault occurred. The
	// orchestrator treats this like absence; the adapter logs the reason.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAbsent:
		return "absent"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
